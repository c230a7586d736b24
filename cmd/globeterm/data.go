// cmd/globeterm/data.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/model"
	"github.com/globeview/globeview/pkg/renderer"
)

// DataSet is the on-disk input format: a YAML file carrying flight
// records, network connection records, or both, plus an optional table
// of extra location codes that backs the coordinate lookup.
type DataSet struct {
	Flights     []flightEntry     `koanf:"flights"`
	Connections []connectionEntry `koanf:"connections"`
	Airports    map[string]coords `koanf:"airports"`
}

type flightEntry struct {
	From string `koanf:"from"`
	To   string `koanf:"to"`
}

type coords struct {
	Lat float32 `koanf:"lat"`
	Lng float32 `koanf:"lng"`
}

type endpointEntry struct {
	Lat  float32 `koanf:"lat"`
	Lng  float32 `koanf:"lng"`
	Name string  `koanf:"name"`
}

type connectionEntry struct {
	Source  endpointEntry `koanf:"source"`
	Target  endpointEntry `koanf:"target"`
	ID      string        `koanf:"id"`
	Color   string        `koanf:"color"` // "#rrggbb"
	Anomaly bool          `koanf:"anomaly"`
}

func loadDataSet(path string) (*DataSet, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var ds DataSet
	if err := k.Unmarshal("", &ds); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ds, nil
}

func (ds *DataSet) FlightRecords() []model.FlightRecord {
	var recs []model.FlightRecord
	for _, f := range ds.Flights {
		recs = append(recs, model.FlightRecord{From: f.From, To: f.To})
	}
	return recs
}

func (ds *DataSet) NetworkRecords() []model.NetworkRecord {
	var recs []model.NetworkRecord
	for _, c := range ds.Connections {
		rec := model.NetworkRecord{
			Source:    model.NetworkEndpoint{Pos: math.Point2LL{c.Source.Lng, c.Source.Lat}, Name: c.Source.Name},
			Target:    model.NetworkEndpoint{Pos: math.Point2LL{c.Target.Lng, c.Target.Lat}, Name: c.Target.Name},
			ID:        c.ID,
			IsAnomaly: c.Anomaly,
		}
		if rgb, ok := parseHexColor(c.Color); ok {
			rec.Color, rec.HasColor = rgb, true
		}
		recs = append(recs, rec)
	}
	return recs
}

// Lookup adapts the data file's airports table to the resolver's lookup
// interface. It stands where a remote geocoding service would in a full
// deployment, including its partial-success behavior: codes outside the
// table just aren't in the returned map.
func (ds *DataSet) Lookup(codes []string) map[string]math.Point2LL {
	resolved := make(map[string]math.Point2LL)
	for _, code := range codes {
		if c, ok := ds.Airports[code]; ok {
			resolved[code] = math.Point2LL{c.Lng, c.Lat}
		}
	}
	return resolved
}

func parseHexColor(s string) (renderer.RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return renderer.RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return renderer.RGB{}, false
	}
	return renderer.RGBFromHex(int(v)), true
}
