// pkg/model/flight.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import (
	"strings"

	"github.com/globeview/globeview/pkg/renderer"
)

// FlightRecord is a single origin/destination observation, with the
// endpoints given as airport codes rather than coordinates.
type FlightRecord struct {
	From string
	To   string
}

// BuildFlightModel recomputes the model from scratch for the given
// records. Each record contributes one weight observation to each of its
// endpoint points and one to the From->To arc. A record with a missing
// code is counted as malformed; a record with a code the resolver cannot
// place is counted as unresolved. In both cases the whole record is
// dropped so that no half-resolved arcs appear.
//
// Flight arcs are colored by distance bucket at draw time, so there is
// no per-arc color here.
func BuildFlightModel(records []FlightRecord, resolver *CoordResolver) *Model {
	m := NewModel()
	for _, rec := range records {
		from := strings.ToUpper(strings.TrimSpace(rec.From))
		to := strings.ToUpper(strings.TrimSpace(rec.To))
		if from == "" || to == "" {
			m.Diag.Malformed++
			continue
		}

		fromPos, fromOk := resolver.Resolve(from)
		toPos, toOk := resolver.Resolve(to)
		if !fromOk || !toOk {
			m.Diag.Unresolved++
			continue
		}

		m.addPoint(from, fromPos, from, KindAirport)
		m.addPoint(to, toPos, to, KindAirport)
		m.addArc(ArcID(from, to), from, to, ColorByDistanceBucket, renderer.RGB{})
	}
	return m
}
