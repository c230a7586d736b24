// pkg/model/network.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import (
	"fmt"

	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/renderer"
)

// NetworkEndpoint is one side of an observed connection, with its
// coordinates already known.
type NetworkEndpoint struct {
	Pos  math.Point2LL
	Name string
}

// NetworkRecord is a single observed connection between two hosts.
// Unlike flights there is no code lookup; coordinates come with the
// record. An optional caller-supplied ID identifies pre-aggregated
// connections; otherwise the id is derived from the endpoint keys.
type NetworkRecord struct {
	Source    NetworkEndpoint
	Target    NetworkEndpoint
	ID        string
	Color     renderer.RGB
	HasColor  bool
	IsAnomaly bool
}

// networkKey quantizes a position to two decimal places so that hosts
// observed at effectively the same location aggregate into one point.
func networkKey(p math.Point2LL) string {
	return fmt.Sprintf("%.2f,%.2f", p.Latitude(), p.Longitude())
}

// BuildNetworkModel recomputes the model from scratch for the given
// connection records.
func BuildNetworkModel(records []NetworkRecord) *Model {
	m := NewModel()
	for _, rec := range records {
		srcKey := networkKey(rec.Source.Pos)
		dstKey := networkKey(rec.Target.Pos)

		m.addPoint(srcKey, rec.Source.Pos, rec.Source.Name, KindNetworkNode)
		m.addPoint(dstKey, rec.Target.Pos, rec.Target.Name, KindNetworkNode)

		id := rec.ID
		if id == "" {
			id = ArcID(srcKey, dstKey)
		}

		policy := ColorByDistanceBucket
		color := renderer.RGB{}
		switch {
		case rec.IsAnomaly:
			policy = ColorForcedAlert
		case rec.HasColor:
			policy = ColorExplicit
			color = rec.Color
		}
		m.addArc(id, srcKey, dstKey, policy, color)

		// An anomaly observed for an existing arc still forces the
		// alert color even when the arc was first seen as normal.
		if rec.IsAnomaly {
			m.Arcs[id].Policy = ColorForcedAlert
		}
	}
	return m
}
