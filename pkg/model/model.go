// pkg/model/model.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import (
	"fmt"

	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/renderer"
	"github.com/globeview/globeview/pkg/util"
)

// PointKind distinguishes the two record domains that share the globe.
type PointKind int

const (
	KindAirport PointKind = iota
	KindNetworkNode
)

// GeoPoint is a single location on the globe. Weight is an aggregate
// occurrence count: re-observing the same key increments it rather than
// introducing a duplicate point.
type GeoPoint struct {
	Key    string
	Pos    math.Point2LL
	Label  string
	Weight int
	Kind   PointKind
}

// ColorPolicy determines how an arc's draw color is resolved; see
// globe.ArcColor for the resolution order.
type ColorPolicy int

const (
	// ColorByDistanceBucket buckets the arc by its planar length in
	// degrees and picks the bucket color.
	ColorByDistanceBucket ColorPolicy = iota
	// ColorExplicit uses the color carried on the arc.
	ColorExplicit
	// ColorForcedAlert overrides everything except adjacency
	// highlighting with the alert color.
	ColorForcedAlert
)

// Arc is a weighted connection between two points. There is at most one
// Arc per ID; re-observing the same endpoint pair increments Weight.
type Arc struct {
	ID       string
	FromKey  string
	ToKey    string
	Weight   int
	Policy   ColorPolicy
	Color    renderer.RGB // used only when Policy == ColorExplicit
}

// ArcID derives the canonical arc identifier from an ordered endpoint
// pair.
func ArcID(fromKey, toKey string) string {
	return fromKey + "-" + toKey
}

// Diagnostics counts records that were excluded from the model. Nothing
// in the engine ever reports these as errors; hosts that want to surface
// "n routes could not be located" read them from here.
type Diagnostics struct {
	Unresolved int // records with an endpoint no lookup could place
	Malformed  int // records missing a required field
}

// Model is the shared {points, arcs} structure both adapters produce. It
// is recomputed wholesale from the latest input records whenever they
// change; it is never patched incrementally.
type Model struct {
	Points map[string]*GeoPoint
	Arcs   map[string]*Arc
	Diag   Diagnostics
}

func NewModel() *Model {
	return &Model{
		Points: make(map[string]*GeoPoint),
		Arcs:   make(map[string]*Arc),
	}
}

// addPoint increments the weight of an existing point with this key or
// inserts a new one.
func (m *Model) addPoint(key string, pos math.Point2LL, label string, kind PointKind) {
	if p, ok := m.Points[key]; ok {
		p.Weight++
	} else {
		m.Points[key] = &GeoPoint{Key: key, Pos: pos, Label: label, Weight: 1, Kind: kind}
	}
}

// addArc increments the weight of an existing arc with this id or inserts
// a new one. Both endpoints must already be present in Points; the
// adapters guarantee this by dropping unresolvable records before any
// part of them enters the model.
func (m *Model) addArc(id, fromKey, toKey string, policy ColorPolicy, color renderer.RGB) {
	if a, ok := m.Arcs[id]; ok {
		a.Weight++
	} else {
		m.Arcs[id] = &Arc{ID: id, FromKey: fromKey, ToKey: toKey, Weight: 1, Policy: policy, Color: color}
	}
}

// PointKeys returns the point keys in sorted order; all per-frame model
// traversal uses this so that iteration order (and with it first-match
// picking) is deterministic.
func (m *Model) PointKeys() []string {
	return util.SortedMapKeys(m.Points)
}

// ArcIDs returns the arc ids in sorted order.
func (m *Model) ArcIDs() []string {
	return util.SortedMapKeys(m.Arcs)
}

// AdjacentKeys returns the one-hop neighborhood of the given point: the
// set of all endpoint keys of arcs incident to it, plus the key itself.
// It is derived from Arcs on each selection change and is never stored
// independently of the selection.
func (m *Model) AdjacentKeys(key string) map[string]interface{} {
	adj := make(map[string]interface{})
	adj[key] = nil
	for _, a := range m.Arcs {
		if a.FromKey == key {
			adj[a.ToKey] = nil
		} else if a.ToKey == key {
			adj[a.FromKey] = nil
		}
	}
	return adj
}

// Validate checks the endpoint-reference invariant: every arc endpoint
// must name a point present in the same model snapshot.
func (m *Model) Validate() error {
	for id, a := range m.Arcs {
		if _, ok := m.Points[a.FromKey]; !ok {
			return fmt.Errorf("%s: arc references missing point %q", id, a.FromKey)
		}
		if _, ok := m.Points[a.ToKey]; !ok {
			return fmt.Errorf("%s: arc references missing point %q", id, a.ToKey)
		}
	}
	return nil
}
