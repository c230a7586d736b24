// pkg/model/model_test.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import (
	"reflect"
	"testing"

	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/renderer"
)

func TestBuildFlightModelAggregation(t *testing.T) {
	records := []FlightRecord{
		{From: "JFK", To: "LAX"},
		{From: "JFK", To: "LAX"},
		{From: "LAX", To: "SFO"},
	}
	m := BuildFlightModel(records, NewCoordResolver(nil, nil))

	wantPoints := map[string]int{"JFK": 2, "LAX": 3, "SFO": 1}
	if len(m.Points) != len(wantPoints) {
		t.Fatalf("got %d points, want %d", len(m.Points), len(wantPoints))
	}
	for key, w := range wantPoints {
		p, ok := m.Points[key]
		if !ok {
			t.Fatalf("missing point %q", key)
		}
		if p.Weight != w {
			t.Errorf("%s: weight %d, want %d", key, p.Weight, w)
		}
		if p.Kind != KindAirport {
			t.Errorf("%s: kind %v, want KindAirport", key, p.Kind)
		}
	}

	wantArcs := map[string]int{"JFK-LAX": 2, "LAX-SFO": 1}
	if len(m.Arcs) != len(wantArcs) {
		t.Fatalf("got %d arcs, want %d", len(m.Arcs), len(wantArcs))
	}
	for id, w := range wantArcs {
		a, ok := m.Arcs[id]
		if !ok {
			t.Fatalf("missing arc %q", id)
		}
		if a.Weight != w {
			t.Errorf("%s: weight %d, want %d", id, a.Weight, w)
		}
	}

	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestBuildFlightModelDiagnostics(t *testing.T) {
	records := []FlightRecord{
		{From: "JFK", To: "LAX"},
		{From: "", To: "LAX"},       // malformed
		{From: "JFK", To: ""},       // malformed
		{From: "JFK", To: "XXXX"},   // unresolvable destination
		{From: "QQQQ", To: "QQQZ"},  // both unresolvable
	}
	m := BuildFlightModel(records, NewCoordResolver(nil, nil))

	if m.Diag.Malformed != 2 {
		t.Errorf("malformed %d, want 2", m.Diag.Malformed)
	}
	if m.Diag.Unresolved != 2 {
		t.Errorf("unresolved %d, want 2", m.Diag.Unresolved)
	}

	// The dropped records must leave no trace: JFK appears once even
	// though resolvable records mentioning it were dropped.
	if p := m.Points["JFK"]; p == nil || p.Weight != 1 {
		t.Errorf("JFK: %+v, want weight 1", p)
	}
	if _, ok := m.Points["XXXX"]; ok {
		t.Error("unresolved point XXXX leaked into the model")
	}
	if len(m.Arcs) != 1 {
		t.Errorf("got %d arcs, want 1", len(m.Arcs))
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestBuildFlightModelRebuildIsIdempotent(t *testing.T) {
	records := []FlightRecord{
		{From: "JFK", To: "LAX"},
		{From: "LAX", To: "SFO"},
		{From: "JFK", To: "LAX"},
		{From: "SEA", To: "ORD"},
	}
	resolver := NewCoordResolver(nil, nil)

	a := BuildFlightModel(records, resolver)
	b := BuildFlightModel(records, resolver)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("rebuild from unchanged records differs:\n%+v\n%+v", a, b)
	}
}

func TestResolverLookupBatch(t *testing.T) {
	calls := 0
	lookup := func(codes []string) map[string]math.Point2LL {
		calls++
		want := []string{"AAAA", "BBBB"}
		if !reflect.DeepEqual(codes, want) {
			t.Errorf("lookup got %v, want %v", codes, want)
		}
		// Only resolve one of the two.
		return map[string]math.Point2LL{"AAAA": {10, 20}}
	}
	r := NewCoordResolver(lookup, nil)

	if _, ok := r.Resolve("BBBB"); ok {
		t.Error("BBBB resolved before lookup ran")
	}
	if _, ok := r.Resolve("AAAA"); ok {
		t.Error("AAAA resolved before lookup ran")
	}
	if !r.HavePending() {
		t.Fatal("no pending codes after misses")
	}

	if n := r.ResolvePending(); n != 1 {
		t.Errorf("ResolvePending resolved %d, want 1", n)
	}
	if calls != 1 {
		t.Errorf("lookup called %d times, want 1", calls)
	}

	if p, ok := r.Resolve("AAAA"); !ok || p != (math.Point2LL{10, 20}) {
		t.Errorf("AAAA after lookup: %v %v", p, ok)
	}
	if _, ok := r.Resolve("BBBB"); ok {
		t.Error("BBBB resolved though the lookup failed to place it")
	}

	// The fallback table resolves without the lookup being involved.
	if _, ok := r.Resolve("JFK"); !ok {
		t.Error("builtin JFK did not resolve")
	}
}

func TestAdjacentKeys(t *testing.T) {
	records := []FlightRecord{
		{From: "JFK", To: "LAX"},
		{From: "LAX", To: "SFO"},
		{From: "SEA", To: "ORD"},
	}
	m := BuildFlightModel(records, NewCoordResolver(nil, nil))

	adj := m.AdjacentKeys("LAX")
	for _, key := range []string{"LAX", "JFK", "SFO"} {
		if _, ok := adj[key]; !ok {
			t.Errorf("%s missing from LAX adjacency", key)
		}
	}
	if len(adj) != 3 {
		t.Errorf("LAX adjacency has %d keys, want 3", len(adj))
	}
	if _, ok := adj["SEA"]; ok {
		t.Error("SEA is not adjacent to LAX")
	}
}

func TestBuildNetworkModel(t *testing.T) {
	red := renderer.RGB{R: 1}
	records := []NetworkRecord{
		{
			Source: NetworkEndpoint{Pos: math.Point2LL{-122.38, 37.62}, Name: "sfo-gw"},
			Target: NetworkEndpoint{Pos: math.Point2LL{-0.45, 51.47}, Name: "lhr-gw"},
			Color:  red, HasColor: true,
		},
		{
			// Same endpoints within quantization, this time anomalous.
			Source:    NetworkEndpoint{Pos: math.Point2LL{-122.381, 37.621}, Name: "sfo-gw"},
			Target:    NetworkEndpoint{Pos: math.Point2LL{-0.451, 51.471}, Name: "lhr-gw"},
			IsAnomaly: true,
		},
		{
			Source: NetworkEndpoint{Pos: math.Point2LL{139.78, 35.55}, Name: "hnd-gw"},
			Target: NetworkEndpoint{Pos: math.Point2LL{-0.45, 51.47}, Name: "lhr-gw"},
		},
	}
	m := BuildNetworkModel(records)

	if len(m.Points) != 3 {
		t.Fatalf("got %d points, want 3 after quantized aggregation", len(m.Points))
	}
	src := m.Points["37.62,-122.38"]
	if src == nil {
		t.Fatalf("missing quantized source point; have %v", m.PointKeys())
	}
	if src.Weight != 2 || src.Kind != KindNetworkNode {
		t.Errorf("source point %+v, want weight 2, KindNetworkNode", src)
	}

	if len(m.Arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(m.Arcs))
	}
	a := m.Arcs[ArcID("37.62,-122.38", "51.47,-0.45")]
	if a == nil {
		t.Fatalf("missing aggregated arc; have %v", m.ArcIDs())
	}
	if a.Weight != 2 {
		t.Errorf("arc weight %d, want 2", a.Weight)
	}
	// The anomaly on the second observation overrides the explicit
	// color from the first.
	if a.Policy != ColorForcedAlert {
		t.Errorf("arc policy %v, want ColorForcedAlert", a.Policy)
	}

	plain := m.Arcs[ArcID("35.55,139.78", "51.47,-0.45")]
	if plain == nil {
		t.Fatalf("missing plain arc; have %v", m.ArcIDs())
	}
	if plain.Policy != ColorByDistanceBucket {
		t.Errorf("plain arc policy %v, want ColorByDistanceBucket", plain.Policy)
	}

	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestBuildNetworkModelCallerID(t *testing.T) {
	records := []NetworkRecord{
		{
			Source: NetworkEndpoint{Pos: math.Point2LL{0, 0}, Name: "a"},
			Target: NetworkEndpoint{Pos: math.Point2LL{10, 10}, Name: "b"},
			ID:     "conn-42",
		},
		{
			Source: NetworkEndpoint{Pos: math.Point2LL{0, 0}, Name: "a"},
			Target: NetworkEndpoint{Pos: math.Point2LL{10, 10}, Name: "b"},
			ID:     "conn-42",
		},
	}
	m := BuildNetworkModel(records)

	if len(m.Arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(m.Arcs))
	}
	a := m.Arcs["conn-42"]
	if a == nil || a.Weight != 2 {
		t.Errorf("conn-42: %+v, want weight 2", a)
	}
}
