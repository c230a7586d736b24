// pkg/model/resolver.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package model

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/globeview/globeview/pkg/log"
	"github.com/globeview/globeview/pkg/math"
	"github.com/globeview/globeview/pkg/util"
)

// LookupFunc resolves location codes to coordinates. It stands in for an
// external geocoding service: it may be slow, it may be called off the
// render goroutine, and it may resolve only a subset of the codes it is
// given. Codes absent from the returned map stay unresolved; the engine
// never retries them on its own.
type LookupFunc func(codes []string) map[string]math.Point2LL

// coordCacheCapacity bounds the session coordinate cache. The bound
// exists only to keep the LRU honest; it is far larger than any plausible
// number of distinct codes in a session, so in practice entries are never
// evicted while the program runs. That no-eviction policy is intentional:
// model derivation must be a pure function of the input records plus the
// cache state, and a cache that silently dropped entries mid-session
// would make rebuilds of unchanged inputs come out different.
const coordCacheCapacity = 16384

// coordCacheFile is where the cache is persisted between sessions.
const coordCacheFile = "coords.msgpack.zst"

// CoordResolver resolves location codes to coordinates, checking the
// injected lookup's prior results first and then a built-in table of
// well-known airport codes. It owns the session coordinate cache
// explicitly; nothing about its lifetime is hidden in package state.
type CoordResolver struct {
	cache    *lru.Cache[string, math.Point2LL]
	fallback map[string]math.Point2LL
	lookup   LookupFunc
	pending  map[string]interface{}
	lg       *log.Logger
}

// NewCoordResolver returns a resolver backed by the given lookup
// function; lookup may be nil, in which case only previously-cached and
// built-in codes resolve.
func NewCoordResolver(lookup LookupFunc, lg *log.Logger) *CoordResolver {
	cache, _ := lru.New[string, math.Point2LL](coordCacheCapacity)
	return &CoordResolver{
		cache:    cache,
		fallback: builtinAirports,
		lookup:   lookup,
		pending:  make(map[string]interface{}),
		lg:       lg,
	}
}

// Resolve returns the coordinates for code if they are known: first from
// the cache of lookup results, then from the built-in table. A miss marks
// the code pending for the next ResolvePending call and returns false;
// it never blocks.
func (r *CoordResolver) Resolve(code string) (math.Point2LL, bool) {
	if p, ok := r.cache.Get(code); ok {
		return p, true
	}
	if p, ok := r.fallback[code]; ok {
		return p, true
	}
	if r.lookup != nil {
		r.pending[code] = nil
	}
	return math.Point2LL{}, false
}

// HavePending reports whether any codes have missed since the last
// ResolvePending call.
func (r *CoordResolver) HavePending() bool {
	return len(r.pending) > 0
}

// ResolvePending hands all pending codes to the lookup function in one
// batch and caches whatever it resolves, returning the number of codes
// that resolved. The lookup may be slow, so hosts call this off the frame
// loop and re-derive the model afterwards; codes the lookup failed to
// place are not retried unless a later Resolve makes them pending again.
func (r *CoordResolver) ResolvePending() int {
	if r.lookup == nil || len(r.pending) == 0 {
		return 0
	}

	codes := util.SortedMapKeys(r.pending)
	r.pending = make(map[string]interface{})

	resolved := r.lookup(codes)
	for code, p := range resolved {
		r.cache.Add(code, p)
	}
	r.lg.Debugf("resolved %d of %d pending codes", len(resolved), len(codes))
	return len(resolved)
}

// cachedCoords is the persisted form of the session cache.
type cachedCoords map[string]math.Point2LL

// LoadCache primes the session cache from the on-disk copy, if there is
// one. A missing or unreadable cache file is not an error; the codes will
// just be resolved again.
func (r *CoordResolver) LoadCache() {
	var stored cachedCoords
	if _, err := util.CacheRetrieveObject(coordCacheFile, &stored); err != nil {
		r.lg.Debugf("%s: %v", coordCacheFile, err)
		return
	}
	for code, p := range stored {
		r.cache.Add(code, p)
	}
	r.lg.Infof("primed coordinate cache with %d stored codes", len(stored))
}

// SaveCache persists the session cache for the next run.
func (r *CoordResolver) SaveCache() error {
	stored := make(cachedCoords)
	for _, code := range r.cache.Keys() {
		if p, ok := r.cache.Peek(code); ok {
			stored[code] = p
		}
	}
	return util.CacheStoreObject(coordCacheFile, stored)
}
