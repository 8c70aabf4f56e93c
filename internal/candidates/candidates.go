// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

// Package candidates supplies the curated pool of touring acts the
// discovery pipeline queries against a venue. The pool is static and
// ships with the binary; it trades completeness for predictable provider
// load, since every candidate costs API calls on a cache-cold run.
package candidates

import (
	"math/rand"
	"strings"
	"sync"
)

// Tier orders candidates by booking priority. High-tier acts are
// historically reliable draws for mid-size rooms and are queried first
// when the limit truncates the pool.
type Tier int

const (
	TierNormal Tier = iota
	TierHigh
)

// Act is one entry in the candidate pool.
type Act struct {
	Name    string
	Genres  []string
	Tier    Tier
	Draw    int // typical headline draw, people
	Website string
}

// Source selects candidate act names from the pool.
//
// Selection is randomized within each tier so repeated discovery runs
// with a truncating limit rotate through the pool instead of always
// querying the same prefix. The RNG is seedable for deterministic tests.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	pool []Act
}

// NewSource builds a source over the built-in pool.
func NewSource(seed int64) *Source {
	return NewSourceWithPool(seed, defaultPool)
}

// NewSourceWithPool builds a source over a caller-supplied pool.
func NewSourceWithPool(seed int64, pool []Act) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		pool: pool,
	}
}

// Candidates returns up to limit act names. When genres is non-empty,
// only acts sharing at least one genre (case-insensitive) are eligible.
// High-tier acts come first, shuffled within tier; normal-tier acts
// follow, also shuffled. A limit <= 0 means no bound.
func (s *Source) Candidates(limit int, genres []string) []string {
	var high, normal []string
	for i := range s.pool {
		act := &s.pool[i]
		if !matchesGenres(act, genres) {
			continue
		}
		if act.Tier == TierHigh {
			high = append(high, act.Name)
		} else {
			normal = append(normal, act.Name)
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(high), func(i, j int) { high[i], high[j] = high[j], high[i] })
	s.rng.Shuffle(len(normal), func(i, j int) { normal[i], normal[j] = normal[j], normal[i] })
	s.mu.Unlock()

	names := append(high, normal...)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

// Pool returns a copy of the underlying pool, for the demo data source
// and for introspection endpoints.
func (s *Source) Pool() []Act {
	out := make([]Act, len(s.pool))
	copy(out, s.pool)
	return out
}

// Genres returns the distinct genres present in the pool, lowercased.
func (s *Source) Genres() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range s.pool {
		for _, g := range s.pool[i].Genres {
			key := strings.ToLower(g)
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}

func matchesGenres(act *Act, genres []string) bool {
	if len(genres) == 0 {
		return true
	}
	for _, want := range genres {
		for _, have := range act.Genres {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}
