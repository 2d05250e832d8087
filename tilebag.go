// tilebag.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Tile bag (C9): a multiset of remaining
// tiles with subtraction, grounded on
// original_source/lib/src/tilebag.rs. Unlike the per-language
// TileSet tables (tilesets.go), the bag always carries exactly 2
// blanks regardless of what a TileSet's own count table says, per
// the Rust crate's own `insert_times(BLANK, 2)` behavior.

package skrafl

import "sort"

// TileBag is an immutable multiset of tile codes (never EmptyCode).
type TileBag struct {
	counts map[Code]int
}

// blanksPerBag is the fixed number of blanks in a fresh bag,
// independent of the active TileSet's own data.
const blanksPerBag = 2

// NewTileBag builds the fresh, full bag for a tile set: every
// letter's bag count from the table, plus the fixed blank count.
func NewTileBag(ts *TileSet) *TileBag {
	counts := make(map[Code]int)
	for code := Code(1); code <= maxLabel; code++ {
		if n := ts.Count(code); n > 0 {
			counts[code] = n
		}
	}
	counts[BlankCode] = blanksPerBag
	return &TileBag{counts: counts}
}

// tileBagFromCounts wraps a raw code->count map as a TileBag.
func tileBagFromCounts(counts map[Code]int) *TileBag {
	return &TileBag{counts: counts}
}

// CountOf returns how many tiles of code remain in the bag.
func (tb *TileBag) CountOf(code Code) int {
	return tb.counts[code]
}

// Total returns the number of tiles remaining in the bag.
func (tb *TileBag) Total() int {
	total := 0
	for _, n := range tb.counts {
		total += n
	}
	return total
}

// Codes expands the bag into one code per remaining tile, in
// ascending code order (deterministic, for reproducible sampling
// given a seeded shuffle downstream).
func (tb *TileBag) Codes() []Code {
	var keys []Code
	for code := range tb.counts {
		keys = append(keys, code)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]Code, 0, tb.Total())
	for _, code := range keys {
		for i := 0; i < tb.counts[code]; i++ {
			out = append(out, code)
		}
	}
	return out
}

// Remove subtracts the multiset of codes (wildcards normalized to
// BlankCode, matching a board tile's drawn-from-bag identity) from
// the bag, returning a new TileBag. It fails if any code's count
// would go negative.
func (tb *TileBag) Remove(codes []Code) (*TileBag, error) {
	next := make(map[Code]int, len(tb.counts))
	for code, n := range tb.counts {
		next[code] = n
	}
	for _, code := range codes {
		key := code
		if key&IsWildcard != 0 {
			key = BlankCode
		}
		if next[key] <= 0 {
			return nil, &BagUnderflowError{Code: key}
		}
		next[key]--
	}
	return &TileBag{counts: next}, nil
}
