package skrafl

import (
	"sort"
	"testing"
)

func wordSetOf(t *testing.T, wl *Wordlist, words []Word) map[string]bool {
	t.Helper()
	out := make(map[string]bool, len(words))
	for _, w := range words {
		out[wl.Decode(w.Codes())] = true
	}
	return out
}

func TestMatchesOnEmptyRow(t *testing.T) {
	wl := testWordlist(t)
	row := NewRow(make([]Cell, 4))
	rowdata := wl.ConnectedRow(row)
	rackCodes, err := wl.Encode("belt")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	rack, err := LettersFromCodes(rackCodes)
	if err != nil {
		t.Fatalf("LettersFromCodes failed: %v", err)
	}

	matches := wl.Matches(row.WithSentinel(), rowdata.WithSentinel(), rack)
	got := wordSetOf(t, wl, matches)
	for _, want := range []string{"bel", "belt"} {
		if !got[want] {
			t.Errorf("expected %q among matches, got %v", want, keysOf(got))
		}
	}
	if got["af"] || got["bar"] {
		t.Errorf("matches should not contain words the rack cannot spell, got %v", keysOf(got))
	}
}

func keysOf(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestMatchesRespectsBlank(t *testing.T) {
	wl := testWordlist(t)
	row := NewRow(make([]Cell, 3))
	rowdata := wl.ConnectedRow(row)
	rackCodes, err := wl.Encode("a*")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	rack, err := LettersFromCodes(rackCodes)
	if err != nil {
		t.Fatalf("LettersFromCodes failed: %v", err)
	}

	matches := wl.Matches(row.WithSentinel(), rowdata.WithSentinel(), rack)
	got := wordSetOf(t, wl, matches)
	if !got["aH"] && !got["aL"] {
		t.Errorf("expected a blank to stand in for a second letter, got %v", keysOf(got))
	}
}

func TestMatchesExcludeSingleLetter(t *testing.T) {
	wl := testWordlist(t)
	row := NewRow(make([]Cell, 2))
	rowdata := wl.ConnectedRow(row)
	rackCodes, _ := wl.Encode("a")
	rack, err := LettersFromCodes(rackCodes)
	if err != nil {
		t.Fatalf("LettersFromCodes failed: %v", err)
	}
	matches := wl.Matches(row.WithSentinel(), rowdata.WithSentinel(), rack)
	if len(matches) != 0 {
		t.Errorf("expected no matches for a single-letter rack (length >= 2 required), got %v", wordSetOf(t, wl, matches))
	}
}

// GetLegalCharacters must actually populate and reuse legalCharsCache
// rather than recomputing from scratch on every call.
func TestGetLegalCharactersUsesCache(t *testing.T) {
	wl := testWordlist(t)
	cells := make([]Cell, 2)
	cells[1] = EmptyCell
	tile, err := NewTile(mustEncodeLabel(t, wl, "b"))
	if err != nil {
		t.Fatalf("NewTile failed: %v", err)
	}
	cells[0] = CellFromTile(tile)
	word := NewRow(cells)

	if wl.legalCharsCache.Len() != 0 {
		t.Fatalf("cache should start empty, has %d entries", wl.legalCharsCache.Len())
	}
	first := wl.GetLegalCharacters(word)
	if wl.legalCharsCache.Len() != 1 {
		t.Fatalf("cache should hold 1 entry after one call, has %d", wl.legalCharsCache.Len())
	}
	second := wl.GetLegalCharacters(word)
	if first != second {
		t.Errorf("GetLegalCharacters(word) = %v then %v, want identical results from the cache", first, second)
	}
	if wl.legalCharsCache.Len() != 1 {
		t.Errorf("repeating the same lookup should hit the cache, not grow it: now %d entries", wl.legalCharsCache.Len())
	}
}

func mustEncodeLabel(t *testing.T, wl *Wordlist, s string) Code {
	t.Helper()
	codes, err := wl.Encode(s)
	if err != nil || len(codes) != 1 {
		t.Fatalf("Encode(%q) failed: %v", s, err)
	}
	return codes[0]
}
