package skrafl

// Fixture and expected values ported from
// original_source/lib/src/wordlist.rs's own test module. That
// module's range_children returns an inclusive (start, end) pair;
// this port's RangeChildren is half-open [start, end), so each
// expected end below is one past the Rust fixture's value.

import "testing"

var wordlistWords = []string{
	"af", "ah", "al", "aar", "aas", "bi", "bo", "bar", "bes", "bel", "belt",
}

func testWordlist(t *testing.T) *Wordlist {
	t.Helper()
	wl, err := FromWords(wordlistWords, DefaultCodec)
	if err != nil {
		t.Fatalf("FromWords failed: %v", err)
	}
	return wl
}

func TestWordlistCounts(t *testing.T) {
	wl := testWordlist(t)
	if wl.WordCount != 11 {
		t.Errorf("WordCount = %d, want 11", wl.WordCount)
	}
	if wl.NodeCount != 17 {
		t.Errorf("NodeCount = %d, want 17", wl.NodeCount)
	}
}

func TestWordlistRangeChildren(t *testing.T) {
	wl := testWordlist(t)
	cases := []struct {
		node       int
		start, end int
		ok         bool
	}{
		{0, 1, 3, true},
		{1, 3, 7, true},
		{4, 0, 0, false},
	}
	for _, c := range cases {
		start, end, ok := wl.RangeChildren(c.node)
		if ok != c.ok {
			t.Errorf("RangeChildren(%d) ok = %v, want %v", c.node, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if start != c.start || end != c.end {
			t.Errorf("RangeChildren(%d) = (%d,%d), want (%d,%d)", c.node, start, end, c.start, c.end)
		}
	}
}

func TestWordlistTerminal(t *testing.T) {
	wl := testWordlist(t)
	if !wl.terminal[4] {
		t.Error("node 4 (word \"af\") should be terminal")
	}
	if wl.terminal[0] {
		t.Error("root node should not be terminal")
	}
}

func TestWordlistIsWord(t *testing.T) {
	wl := testWordlist(t)
	for _, w := range wordlistWords {
		codes, err := wl.Encode(w)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", w, err)
		}
		labels := make([]Label, len(codes))
		for i, c := range codes {
			labels[i] = c & LetterMask
		}
		if !wl.IsWord(labels) {
			t.Errorf("IsWord(%q) = false, want true", w)
		}
	}
	notLoaded, _ := wl.Encode("ba")
	labels := make([]Label, len(notLoaded))
	for i, c := range notLoaded {
		labels[i] = c & LetterMask
	}
	if wl.IsWord(labels) {
		t.Error(`IsWord("ba") = true, want false (not loaded)`)
	}
}
