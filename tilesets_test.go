package skrafl

import "testing"

// Every extra letter a TileSet's Codec assigns must fit within the
// label scheme's 5-extra-slot budget (see maxLabel in codes.go); a
// label beyond maxLabel would silently become unreachable through
// LabelSet (a uint32 bitmask).
func TestTileSetExtrasFitLabelBudget(t *testing.T) {
	for _, lang := range []Language{English, Dutch, Icelandic, Polish, Norwegian} {
		ts := NewTileSetFor(lang)
		for tok, code := range ts.Codec.encoder {
			if tok == "." || tok == " " || tok == "*" {
				continue
			}
			label := code &^ IsWildcard
			if label > maxLabel {
				t.Errorf("%s: token %q encodes to label %d, exceeds maxLabel %d", ts.Name, tok, label, maxLabel)
			}
		}
	}
}

func TestIcelandicTileSetRoundTrip(t *testing.T) {
	ts := NewTileSetFor(Icelandic)
	codes, err := ts.Codec.Encode("áðéíó")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(codes) != 5 {
		t.Fatalf("Encode returned %d codes, want 5", len(codes))
	}
	for _, c := range codes {
		if ts.Count(c) == 0 {
			t.Errorf("code %d has zero count in a fresh Icelandic bag", c)
		}
	}
	if got := ts.Codec.Decode(codes); got != "áðéíó" {
		t.Errorf("Decode(Encode(%q)) = %q", "áðéíó", got)
	}
}

func TestPolishTileSetRoundTrip(t *testing.T) {
	ts := NewTileSetFor(Polish)
	codes, err := ts.Codec.Encode("ąćęłń")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if len(codes) != 5 {
		t.Fatalf("Encode returned %d codes, want 5", len(codes))
	}
	if got := ts.Codec.Decode(codes); got != "ąćęłń" {
		t.Errorf("Decode(Encode(%q)) = %q", "ąćęłń", got)
	}
}

func TestTileSetLexiconReachesExtraLetters(t *testing.T) {
	tiles := NewTileSetFor(Icelandic)
	wl, err := FromWords([]string{"á", "bá"}, tiles.Codec)
	if err != nil {
		t.Fatalf("FromWords failed: %v", err)
	}
	codes, err := wl.Encode("bá")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	labels := make([]Label, len(codes))
	for i, c := range codes {
		labels[i] = c & LetterMask
	}
	if !wl.IsWord(labels) {
		t.Error(`IsWord("bá") = false, want true: a word containing an extra letter must be reachable`)
	}
}
