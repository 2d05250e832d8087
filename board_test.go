package skrafl

// Scenario fixtures (S1-S6) ported from original_source/src/board.rs's
// own test module (test_bingo, test_state, test_calc_word_points,
// test_calc_all_word_scores, test_tile_replace_error) and spec.md §8.

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBoard(words []string, tiles *TileSet) *Board {
	lexicon, err := FromWords(words, tiles.Codec)
	if err != nil {
		panic(err)
	}
	return NewBoard(lexicon, tiles, NewStandardGrid())
}

func rackFrom(t *testing.T, b *Board, s string) Letters {
	t.Helper()
	codes, err := b.Lexicon.Encode(s)
	if err != nil {
		t.Fatalf("Encode(%q) failed: %v", s, err)
	}
	letters, err := LettersFromCodes(codes)
	if err != nil {
		t.Fatalf("LettersFromCodes(%q) failed: %v", s, err)
	}
	return letters
}

// S1: bingo on an empty board.
func TestBoardBingoEmptyBoard(t *testing.T) {
	tiles := NewTileSetFor(English)
	b := newTestBoard([]string{"wordfeud"}, tiles)
	word, err := WordFromCodes(mustEncode(t, b, "wordfeud"))
	if err != nil {
		t.Fatalf("WordFromCodes failed: %v", err)
	}
	score, err := b.calcWordPoints(word, 7, 7, true, true)
	if err != nil {
		t.Fatalf("calcWordPoints failed: %v", err)
	}
	if score != 78 {
		t.Errorf(`score for "wordfeud" at (7,7,h) = %d, want 78`, score)
	}
}

// S4: bingo threshold on an empty board (exact score via calcWordPoints).
func TestBoardBingoScore(t *testing.T) {
	tiles := NewTileSetFor(Dutch)
	b := newTestBoard([]string{"hoentje"}, tiles)
	word, err := WordFromCodes(mustEncode(t, b, "hoentje"))
	if err != nil {
		t.Fatalf("WordFromCodes failed: %v", err)
	}
	score, err := b.calcWordPoints(word, 7, 7, true, true)
	if err != nil {
		t.Fatalf("calcWordPoints failed: %v", err)
	}
	if score != 68 {
		t.Errorf("score = %d, want 68", score)
	}
}

func mustEncode(t *testing.T, b *Board, s string) []Code {
	t.Helper()
	codes, err := b.Lexicon.Encode(s)
	if err != nil {
		t.Fatalf("Encode(%q) failed: %v", s, err)
	}
	return codes
}

var testStateRows = []string{
	"    t     c   f",
	"    e    he   o",
	"    r   bis g k",
	"    u  bol te v",
	"    gepof dimme",
	"      la vree e",
	"    qua   ene  ",
	"      Spoelen  ",
	"     s a   n   ",
	"     c d we    ",
	"     hadden    ",
	"    nu o   y   ",
	"  wrat siJzen  ",
	"    k     os   ",
	"   zerk   g    ",
}

func testStateBoard(t *testing.T, words []string) *Board {
	t.Helper()
	tiles := NewTileSetFor(Dutch)
	b := newTestBoard(words, tiles)
	if err := b.SetRows(testStateRows); err != nil {
		t.Fatalf("SetRows(TEST_STATE) failed: %v", err)
	}
	return b
}

// S2: cross-word scoring on the NL TEST_STATE fixture.
func TestBoardCrossWordScoring(t *testing.T) {
	b := testStateBoard(t, []string{"ster", "abel"})

	sterWord, err := WordFromCodes(mustEncode(t, b, "ster"))
	if err != nil {
		t.Fatalf("WordFromCodes failed: %v", err)
	}
	score, err := b.calcWordPoints(sterWord, 3, 0, true, true)
	if err != nil {
		t.Fatalf("calcWordPoints(ster) failed: %v", err)
	}
	if score != 7 {
		t.Errorf(`score for "ster" at (3,0,h) = %d, want 7`, score)
	}

	abelWord, err := WordFromCodes(mustEncode(t, b, "abel"))
	if err != nil {
		t.Fatalf("WordFromCodes failed: %v", err)
	}
	score, err = b.calcWordPoints(abelWord, 3, 6, false, true)
	if err != nil {
		t.Fatalf("calcWordPoints(abel) failed: %v", err)
	}
	if score != 32 {
		t.Errorf(`score for "abel" at (3,6,v) = %d, want 32`, score)
	}
}

// S3: small-lexicon enumeration against TEST_STATE.
func TestBoardCalcAllWordScores(t *testing.T) {
	words := []string{"af", "ah", "al", "aar", "aas", "be", "bi", "bo", "bar", "bes", "bel"}
	b := testStateBoard(t, words)
	rack := rackFrom(t, b, "abel")

	got, err := b.CalcAllWordScores(rack)
	if err != nil {
		t.Fatalf("CalcAllWordScores failed: %v", err)
	}

	type expected struct {
		x, y       int
		horizontal bool
		word       string
		score      int
	}
	want := []expected{
		{13, 0, true, "af", 5},
		{3, 1, true, "be", 5},
		{3, 1, true, "bel", 14},
		{13, 1, true, "bo", 9},
		{2, 2, true, "bar", 14},
		{3, 8, true, "bes", 8},
		{8, 6, false, "bo", 5},
	}
	gotFlat := make([]expected, len(got))
	for i, g := range got {
		gotFlat[i] = expected{g.X, g.Y, g.Horizontal, b.Lexicon.Decode(g.Word.Codes()), g.Score}
	}
	assert.ElementsMatch(t, want, gotFlat, "CalcAllWordScores should return exactly the expected hits, in any order")
}

// S5: a placement that runs off the board edge.
func TestBoardPlacementFailure(t *testing.T) {
	tiles := NewTileSetFor(English)
	b := newTestBoard([]string{"rust", "rest"}, tiles)

	_, err := b.PlayWord("rust", 12, 7, true, true)
	if err == nil {
		t.Fatal("expected a TilePlacementError")
	}
	var placementErr *TilePlacementError
	if !errors.As(err, &placementErr) {
		t.Fatalf("expected *TilePlacementError, got %T: %v", err, err)
	}
	want := &TilePlacementError{X: 12, Y: 7, Horizontal: true, Len: 4}
	if *placementErr != *want {
		t.Errorf("got %+v, want %+v", placementErr, want)
	}
}

// S6: a placement that would overwrite a different tile.
func TestBoardReplaceFailure(t *testing.T) {
	tiles := NewTileSetFor(English)
	b := newTestBoard([]string{"rust", "bar"}, tiles)

	if _, err := b.PlayWord("rust", 7, 7, true, true); err != nil {
		t.Fatalf("PlayWord(rust) failed: %v", err)
	}

	_, err := b.PlayWord("bar", 7, 6, false, true)
	if err == nil {
		t.Fatal("expected a TileReplaceError")
	}
	var replaceErr *TileReplaceError
	if !errors.As(err, &replaceErr) {
		t.Fatalf("expected *TileReplaceError, got %T: %v", err, err)
	}
	want := &TileReplaceError{X: 7, Y: 7}
	if *replaceErr != *want {
		t.Errorf("got %+v, want %+v", replaceErr, want)
	}
}

// Property 3: H and V must always mirror each other.
func TestBoardMirrorInvariant(t *testing.T) {
	tiles := NewTileSetFor(English)
	b := newTestBoard([]string{"rust"}, tiles)
	if _, err := b.PlayWord("rust", 7, 7, true, true); err != nil {
		t.Fatalf("PlayWord failed: %v", err)
	}
	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			if b.H[y].At(x).Code() != b.V[x].At(y).Code() {
				t.Fatalf("mirror invariant broken at (%d,%d): H=%v V=%v", x, y, b.H[y].At(x), b.V[x].At(y))
			}
		}
	}
}

// Property 8: state snapshot/restore must be bit-exact.
func TestBoardPlayUndo(t *testing.T) {
	tiles := NewTileSetFor(English)
	b := newTestBoard([]string{"rust"}, tiles)
	snapshot := b.State()

	if _, err := b.PlayWord("rust", 7, 7, true, true); err != nil {
		t.Fatalf("PlayWord failed: %v", err)
	}
	b.SetState(snapshot)

	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			if !b.H[y].At(x).IsEmpty() {
				t.Fatalf("expected board to be empty again at (%d,%d)", x, y)
			}
		}
	}
}
