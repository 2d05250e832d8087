// items.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the typed wrappers over byte codes (C2):
// Tile, Letter and Cell, plus the small fixed-capacity lists built
// from them (Word, Row, Letters). Grounded on
// original_source/lib/src/tiles/{cell,letter,tile,item,list}.rs and
// src/tiles/items.rs, written as plain Go slices instead of the
// Rust crate's tinyvec::ArrayVec, since the teacher's own code
// (board.go's Square arrays) prefers plain fixed-size Go arrays and
// slices over a generic small-vector dependency.

package skrafl

import "fmt"

// Item is the minimal capability every code-backed value shares:
// it can report its own code. Dynamic dispatch across Tile/Letter/
// Cell is never needed; callers parameterize on this instead.
type Item interface {
	Code() Code
}

// Tile is a playable token: a plain letter or a blank assigned to a
// letter. A Tile's code is never EmptyCode.
type Tile struct {
	code Code
}

// NewTile builds a Tile from a raw code, validating the range.
func NewTile(code Code) (Tile, error) {
	if code == EmptyCode || code == BlankCode {
		return Tile{}, &InvalidTileCode{Code: code}
	}
	if code > 95 || (code > 31 && code < 65) {
		return Tile{}, &InvalidTileCode{Code: code}
	}
	return Tile{code: code}, nil
}

// Code implements Item.
func (t Tile) Code() Code { return t.code }

// IsWildcard reports whether this Tile is a blank assigned to a letter.
func (t Tile) IsWildcard() bool { return t.code&IsWildcard != 0 }

// Label returns the letter label this tile plays as, stripping any
// wildcard flag.
func (t Tile) Label() Label { return t.code & LetterMask }

// WildcardFromLabel builds a wildcard Tile assigned to the given label.
func WildcardFromLabel(label Label) Tile {
	return Tile{code: (label & LetterMask) | IsWildcard}
}

// AsCell returns the Cell holding this Tile.
func (t Tile) AsCell() Cell { return Cell{code: t.code} }

// Letter is a tile as held in the rack, before placement. A blank in
// the rack has code BlankCode (unassigned).
type Letter struct {
	code Code
}

// NewLetter builds a Letter from a raw code.
func NewLetter(code Code) (Letter, error) {
	if code == EmptyCode {
		return Letter{}, &InvalidLetterCode{Code: code}
	}
	return Letter{code: code}, nil
}

// Code implements Item.
func (l Letter) Code() Code { return l.code }

// IsBlank reports whether this Letter is an unassigned wildcard.
func (l Letter) IsBlank() bool { return l.code == BlankCode }

// Label returns the letter label, stripping any wildcard flag. For
// an unassigned blank this is 0.
func (l Letter) Label() Label {
	if l.code == BlankCode {
		return 0
	}
	return l.code & LetterMask
}

// AsTile reinterprets this Letter as a Tile (used once a rack letter
// has been placed and, for blanks, assigned a label via WildcardFromLabel).
func (l Letter) AsTile() Tile { return Tile{code: l.code} }

// Cell is a single board square: either empty or holding a Tile.
type Cell struct {
	code Code
}

// EmptyCell is the zero value for Cell.
var EmptyCell = Cell{code: EmptyCode}

// CellFromTile returns the Cell holding the given Tile.
func CellFromTile(t Tile) Cell { return Cell{code: t.code} }

// Code implements Item.
func (c Cell) Code() Code { return c.code }

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool { return c.code == EmptyCode }

// Tile returns the Cell's Tile and true, or the zero Tile and false
// if the cell is empty.
func (c Cell) Tile() (Tile, bool) {
	if c.IsEmpty() {
		return Tile{}, false
	}
	return Tile{code: c.code}, true
}

// ToLetter returns the Letter this cell's tile would contribute to a
// crossing word: the label only, wildcard flag stripped. Used when
// building a "surrounding word" template.
func (c Cell) ToLetter() Letter {
	return Letter{code: c.code & LetterMask}
}

func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	return fmt.Sprintf("%c", DefaultCodec.Decode([]Code{c.code})[0])
}

// Word is an ordered sequence of Tiles: a candidate or placed word.
type Word struct {
	tiles []Tile
}

// NewWord wraps a slice of Tiles as a Word.
func NewWord(tiles []Tile) Word { return Word{tiles: append([]Tile(nil), tiles...)} }

// Len returns the number of tiles in the word.
func (w Word) Len() int { return len(w.tiles) }

// At returns the tile at position i.
func (w Word) At(i int) Tile { return w.tiles[i] }

// Tiles returns the underlying tile slice (read-only by convention).
func (w Word) Tiles() []Tile { return w.tiles }

// Push returns a new Word with t appended.
func (w Word) Push(t Tile) Word {
	next := make([]Tile, len(w.tiles), len(w.tiles)+1)
	copy(next, w.tiles)
	return Word{tiles: append(next, t)}
}

// Codes returns the raw codes of every tile in the word, in order.
func (w Word) Codes() []Code {
	codes := make([]Code, len(w.tiles))
	for i, t := range w.tiles {
		codes[i] = t.Code()
	}
	return codes
}

// WordFromCodes builds a Word from raw codes, validating each one.
func WordFromCodes(codes []Code) (Word, error) {
	tiles := make([]Tile, len(codes))
	for i, code := range codes {
		t, err := NewTile(code)
		if err != nil {
			return Word{}, err
		}
		tiles[i] = t
	}
	return Word{tiles: tiles}, nil
}

// RackSize is the maximum number of tiles a player holds at once.
const RackSize = 7

// Letters is a rack: an unordered multiset of up to RackSize+1
// Letters, represented as an ordered slice. Matching code
// deduplicates by skipping letters already seen earlier in the
// slice at a given position, so order never affects results.
type Letters struct {
	letters []Letter
}

// NewLetters wraps a slice of Letters.
func NewLetters(letters []Letter) Letters {
	return Letters{letters: append([]Letter(nil), letters...)}
}

// LettersFromCodes builds a Letters rack from raw codes.
func LettersFromCodes(codes []Code) (Letters, error) {
	letters := make([]Letter, len(codes))
	for i, code := range codes {
		l, err := NewLetter(code)
		if err != nil {
			return Letters{}, err
		}
		letters[i] = l
	}
	return Letters{letters: letters}, nil
}

// BlankLetters returns a rack consisting of a single unassigned
// blank, used by Wordlist.GetLegalCharacters to probe legal characters.
func BlankLetters() Letters {
	return Letters{letters: []Letter{{code: BlankCode}}}
}

// Len returns the number of letters in the rack.
func (ls Letters) Len() int { return len(ls.letters) }

// At returns the letter at position i.
func (ls Letters) At(i int) Letter { return ls.letters[i] }

// Codes returns the raw codes of every letter, in order.
func (ls Letters) Codes() []Code {
	codes := make([]Code, len(ls.letters))
	for i, l := range ls.letters {
		codes[i] = l.Code()
	}
	return codes
}

// Remove returns a copy of the rack with the letter at position pos
// removed; it does not mutate the receiver.
func (ls Letters) Remove(pos int) Letters {
	next := make([]Letter, 0, len(ls.letters)-1)
	for i, l := range ls.letters {
		if i != pos {
			next = append(next, l)
		}
	}
	return Letters{letters: next}
}

// Row is an ordered sequence of Cells representing one line of the
// board (15 squares), with room for the one-cell right sentinel
// appended at match time (capacity 16).
type Row struct {
	cells []Cell
}

// NewRow wraps a slice of Cells as a Row.
func NewRow(cells []Cell) Row { return Row{cells: append([]Cell(nil), cells...)} }

// Len returns the number of cells in the row.
func (r Row) Len() int { return len(r.cells) }

// At returns the cell at column i.
func (r Row) At(i int) Cell { return r.cells[i] }

// WithSentinel returns a copy of the row with one empty cell
// appended, matching the right-edge sentinel used during matching.
func (r Row) WithSentinel() Row {
	next := make([]Cell, len(r.cells), len(r.cells)+1)
	copy(next, r.cells)
	return Row{cells: append(next, EmptyCell)}
}

// IsEmptyCell reports whether the row is a single empty cell (the
// degenerate "surrounding word" of an isolated, unconnected square).
func (r Row) IsEmptyCell() bool {
	return len(r.cells) == 1 && r.cells[0].IsEmpty()
}

// StartEnd returns the [start,end) half-open range of the maximal
// run of non-empty cells touching index i, extended to include
// index i itself even if it is empty. This is the "word run
// containing i" used to build a surrounding word.
func (r Row) StartEnd(i int) (int, int) {
	start := i
	for start > 0 && !r.cells[start-1].IsEmpty() {
		start--
	}
	end := i + 1
	for end < len(r.cells) && !r.cells[end].IsEmpty() {
		end++
	}
	return start, end
}

// SurroundingWord returns the run of cells containing index i,
// projected to letter-only labels (wildcard flags stripped). If the
// run is a single empty cell, the result IsEmptyCell().
func (r Row) SurroundingWord(i int) Row {
	start, end := r.StartEnd(i)
	out := make([]Cell, end-start)
	for j := start; j < end; j++ {
		c := r.cells[j]
		if c.IsEmpty() {
			out[j-start] = c
		} else {
			out[j-start] = Cell{code: c.ToLetter().Code()}
		}
	}
	return Row{cells: out}
}

// Replace returns a copy of the row with cells [start,end) replaced
// by repeating `to` in place of every cell equal to `from`; used to
// substitute a single newly-placed tile into a surrounding word
// template while recursively scoring a crossing word.
func (r Row) Replace(start, end int, from, to Cell) Row {
	next := append([]Cell(nil), r.cells...)
	for i := start; i < end; i++ {
		if next[i] == from {
			next[i] = to
		}
	}
	return Row{cells: next}
}
