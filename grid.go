// grid.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Premium grid (C6): 15x15 cells of
// {None, Start, LetterBonus(k), WordBonus(k)}. The default symmetric
// layout is ported from the teacher's own board.go
// (WORD_MULTIPLIERS_STANDARD / LETTER_MULTIPLIERS_STANDARD), since
// that is the exact standard Wordfeud-style premium layout spec.md
// calls for; the digit-string encoding is kept exactly as the teacher
// expresses it, and NewStandardGrid marks the start square at (7,7).

package skrafl

import "strings"

// N is the board dimension (15x15), matching spec.md's Row length.
const N = 15

// GridCellKind enumerates what kind of premium, if any, a grid cell
// carries.
type GridCellKind int

const (
	None GridCellKind = iota
	Start
	LetterBonus
	WordBonus
)

// GridCell is one cell of the premium grid.
type GridCell struct {
	Kind   GridCellKind
	Factor int // 2 or 3 for LetterBonus/WordBonus; unused otherwise
}

// Grid is the 15x15 premium layout.
type Grid struct {
	cells [N][N]GridCell
}

// wordMultipliersStandard and letterMultipliersStandard are digit
// strings: '1' no bonus, '2'/'3' bonus factor, read row by row.
// Ported verbatim from the teacher's board.go.
var wordMultipliersStandard = [N]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliersStandard = [N]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// NewStandardGrid builds the default symmetric Wordfeud premium
// grid, with the mandatory start square marked at (7,7).
func NewStandardGrid() *Grid {
	g := &Grid{}
	for y := 0; y < N; y++ {
		wordRow := wordMultipliersStandard[y]
		letterRow := letterMultipliersStandard[y]
		for x := 0; x < N; x++ {
			switch {
			case x == 7 && y == 7:
				g.cells[y][x] = GridCell{Kind: Start}
			case wordRow[x] != '1':
				g.cells[y][x] = GridCell{Kind: WordBonus, Factor: int(wordRow[x] - '0')}
			case letterRow[x] != '1':
				g.cells[y][x] = GridCell{Kind: LetterBonus, Factor: int(letterRow[x] - '0')}
			default:
				g.cells[y][x] = GridCell{Kind: None}
			}
		}
	}
	return g
}

// At returns the grid cell at (x,y).
func (g *Grid) At(x, y int) GridCell {
	return g.cells[y][x]
}

// gridToken maps a GridCell back to its external-interface token,
// one of {--, ss, 2l, 3l, 2w, 3w}, per spec.md §6.
func gridToken(c GridCell) string {
	switch c.Kind {
	case Start:
		return "ss"
	case LetterBonus:
		if c.Factor == 3 {
			return "3l"
		}
		return "2l"
	case WordBonus:
		if c.Factor == 3 {
			return "3w"
		}
		return "2w"
	default:
		return "--"
	}
}

func tokenToGridCell(tok string) (GridCell, error) {
	switch tok {
	case "--":
		return GridCell{Kind: None}, nil
	case "ss":
		return GridCell{Kind: Start}, nil
	case "2l":
		return GridCell{Kind: LetterBonus, Factor: 2}, nil
	case "3l":
		return GridCell{Kind: LetterBonus, Factor: 3}, nil
	case "2w":
		return GridCell{Kind: WordBonus, Factor: 2}, nil
	case "3w":
		return GridCell{Kind: WordBonus, Factor: 3}, nil
	default:
		return GridCell{}, &GridParseError{Cell: tok}
	}
}

// GridFromStrings parses 15 rows of 15 space-separated tokens from
// {--, ss, 2l, 3l, 2w, 3w}, per spec.md §6.
func GridFromStrings(rows []string) (*Grid, error) {
	if len(rows) != N {
		return nil, &InvalidRowCount{Count: len(rows)}
	}
	g := &Grid{}
	for y, rowStr := range rows {
		toks := strings.Fields(rowStr)
		if len(toks) != N {
			return nil, &InvalidRowLength{Row: rowStr, Length: len(toks)}
		}
		for x, tok := range toks {
			cell, err := tokenToGridCell(tok)
			if err != nil {
				return nil, err
			}
			g.cells[y][x] = cell
		}
	}
	return g, nil
}

// String renders the grid using its external tokens, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(gridToken(g.cells[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
