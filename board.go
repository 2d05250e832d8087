// board.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Board engine (C8): the horizontal and
// vertical mirrors of board state, the derived cross-constraint
// rowdata, placement scoring and play/undo. Grounded on the teacher's
// own board.go (Square/Board layout, StartSquare, premium-grid
// application) and movegen.go (the 30-goroutine fan-out idiom reused
// below for calcAllWordScores), generalized from GoSkrafl's rune-keyed
// Board to the byte-code Row/Cell/Tile types, per
// original_source/lib/src/board.rs.

package skrafl

// Orientation names one of the board's two mirrored axes.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// BingoBonus is the points awarded for placing an entire rack (7
// tiles) in a single move. The original_source crate and spec.md
// both use 40; the teacher's own move.go uses 50 for its Explo board
// variant, which does not apply here.
const BingoBonus = 40

// ScoredWord is one candidate placement and its score, as returned by
// calcAllWordScores.
type ScoredWord struct {
	X, Y       int
	Horizontal bool
	Word       Word
	Score      int
}

// Board holds the two mirrored 15x15 state arrays, their derived
// rowdata, and read-only references to the lexicon, tile set and
// premium grid that scoring and matching are computed against.
type Board struct {
	H [N]Row
	V [N]Row

	// rowdata[Horizontal][i] is the cross-constraint data for row i,
	// derived from the vertical (crossing) axis; rowdata[Vertical][i]
	// is the cross-constraint data for column i, derived from H.
	rowdata [2][N]RowData

	Lexicon *Wordlist
	Tiles   *TileSet
	Grid    *Grid
}

// NewBoard builds an empty board bound to the given lexicon, tile set
// and premium grid.
func NewBoard(lexicon *Wordlist, tiles *TileSet, grid *Grid) *Board {
	b := &Board{Lexicon: lexicon, Tiles: tiles, Grid: grid}
	emptyRow := make([]Cell, N)
	for i := 0; i < N; i++ {
		b.H[i] = NewRow(emptyRow)
		b.V[i] = NewRow(emptyRow)
	}
	b.recomputeRowdata()
	return b
}

// BoardState is a snapshot suitable for setState/save-restore.
type BoardState struct {
	H       [N]Row
	V       [N]Row
	rowdata [2][N]RowData
}

// State returns an immutable snapshot of the board's current H/V and
// rowdata, for later restoration via SetState.
func (b *Board) State() BoardState {
	return BoardState{H: b.H, V: b.V, rowdata: b.rowdata}
}

// SetState restores a previously captured BoardState, bit-exactly.
func (b *Board) SetState(s BoardState) {
	b.H = s.H
	b.V = s.V
	b.rowdata = s.rowdata
}

// SetRows stores 15 rows of board-state tokens (see spec.md §6: space
// or "." empty, lowercase a plain tile, uppercase a wildcard assigned
// to that letter), rebuilding V and rowdata from them.
func (b *Board) SetRows(rows []string) error {
	if len(rows) != N {
		return &InvalidRowCount{Count: len(rows)}
	}
	var h [N]Row
	for y, rowStr := range rows {
		codes, err := b.Lexicon.Encode(rowStr)
		if err != nil {
			return err
		}
		if len(codes) != N {
			return &InvalidRowLength{Row: rowStr, Length: len(codes)}
		}
		cells := make([]Cell, N)
		for x, code := range codes {
			cells[x] = Cell{code: code}
		}
		h[y] = NewRow(cells)
	}
	b.H = h
	b.mirror()
	b.recomputeRowdata()
	return nil
}

// mirror rebuilds V from H so that V[x].At(y) == H[y].At(x) for all
// x,y — the mirror invariant.
func (b *Board) mirror() {
	for x := 0; x < N; x++ {
		cells := make([]Cell, N)
		for y := 0; y < N; y++ {
			cells[y] = b.H[y].At(x)
		}
		b.V[x] = NewRow(cells)
	}
}

// isStartSquare reports whether (x,y) is the mandatory (7,7) start
// square.
func isStartSquare(x, y int) bool { return x == 7 && y == 7 }

// recomputeRowdata derives rowdata[Horizontal][*] and
// rowdata[Vertical][*] from the current H/V state.
func (b *Board) recomputeRowdata() {
	for i := 0; i < N; i++ {
		b.rowdata[Horizontal][i] = b.calcRowdata(Horizontal, i)
		b.rowdata[Vertical][i] = b.calcRowdata(Vertical, i)
	}
}

// calcRowdata computes the cross-constraint data for row/column i
// along the given orientation, per spec.md §4.4: for each position j
// it derives (legalCharsFor(surrounding word of the crossing line at
// (i,j)), isConnected(...)), with the start-square exception forcing
// Connected=true at (7,7) when that cell is empty.
func (b *Board) calcRowdata(orient Orientation, i int) RowData {
	cells := make([]RowCell, N)
	for j := 0; j < N; j++ {
		var x, y int
		var crossRow Row
		var pos int
		if orient == Horizontal {
			x, y = j, i
			crossRow = b.V[x]
			pos = y
		} else {
			x, y = i, j
			crossRow = b.H[y]
			pos = x
		}
		surrounding := crossRow.SurroundingWord(pos)
		legal := b.Lexicon.GetLegalCharacters(surrounding)
		connected := surrounding.Len() > 1
		if isStartSquare(x, y) && crossRow.At(pos).IsEmpty() {
			connected = true
		}
		cells[j] = RowCell{Legal: legal, Connected: connected}
	}
	return NewRowData(cells)
}

// words returns every (startColumn, word) hit along row/column i of
// the given orientation, for the given rack.
func (b *Board) words(orient Orientation, i int, rack Letters) []WordHit {
	var row Row
	if orient == Horizontal {
		row = b.H[i]
	} else {
		row = b.V[i]
	}
	return b.Lexicon.Words(row, b.rowdata[orient][i], rack)
}

// isOccupied is a bounds-checked lookup of whether (x,y) holds a tile.
func (b *Board) isOccupied(x, y int) bool {
	if x < 0 || x >= N || y < 0 || y >= N {
		return false
	}
	return !b.H[y].At(x).IsEmpty()
}

// calcWordPoints scores placing word at (x,y), extending rightward if
// horiz else downward, against the current board snapshot. Cells
// already occupied on the board contribute base points only, never
// premiums; newly placed cells apply letter/word bonuses and, if
// includeCross, recursively score any crossing word they complete.
func (b *Board) calcWordPoints(word Word, x, y int, horiz bool, includeCross bool) (int, error) {
	length := word.Len()
	if horiz {
		if x < 0 || y < 0 || y >= N || x+length > N {
			return 0, &TilePlacementError{X: x, Y: y, Horizontal: horiz, Len: length}
		}
	} else {
		if x < 0 || y < 0 || x >= N || y+length > N {
			return 0, &TilePlacementError{X: x, Y: y, Horizontal: horiz, Len: length}
		}
	}

	wordMultiplier := 1
	letterPoints := 0
	crossPoints := 0
	newCount := 0

	for k := 0; k < length; k++ {
		tile := word.At(k)
		cx, cy := x, y
		if horiz {
			cx += k
		} else {
			cy += k
		}
		pts := b.Tiles.Points(tile.Label())
		if tile.IsWildcard() {
			pts = 0
		}
		if b.isOccupied(cx, cy) {
			letterPoints += pts
			continue
		}
		newCount++
		cell := b.Grid.At(cx, cy)
		switch cell.Kind {
		case WordBonus:
			wordMultiplier *= cell.Factor
		case LetterBonus:
			pts *= cell.Factor
		}
		letterPoints += pts

		if !includeCross {
			continue
		}
		var crossRow Row
		var crossPos int
		if horiz {
			crossRow = b.V[cx]
			crossPos = cy
		} else {
			crossRow = b.H[cy]
			crossPos = cx
		}
		start, end := crossRow.StartEnd(crossPos)
		if end-start <= 1 {
			continue
		}
		filled := crossRow.Replace(start, end, EmptyCell, tile.AsCell())
		codes := make([]Code, end-start)
		for idx := start; idx < end; idx++ {
			codes[idx-start] = filled.At(idx).Code()
		}
		crossWord, err := WordFromCodes(codes)
		if err != nil {
			return 0, err
		}
		var cx0, cy0 int
		if horiz {
			cx0, cy0 = cx, start
		} else {
			cx0, cy0 = start, cy
		}
		score, err := b.calcWordPoints(crossWord, cx0, cy0, !horiz, false)
		if err != nil {
			return 0, err
		}
		crossPoints += score
	}

	total := letterPoints*wordMultiplier + crossPoints
	if newCount >= 7 {
		total += BingoBonus
	}
	return total, nil
}

// CalcAllWordScores enumerates and scores every placement across all
// 30 lines (15 rows + 15 columns) for rack, fanning the work out
// across one goroutine per line, mirroring the teacher's own
// GenerateMoves (movegen.go). Results are order-insensitive.
func (b *Board) CalcAllWordScores(rack Letters) ([]ScoredWord, error) {
	type lineResult struct {
		words []ScoredWord
		err   error
	}
	results := make(chan lineResult, 2*N)

	scoreLine := func(orient Orientation, i int) {
		hits := b.words(orient, i, rack)
		out := make([]ScoredWord, 0, len(hits))
		for _, hit := range hits {
			var x, y int
			if orient == Horizontal {
				x, y = hit.Start, i
			} else {
				x, y = i, hit.Start
			}
			score, err := b.calcWordPoints(hit.Word, x, y, orient == Horizontal, true)
			if err != nil {
				results <- lineResult{err: err}
				return
			}
			out = append(out, ScoredWord{X: x, Y: y, Horizontal: orient == Horizontal, Word: hit.Word, Score: score})
		}
		results <- lineResult{words: out}
	}

	for i := 0; i < N; i++ {
		go scoreLine(Horizontal, i)
	}
	for i := 0; i < N; i++ {
		go scoreLine(Vertical, i)
	}

	var all []ScoredWord
	var firstErr error
	for i := 0; i < 2*N; i++ {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
			continue
		}
		all = append(all, r.words...)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return all, nil
}

// PlayWord encodes wordStr, verifies the placement fits and does not
// conflict with existing tiles, and returns the tiles it actually
// consumed from the rack (i.e. newly-placed cells only). If modify is
// true the board is mutated and rowdata rebuilt; otherwise this is a
// pure check (TryWord).
func (b *Board) PlayWord(wordStr string, x, y int, horiz bool, modify bool) ([]Tile, error) {
	codes, err := b.Lexicon.Encode(wordStr)
	if err != nil {
		return nil, err
	}
	word, err := WordFromCodes(codes)
	if err != nil {
		return nil, err
	}
	length := word.Len()
	if horiz {
		if x < 0 || y < 0 || y >= N || x+length > N {
			return nil, &TilePlacementError{X: x, Y: y, Horizontal: horiz, Len: length}
		}
	} else {
		if x < 0 || y < 0 || x >= N || y+length > N {
			return nil, &TilePlacementError{X: x, Y: y, Horizontal: horiz, Len: length}
		}
	}

	type placement struct {
		x, y int
		tile Tile
	}
	var used []Tile
	placements := make([]placement, 0, length)

	for k := 0; k < length; k++ {
		tile := word.At(k)
		cx, cy := x, y
		if horiz {
			cx += k
		} else {
			cy += k
		}
		existing := b.H[cy].At(cx)
		if existing.IsEmpty() {
			used = append(used, tile)
			placements = append(placements, placement{cx, cy, tile})
			continue
		}
		if existing.Code() == tile.Code() {
			continue
		}
		return nil, &TileReplaceError{X: cx, Y: cy}
	}

	if modify {
		for _, p := range placements {
			cell := CellFromTile(p.tile)
			row := b.H[p.y]
			b.H[p.y] = row.Replace(p.x, p.x+1, EmptyCell, cell)
		}
		b.mirror()
		b.recomputeRowdata()
	}
	return used, nil
}

// TryWord checks a placement exactly as PlayWord would, without
// mutating the board.
func (b *Board) TryWord(wordStr string, x, y int, horiz bool) ([]Tile, error) {
	return b.PlayWord(wordStr, x, y, horiz, false)
}
