// matches.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Row matcher (C7): given a row, its
// cross-constraint rowdata, a start column and a rack, it enumerates
// every legal word fit. Grounded on
// original_source/lib/src/wordlist/matches.rs, collapsed from the
// Rust crate's lazy Iterator into an eager slice-returning method,
// matching the teacher's own style in dawg.go (Permute/Match both
// return []string rather than an iterator).

package skrafl

// matchState is one pending branch of the matcher's traversal:
// (node, pos, rackRemaining, wordSoFar, connecting, extending), per
// spec.md §4.3.
type matchState struct {
	node       int
	pos        int
	rack       Letters
	word       Word
	connecting bool
	extending  bool
}

// Matches enumerates every legal word beginning at the start of row
// (row and rowdata must already include the trailing sentinel entry;
// see Words and GetLegalCharacters, which both arrange this).
func (wl *Wordlist) Matches(row Row, rowdata RowData, rack Letters) []Word {
	var out []Word
	work := []matchState{{node: 0, pos: 0, rack: rack, word: NewWord(nil)}}
	for len(work) > 0 {
		st := work[len(work)-1]
		work = work[:len(work)-1]
		wl.matchStep(row, rowdata, st, &work, &out)
	}
	return out
}

func (wl *Wordlist) matchStep(row Row, rowdata RowData, st matchState, work *[]matchState, out *[]Word) {
	atBoundary := st.pos == row.Len() || row.At(st.pos).IsEmpty()
	if atBoundary && wl.terminal[st.node] && st.connecting && st.extending && st.word.Len() > 1 {
		*out = append(*out, st.word)
	}
	if st.pos == row.Len() {
		return
	}
	cell := row.At(st.pos)
	if tile, ok := cell.Tile(); ok {
		if child, ok := wl.Get(st.node, tile.Label()); ok {
			*work = append(*work, matchState{
				node:       child,
				pos:        st.pos + 1,
				rack:       st.rack,
				word:       st.word.Push(tile),
				connecting: true,
				extending:  st.extending,
			})
		}
		return
	}
	if st.pos >= row.Len()-1 {
		return
	}
	rd := rowdata.At(st.pos)
	seen := make(map[Code]bool, st.rack.Len())
	for idx := 0; idx < st.rack.Len(); idx++ {
		letter := st.rack.At(idx)
		if seen[letter.Code()] {
			continue
		}
		seen[letter.Code()] = true
		if letter.IsBlank() {
			wl.IterChildren(st.node, func(w Label, child int) {
				if !rd.Legal.Contains(w) {
					return
				}
				*work = append(*work, matchState{
					node:       child,
					pos:        st.pos + 1,
					rack:       st.rack.Remove(idx),
					word:       st.word.Push(WildcardFromLabel(w)),
					connecting: st.connecting || rd.Connected,
					extending:  true,
				})
			})
			continue
		}
		if !rd.Legal.Contains(letter.Label()) {
			continue
		}
		child, ok := wl.Get(st.node, letter.Label())
		if !ok {
			continue
		}
		*work = append(*work, matchState{
			node:       child,
			pos:        st.pos + 1,
			rack:       st.rack.Remove(idx),
			word:       st.word.Push(letter.AsTile()),
			connecting: st.connecting || rd.Connected,
			extending:  true,
		})
	}
}

// StartIndices returns the set of columns where a word placement is
// meaningful, given the maximum rack size maxdist. row and rowdata
// are the plain N-cell row/rowdata, without any sentinel appended.
func (wl *Wordlist) StartIndices(row Row, rowdata RowData, maxdist int) []int {
	n := row.Len()
	far := n + 1
	dist := make([]int, n)
	d := far
	for i := n - 1; i >= 0; i-- {
		if _, ok := row.At(i).Tile(); ok {
			d = 0
		} else if rowdata.At(i).Connected {
			d = 1
		} else if d < far {
			d++
		}
		dist[i] = d
	}
	var starts []int
	for i := 0; i < n; i++ {
		leftEmpty := i == 0 || row.At(i-1).IsEmpty()
		if leftEmpty && dist[i] <= maxdist {
			starts = append(starts, i)
		}
	}
	return starts
}

// WordHit is one (startColumn, word) result from Words.
type WordHit struct {
	Start int
	Word  Word
}

// Words returns every (startColumn, word) hit for the given rack
// against row/rowdata (plain N-cell, no sentinel), scanning every
// legal start index up to maxdist = rack.Len().
func (wl *Wordlist) Words(row Row, rowdata RowData, rack Letters) []WordHit {
	sentinelRow := row.WithSentinel()
	sentinelData := rowdata.WithSentinel()
	starts := wl.StartIndices(row, rowdata, rack.Len())
	var out []WordHit
	for _, start := range starts {
		sub := sentinelRow.sliceFrom(start)
		subData := sentinelData.sliceFrom(start)
		for _, w := range wl.Matches(sub, subData, rack) {
			out = append(out, WordHit{Start: start, Word: w})
		}
	}
	return out
}

// sliceFrom returns the suffix of the row starting at column start.
func (r Row) sliceFrom(start int) Row {
	return Row{cells: append([]Cell(nil), r.cells[start:]...)}
}

func (rd RowData) sliceFrom(start int) RowData {
	return RowData{cells: append([]RowCell(nil), rd.cells[start:]...)}
}

// legalCharsKey returns a comparable key for word's cell codes, used
// to memoize GetLegalCharacters lookups in Wordlist.legalCharsCache.
func legalCharsKey(word Row) string {
	b := make([]byte, word.Len())
	for i := 0; i < word.Len(); i++ {
		b[i] = word.At(i).Code()
	}
	return string(b)
}

// GetLegalCharacters returns the set of labels that could legally
// fill the single empty slot in the given surrounding-word template,
// memoized in legalCharsCache since Board.calcRowdata calls this for
// every row and column each time the board changes, mostly with the
// same small set of surrounding-word shapes.
func (wl *Wordlist) GetLegalCharacters(word Row) LabelSet {
	if word.IsEmptyCell() {
		return wl.AllLabels
	}
	key := legalCharsKey(word)
	if wl.legalCharsCache != nil {
		if cached, ok := wl.legalCharsCache.Get(key); ok {
			return cached.(LabelSet)
		}
	}
	emptyPos := -1
	for i := 0; i < word.Len(); i++ {
		if word.At(i).IsEmpty() {
			emptyPos = i
			break
		}
	}
	rowdata := wl.ConnectedRow(word)
	matches := wl.Matches(word.WithSentinel(), rowdata.WithSentinel(), BlankLetters())
	var legal LabelSet
	for _, w := range matches {
		if emptyPos >= 0 && emptyPos < w.Len() {
			legal = legal.Insert(w.At(emptyPos).Label())
		}
	}
	if wl.legalCharsCache != nil {
		wl.legalCharsCache.Add(key, legal)
	}
	return legal
}
