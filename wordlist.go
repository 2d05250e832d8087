// wordlist.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Lexicon index (C4): a breadth-first-
// flattened trie with per-node child bit-set, terminal flag and
// contiguous child block. This deliberately does not reuse the
// teacher's own dawg.go (a compressed byte-buffer, rune-keyed DAWG
// with an LRU cross-check cache); that representation doesn't match
// the flattened-array design this engine requires. Instead, this is
// a direct port of original_source/lib/src/wordlist.rs, written in
// the teacher's doc-comment and receiver-naming idiom. The teacher's
// hashicorp/golang-lru dependency (originally backing dawg.go's
// crossCache) is repurposed below for the same kind of memoization:
// caching legal-character computations per surrounding-word shape.

package skrafl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

type wordlistNode struct {
	firstChild uint32
	childLabels LabelSet
}

// Wordlist is a trie data structure holding every word accepted by
// the lexicon, flattened into parallel arrays for O(1) child lookup.
type Wordlist struct {
	nodes    []wordlistNode
	labels   []Label
	terminal []bool
	// Wordfile is the path the wordlist was built from, empty if
	// built directly from a word slice.
	Wordfile string
	// AllLabels is the union of every edge label in the trie.
	AllLabels LabelSet
	WordCount int
	NodeCount int
	Codec     *Codec

	legalCharsCache *lru.LRU
}

const legalCharsCacheSize = 4096

func (wl *Wordlist) String() string {
	return fmt.Sprintf("<Wordlist: %d words, %d nodes from '%s'>",
		wl.WordCount, wl.NodeCount, wl.Wordfile)
}

// flatten performs the breadth-first flatten of a trieBuilder into
// a Wordlist's parallel arrays.
func flatten(b *trieBuilder, codec *Codec) *Wordlist {
	wl := &Wordlist{Codec: codec}
	cache, _ := lru.NewLRU(legalCharsCacheSize, nil)
	wl.legalCharsCache = cache

	type queued struct {
		node   *trieNode
		parent int
		label  Label
	}
	queue := []queued{{node: b.root, parent: 0, label: 0}}
	i := 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		var ls LabelSet
		for _, c := range item.node.children {
			ls = ls.Insert(c.label)
			wl.AllLabels = wl.AllLabels.Insert(c.label)
			queue = append(queue, queued{node: c.node, parent: i, label: c.label})
		}
		if item.node.terminal {
			wl.WordCount++
		}
		wl.nodes = append(wl.nodes, wordlistNode{childLabels: ls})
		wl.terminal = append(wl.terminal, item.node.terminal)
		wl.labels = append(wl.labels, item.label)
		if wl.nodes[item.parent].firstChild == 0 && i != item.parent {
			wl.nodes[item.parent].firstChild = uint32(i)
		}
		i++
		wl.NodeCount++
	}
	return wl
}

// FromWords builds a Wordlist directly from a slice of words.
func FromWords(words []string, codec *Codec) (*Wordlist, error) {
	b := newTrieBuilder()
	for _, w := range words {
		codes, err := codec.Encode(w)
		if err != nil {
			return nil, err
		}
		b.insert(codes)
	}
	return flatten(b, codec), nil
}

// FromFile reads a newline-delimited, UTF-8 wordlist file and builds
// a Wordlist from it. Trailing whitespace is trimmed; blank lines
// are ignored.
func FromFile(path string, codec *Codec) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Source: err}
	}
	defer f.Close()

	b := newTrieBuilder()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		codes, err := codec.Encode(word)
		if err != nil {
			return nil, err
		}
		b.insert(codes)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Path: path, Source: err}
	}
	wl := flatten(b, codec)
	wl.Wordfile = path
	return wl, nil
}

// Encode encodes a word using the wordlist's own codec.
func (wl *Wordlist) Encode(word string) ([]Code, error) {
	return wl.Codec.Encode(word)
}

// Decode decodes a sequence of codes using the wordlist's own codec.
func (wl *Wordlist) Decode(codes []Code) string {
	return wl.Codec.Decode(codes)
}

// RangeChildren returns the half-open [start,end) array range of
// node i's children, or ok=false if node i has no children.
func (wl *Wordlist) RangeChildren(i int) (start, end int, ok bool) {
	n := wl.nodes[i]
	ln := n.childLabels.Len()
	if ln == 0 {
		return 0, 0, false
	}
	s := int(n.firstChild)
	return s, s + ln, true
}

// IterChildren calls fn for each (label, childIndex) pair of node i,
// in ascending label order.
func (wl *Wordlist) IterChildren(i int, fn func(label Label, child int)) {
	start, end, ok := wl.RangeChildren(i)
	if !ok {
		return
	}
	for idx := start; idx < end; idx++ {
		fn(wl.labels[idx], idx)
	}
}

// Get returns the child of node i reached via label, if present.
func (wl *Wordlist) Get(i int, label Label) (int, bool) {
	n := wl.nodes[i]
	idx := n.childLabels.IndexOf(label)
	if idx < 0 {
		return 0, false
	}
	return int(n.firstChild) + idx, true
}

// IsWord reports whether the given sequence of labels is a complete
// word in the lexicon.
func (wl *Wordlist) IsWord(word []Label) bool {
	i := 0
	for _, label := range word {
		child, ok := wl.Get(i, label)
		if !ok {
			return false
		}
		i = child
	}
	return wl.terminal[i]
}

// ConnectedRow returns a fully-permissive RowData the length of row:
// every cell accepts AllLabels and is Connected. Used to compute the
// legal characters for a surrounding word with no board constraint.
func (wl *Wordlist) ConnectedRow(row Row) RowData {
	cells := make([]RowCell, row.Len())
	for i := range cells {
		cells[i] = RowCell{Legal: wl.AllLabels, Connected: true}
	}
	return RowData{cells: cells}
}
