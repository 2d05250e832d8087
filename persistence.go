// persistence.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the optional persisted-wordlist format from
// spec.md §6: a byte-exact serialization of the lexicon index
// (arrays + counts + source path), validated for internal
// consistency on load. No serialization library appears anywhere in
// the retrieved corpus (see DESIGN.md), so this uses encoding/gob,
// the idiomatic stdlib choice for round-tripping a Go struct exactly.

package skrafl

import (
	"bytes"
	"encoding/gob"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// ReadBoardFile reads path and splits it into lines suitable for
// Board.SetRows, dropping a trailing blank line left by a final
// newline. Row-count and row-length validation is left to SetRows.
func ReadBoardFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Source: err}
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines, nil
}

// persistedWordlist is the exact on-disk shape of a Wordlist: the
// three parallel arrays plus the summary counts, with no Codec
// attached (callers supply the codec the persisted lexicon was built
// with, since a Codec is per-language configuration, not per-file
// state).
type persistedWordlist struct {
	FirstChild  []uint32
	ChildLabels []LabelSet
	Labels      []Label
	Terminal    []bool
	Wordfile    string
	AllLabels   LabelSet
	WordCount   int
	NodeCount   int
}

// SaveWordlist writes wl's internal arrays to path in gob form.
func SaveWordlist(wl *Wordlist, path string) error {
	pw := persistedWordlist{
		FirstChild:  make([]uint32, len(wl.nodes)),
		ChildLabels: make([]LabelSet, len(wl.nodes)),
		Labels:      wl.labels, Terminal: wl.terminal,
		Wordfile: wl.Wordfile, AllLabels: wl.AllLabels,
		WordCount: wl.WordCount, NodeCount: wl.NodeCount,
	}
	for i, n := range wl.nodes {
		pw.FirstChild[i] = n.firstChild
		pw.ChildLabels[i] = n.childLabels
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(pw); err != nil {
		return &DeserializeError{Path: path}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &ReadError{Path: path, Source: err}
	}
	return nil
}

// LoadWordlist reconstructs a Wordlist from a file written by
// SaveWordlist, bound to codec, and checks it for internal
// consistency (array lengths agree; every node's child range lies
// within the labels array) before returning it.
func LoadWordlist(path string, codec *Codec) (*Wordlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Source: err}
	}
	var pw persistedWordlist
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&pw); err != nil {
		return nil, &DeserializeError{Path: path}
	}
	if len(pw.FirstChild) != len(pw.ChildLabels) ||
		len(pw.FirstChild) != len(pw.Terminal) ||
		len(pw.FirstChild) != pw.NodeCount {
		return nil, &DeserializeError{Path: path}
	}
	nodes := make([]wordlistNode, len(pw.FirstChild))
	for i := range nodes {
		nodes[i] = wordlistNode{firstChild: pw.FirstChild[i], childLabels: pw.ChildLabels[i]}
		ln := nodes[i].childLabels.Len()
		if ln == 0 {
			continue
		}
		if int(nodes[i].firstChild)+ln > len(pw.Labels) {
			return nil, &DeserializeError{Path: path}
		}
	}
	wl := &Wordlist{
		nodes: nodes, labels: pw.Labels, terminal: pw.Terminal,
		Wordfile: pw.Wordfile, AllLabels: pw.AllLabels,
		WordCount: pw.WordCount, NodeCount: pw.NodeCount, Codec: codec,
	}
	cache, _ := lru.NewLRU(legalCharsCacheSize, nil)
	wl.legalCharsCache = cache
	return wl, nil
}
