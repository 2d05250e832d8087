// labelset.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements LabelSet (C3): a 32-bit bit-mask set of
// labels, sufficient since the alphabet is bounded at 31 letters.
// Grounded on original_source/lib/src/labelset.rs, written in the
// teacher's own receiver-method idiom (see Alphabet.MakeSet/Member
// in dawg.go, which this supersedes for the lexicon but whose
// naming conventions this follows).

package skrafl

import "math/bits"

// LabelSet is a set of labels in 1..31, represented as a bit-mask.
type LabelSet uint32

// NewLabelSet returns the empty set.
func NewLabelSet() LabelSet { return LabelSet(0) }

// Contains reports whether label is a member of the set.
func (s LabelSet) Contains(label Label) bool {
	return s&(1<<label) != 0
}

// Insert returns the set with label added.
func (s LabelSet) Insert(label Label) LabelSet {
	return s | (1 << label)
}

// Len returns the number of labels in the set.
func (s LabelSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether the set has no members.
func (s LabelSet) IsEmpty() bool {
	return s == 0
}

// Intersect returns the intersection of the two sets.
func (s LabelSet) Intersect(other LabelSet) LabelSet {
	return s & other
}

// IndexOf returns the rank of label among the set's members in
// ascending order (0-based), or -1 if label is not a member. This is
// the O(1) child-offset computation for the lexicon: zero out every
// bit at or above label, then pop-count what remains.
func (s LabelSet) IndexOf(label Label) int {
	if !s.Contains(label) {
		return -1
	}
	lowMask := uint32(1)<<label - 1
	return bits.OnesCount32(uint32(s) & lowMask)
}

// Labels returns the set's members as a sorted slice.
func (s LabelSet) Labels() []Label {
	out := make([]Label, 0, s.Len())
	for label := Label(0); label <= maxLabel; label++ {
		if s.Contains(label) {
			out = append(out, label)
		}
	}
	return out
}

// LabelSetFromCodes builds a LabelSet from a slice of codes,
// treating each code as a label directly (no wildcard stripping).
func LabelSetFromCodes(codes []Code) LabelSet {
	var s LabelSet
	for _, c := range codes {
		s = s.Insert(c)
	}
	return s
}
