// codes.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file defines the raw byte-code constants shared by Tile,
// Letter and Cell, grounded on original_source/lib/src/tiles/codes.rs.

package skrafl

// Label identifies an edge in the lexicon index: the letter a token
// decodes to, without any wildcard flag.
type Label = byte

// Code is the compact one-byte representation of a board/rack token.
// 0 is empty; 1..31 are letter labels; 64 is an unassigned blank;
// 65..95 is a blank assigned to a letter (bit 6 set).
type Code = byte

const (
	// EmptyCode denotes an empty cell.
	EmptyCode Code = 0
	// BlankCode denotes an unassigned wildcard tile.
	BlankCode Code = 0x40
	// LetterMask isolates the low 5 bits carrying the letter label.
	LetterMask Code = 0b0001_1111
	// IsWildcard is set on a Tile that is a blank assigned to a letter.
	IsWildcard Code = 0x40
	// maxLabel is the highest label value the 32-bit LabelSet can hold.
	maxLabel = 31
)
