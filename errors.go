// errors.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file defines the structured error kinds surfaced by the
// skrafl engine, one per failure mode named in the design: codec
// domain errors, structural input errors and board placement errors.
// Each kind carries the data a caller needs to display or branch on,
// rather than a bare message.

package skrafl

import "fmt"

// ReadError wraps an I/O failure while loading a wordlist file.
type ReadError struct {
	Path   string
	Source error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading wordlist '%s': %v", e.Path, e.Source)
}

func (e *ReadError) Unwrap() error {
	return e.Source
}

// DeserializeError is returned when a persisted lexicon cannot be
// reconstructed into an internally consistent Wordlist.
type DeserializeError struct {
	Path string
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("deserializing wordlist '%s': corrupt or inconsistent data", e.Path)
}

// EncodeStringTooLong is returned by Codec.Encode when a token
// string has more tokens than DIM (16) allows.
type EncodeStringTooLong struct {
	Text string
}

func (e *EncodeStringTooLong) Error() string {
	return fmt.Sprintf("string too long to encode: %q", e.Text)
}

// EncodeInvalidToken is returned by Codec.Encode when a token is not
// present in the codec's encoder map.
type EncodeInvalidToken struct {
	Text string
}

func (e *EncodeInvalidToken) Error() string {
	return fmt.Sprintf("invalid token in string: %q", e.Text)
}

// InvalidTileCode is returned when a byte outside the valid tile
// code ranges (1..31, 65..95) is interpreted as a Tile.
type InvalidTileCode struct {
	Code Code
}

func (e *InvalidTileCode) Error() string {
	return fmt.Sprintf("invalid tile code: %d", e.Code)
}

// InvalidLetterCode is returned when a byte outside the valid
// letter code range is interpreted as a Letter.
type InvalidLetterCode struct {
	Code Code
}

func (e *InvalidLetterCode) Error() string {
	return fmt.Sprintf("invalid letter code: %d", e.Code)
}

// InvalidRowCount is returned when board state is given with a
// number of rows other than N.
type InvalidRowCount struct {
	Count int
}

func (e *InvalidRowCount) Error() string {
	return fmt.Sprintf("invalid row count: %d, expected %d", e.Count, N)
}

// InvalidRowLength is returned when a board state row does not have
// exactly N tokens.
type InvalidRowLength struct {
	Row    string
	Length int
}

func (e *InvalidRowLength) Error() string {
	return fmt.Sprintf("invalid row length %d for row %q, expected %d", e.Length, e.Row, N)
}

// GridParseError is returned when a premium-grid token is not one of
// the recognized cell kinds.
type GridParseError struct {
	Cell string
}

func (e *GridParseError) Error() string {
	return fmt.Sprintf("invalid grid cell: %q", e.Cell)
}

// TilePlacementError is returned when a word would overrun the edge
// of the board.
type TilePlacementError struct {
	X, Y       int
	Horizontal bool
	Len        int
}

func (e *TilePlacementError) Error() string {
	return fmt.Sprintf(
		"word of length %d at (%d,%d) horizontal=%v runs off the board",
		e.Len, e.X, e.Y, e.Horizontal,
	)
}

// TileReplaceError is returned when a word would overwrite a
// different, already-placed tile.
type TileReplaceError struct {
	X, Y int
}

func (e *TileReplaceError) Error() string {
	return fmt.Sprintf("square (%d,%d) is already occupied by a different tile", e.X, e.Y)
}

// BagUnderflowError is returned when removing a tile code from a
// TileBag would take its remaining count below zero.
type BagUnderflowError struct {
	Code Code
}

func (e *BagUnderflowError) Error() string {
	return fmt.Sprintf("tile bag has no remaining tile with code %d", e.Code)
}
