// codec.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Codec (C1): a bidirectional mapping
// between human-readable tokens and the compact byte codes used
// throughout the engine. Grounded on
// original_source/lib/src/tiles/codec.rs.

package skrafl

import "strings"

// DIM is the maximum number of tokens a single Codec.Encode call will
// accept: a full board row (15) plus the right-edge sentinel (1).
const DIM = 16

// asciiLower is the base alphabet every Codec starts from.
const asciiLower = "abcdefghijklmnopqrstuvwxyz"

// Codec maps between token strings ("a", "z", language extras, ".",
// "*") and the one-byte codes defined in codes.go.
type Codec struct {
	encoder map[string]Code
	// decoder[code] holds the lower-case token and, if the code is a
	// wildcard-assigned code, the upper-case token; empty string
	// means "no token for this code".
	decoder [256][2]string
}

// NewCodec builds a Codec for the base a-z alphabet, extended with
// the given extra lower-case letters (each becomes the next label
// after 'z', in order). "." and "*" are always available, decoding
// to "." and "*" respectively; " " also encodes to empty but always
// decodes back to ".".
func NewCodec(extra []string) *Codec {
	c := &Codec{encoder: make(map[string]Code)}
	var label Code = 1
	for _, ch := range asciiLower {
		c.addLetter(string(ch), label)
		label++
	}
	for _, tok := range extra {
		c.addLetter(tok, label)
		label++
	}
	c.encoder["."] = EmptyCode
	c.encoder[" "] = EmptyCode
	c.decoder[EmptyCode] = [2]string{".", ""}
	c.encoder["*"] = BlankCode
	c.decoder[BlankCode] = [2]string{"*", ""}
	return c
}

// addLetter registers both the lower-case (plain letter) and
// upper-case (blank assigned to that letter) tokens for a label.
func (c *Codec) addLetter(tok string, label Code) {
	if tok == "" {
		return
	}
	lower := strings.ToLower(tok)
	upper := strings.ToUpper(tok)
	c.encoder[lower] = label
	c.encoder[upper] = label | IsWildcard
	c.decoder[label] = [2]string{lower, c.decoder[label][1]}
	c.decoder[label|IsWildcard] = [2]string{"", upper}
}

// tokenize splits a string into one-token-per-rune. This does not
// support multi-rune tokens (e.g. Spanish "ll"); a future extension
// would need a longest-match tokenizer here.
func tokenize(s string) []string {
	runes := []rune(s)
	toks := make([]string, len(runes))
	for i, r := range runes {
		toks[i] = string(r)
	}
	return toks
}

// Encode converts a token string into a sequence of codes.
func (c *Codec) Encode(s string) ([]Code, error) {
	toks := tokenize(s)
	if len(toks) > DIM {
		return nil, &EncodeStringTooLong{Text: s}
	}
	codes := make([]Code, len(toks))
	for i, tok := range toks {
		code, ok := c.encoder[tok]
		if !ok {
			return nil, &EncodeInvalidToken{Text: s}
		}
		codes[i] = code
	}
	return codes, nil
}

// Decode converts a sequence of codes back into a token string. It
// is total over valid codes: every code in 0..255 produced by this
// Codec's own Encode decodes back to something.
func (c *Codec) Decode(codes []Code) string {
	var sb strings.Builder
	for _, code := range codes {
		pair := c.decoder[code]
		if code&IsWildcard != 0 && code != BlankCode {
			sb.WriteString(pair[1])
		} else if pair[0] != "" {
			sb.WriteString(pair[0])
		} else {
			sb.WriteString(".")
		}
	}
	return sb.String()
}

// DefaultCodec is the plain a-z codec with no language extras,
// shared by tests and by callers that don't need extended alphabets.
var DefaultCodec = NewCodec(nil)
