package skrafl

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	c := NewCodec(nil)
	cases := []string{"abel", "rust", "a", "z", "abc.def", "*ab"}
	for _, s := range cases {
		codes, err := c.Encode(s)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", s, err)
		}
		got := c.Decode(codes)
		if got != s {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", s, got, s)
		}
	}
}

func TestCodecSpaceNormalizesToDot(t *testing.T) {
	c := NewCodec(nil)
	codes, err := c.Encode(" ")
	if err != nil {
		t.Fatalf("Encode(\" \") failed: %v", err)
	}
	if got := c.Decode(codes); got != "." {
		t.Errorf("Decode(Encode(\" \")) = %q, want %q", got, ".")
	}
}

func TestCodecBlankAndWildcard(t *testing.T) {
	c := NewCodec(nil)
	codes, err := c.Encode("A")
	if err != nil {
		t.Fatalf("Encode(\"A\") failed: %v", err)
	}
	if len(codes) != 1 {
		t.Fatalf("Encode(\"A\") returned %d codes, want 1", len(codes))
	}
	if codes[0]&IsWildcard == 0 {
		t.Errorf("uppercase token should encode as a wildcard-assigned code")
	}
	if got := c.Decode(codes); got != "A" {
		t.Errorf("Decode(Encode(\"A\")) = %q, want %q", got, "A")
	}

	blank, err := c.Encode("*")
	if err != nil {
		t.Fatalf("Encode(\"*\") failed: %v", err)
	}
	if blank[0] != BlankCode {
		t.Errorf("Encode(\"*\")[0] = %d, want BlankCode", blank[0])
	}
}

func TestCodecInvalidToken(t *testing.T) {
	c := NewCodec(nil)
	if _, err := c.Encode("1"); err == nil {
		t.Error("expected an error encoding a digit token")
	}
}

func TestCodecExtraAlphabet(t *testing.T) {
	c := NewCodec([]string{"á", "ö"})
	codes, err := c.Encode("áö")
	if err != nil {
		t.Fatalf("Encode(\"áö\") failed: %v", err)
	}
	if len(codes) != 2 {
		t.Fatalf("Encode(\"áö\") returned %d codes, want 2", len(codes))
	}
	if got := c.Decode(codes); got != "áö" {
		t.Errorf("Decode(Encode(\"áö\")) = %q, want %q", got, "áö")
	}
}
