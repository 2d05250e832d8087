package skrafl

import "testing"

func TestNewStandardGridStartSquare(t *testing.T) {
	g := NewStandardGrid()
	if g.At(7, 7).Kind != Start {
		t.Errorf("At(7,7).Kind = %v, want Start", g.At(7, 7).Kind)
	}
	if g.At(0, 0).Kind != WordBonus || g.At(0, 0).Factor != 3 {
		t.Errorf("At(0,0) = %+v, want a 3x word bonus", g.At(0, 0))
	}
}

func TestGridStringRoundTrip(t *testing.T) {
	g := NewStandardGrid()
	rows := make([]string, 0, N)
	for _, line := range splitLines(g.String()) {
		rows = append(rows, line)
	}
	got, err := GridFromStrings(rows)
	if err != nil {
		t.Fatalf("GridFromStrings failed: %v", err)
	}
	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			if got.At(x, y) != g.At(x, y) {
				t.Errorf("cell (%d,%d) = %+v, want %+v", x, y, got.At(x, y), g.At(x, y))
			}
		}
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func TestGridFromStringsInvalidRowCount(t *testing.T) {
	if _, err := GridFromStrings([]string{"--"}); err == nil {
		t.Error("expected an InvalidRowCount error")
	}
}

func TestGridFromStringsInvalidToken(t *testing.T) {
	rows := make([]string, N)
	for i := range rows {
		rows[i] = ""
		for x := 0; x < N; x++ {
			if x > 0 {
				rows[i] += " "
			}
			rows[i] += "--"
		}
	}
	rows[0] = "xx " + rows[0][3:]
	if _, err := GridFromStrings(rows); err == nil {
		t.Error("expected a GridParseError")
	}
}
