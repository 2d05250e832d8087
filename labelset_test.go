package skrafl

import "testing"

func TestLabelSetInsertContains(t *testing.T) {
	s := NewLabelSet()
	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}
	s = s.Insert(3).Insert(7).Insert(1)
	for _, label := range []Label{1, 3, 7} {
		if !s.Contains(label) {
			t.Errorf("expected set to contain %d", label)
		}
	}
	for _, label := range []Label{2, 4, 5, 6, 8} {
		if s.Contains(label) {
			t.Errorf("did not expect set to contain %d", label)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestLabelSetIndexOf(t *testing.T) {
	s := NewLabelSet().Insert(2).Insert(5).Insert(9)
	cases := []struct {
		label Label
		want  int
	}{
		{2, 0},
		{5, 1},
		{9, 2},
	}
	for _, c := range cases {
		if got := s.IndexOf(c.label); got != c.want {
			t.Errorf("IndexOf(%d) = %d, want %d", c.label, got, c.want)
		}
	}
	if got := s.IndexOf(6); got != -1 {
		t.Errorf("IndexOf(6) = %d, want -1 for a non-member", got)
	}
}

func TestLabelSetLabels(t *testing.T) {
	s := NewLabelSet().Insert(9).Insert(2).Insert(5)
	got := s.Labels()
	want := []Label{2, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLabelSetIntersect(t *testing.T) {
	a := NewLabelSet().Insert(1).Insert(2).Insert(3)
	b := NewLabelSet().Insert(2).Insert(3).Insert(4)
	got := a.Intersect(b)
	if got.Len() != 2 || !got.Contains(2) || !got.Contains(3) {
		t.Errorf("Intersect() = %v, want {2,3}", got.Labels())
	}
}
