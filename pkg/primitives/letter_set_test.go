package primitives

import "testing"

func TestLetterSetFromWord(t *testing.T) {
	s := LetterSetFromWord(ConvertWordToArray("BANANA"))
	if s.Count() != 3 {
		t.Fatalf("expected 3 distinct letters in BANANA, got %d", s.Count())
	}
	for _, l := range []byte{'B' - 'A', 'A' - 'A', 'N' - 'A'} {
		if !s.Contains(l) {
			t.Errorf("expected letter set to contain %c", 'A'+l)
		}
	}
	if s.Contains('Z' - 'A') {
		t.Errorf("did not expect letter set to contain Z")
	}
}

func TestLetterSet_AddIsIdempotent(t *testing.T) {
	s := NewLetterSet()
	if err := s.Add('A' - 'A'); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add('A' - 'A'); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("expected repeated Add to be idempotent, got count %d", s.Count())
	}
}

func TestLetterSet_AddRejectsOutOfRange(t *testing.T) {
	s := NewLetterSet()
	if err := s.Add(NumLetters); err == nil {
		t.Fatalf("expected an error adding an out-of-range letter")
	}
}
