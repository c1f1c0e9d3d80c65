package tutor

import "testing"

func TestNumberToLetters_KnownValues(t *testing.T) {
	cases := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		28:  "AB",
		52:  "AZ",
		53:  "BA",
		702: "ZZ",
		703: "AAA",
	}
	for n, want := range cases {
		if got := NumberToLetters(n); got != want {
			t.Errorf("NumberToLetters(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNumberToLetters_NonPositive(t *testing.T) {
	if got := NumberToLetters(0); got != "" {
		t.Errorf("NumberToLetters(0) = %q, want empty", got)
	}
	if got := NumberToLetters(-3); got != "" {
		t.Errorf("NumberToLetters(-3) = %q, want empty", got)
	}
}

func TestLettersToNumber_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"b", "B", " b "} {
		n, err := LettersToNumber(s)
		if err != nil {
			t.Fatalf("LettersToNumber(%q): %v", s, err)
		}
		if n != 2 {
			t.Errorf("LettersToNumber(%q) = %d, want 2", s, n)
		}
	}
}

func TestLettersToNumber_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "A1", "1", "A-B"} {
		if _, err := LettersToNumber(s); err == nil {
			t.Errorf("LettersToNumber(%q): expected error", s)
		}
	}
}

func TestLetterCodec_RoundTrip(t *testing.T) {
	for n := 1; n <= 10000; n++ {
		letters := NumberToLetters(n)
		back, err := LettersToNumber(letters)
		if err != nil {
			t.Fatalf("n=%d (%q): %v", n, letters, err)
		}
		if back != n {
			t.Fatalf("round trip failed: %d -> %q -> %d", n, letters, back)
		}
	}
}
