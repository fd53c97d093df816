package components

import "testing"

func TestWrapPreservesWords(t *testing.T) {
	got := Wrap("one two three four five", 9)
	want := "one two\nthree\nfour five"
	if got != want {
		t.Fatalf("wrap mismatch:\n%q\n%q", got, want)
	}
}

func TestWrapKeepsParagraphBreaks(t *testing.T) {
	got := Wrap("first paragraph here\n\nsecond one", 20)
	want := "first paragraph here\n\nsecond one"
	if got != want {
		t.Fatalf("wrap mismatch:\n%q\n%q", got, want)
	}
}

func TestWrapEmpty(t *testing.T) {
	if got := Wrap("", 40); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}
