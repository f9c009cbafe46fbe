package stats

import (
	"math"
	"strings"
	"testing"
)

func TestCollectEmpty(t *testing.T) {
	s := Collect(nil)

	if s.Size != 0 || s.Distinct != 0 || s.Printable != 0 {
		t.Errorf("unexpected summary for empty input: %+v", s)
	}
	if s.Entropy != 0 {
		t.Errorf("expected zero entropy, got %f", s.Entropy)
	}
}

func TestCollectCounts(t *testing.T) {
	s := Collect([]byte("AAB\x00\x7f"))

	if s.Size != 5 {
		t.Errorf("expected size 5, got %d", s.Size)
	}
	if s.Counts['A'] != 2 || s.Counts['B'] != 1 || s.Counts[0] != 1 {
		t.Errorf("unexpected counts: A=%d B=%d nul=%d", s.Counts['A'], s.Counts['B'], s.Counts[0])
	}
	// DEL counts as printable, matching the dump formatter's range.
	if s.Printable != 4 {
		t.Errorf("expected 4 printable, got %d", s.Printable)
	}
	if s.Distinct != 4 {
		t.Errorf("expected 4 distinct values, got %d", s.Distinct)
	}
}

func TestEntropyBounds(t *testing.T) {
	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	if got := Collect(uniform).Entropy; math.Abs(got-8.0) > 1e-9 {
		t.Errorf("uniform data should have 8 bits/byte, got %f", got)
	}

	if got := Collect(make([]byte, 1024)).Entropy; got != 0 {
		t.Errorf("constant data should have zero entropy, got %f", got)
	}
}

func TestDominant(t *testing.T) {
	v, n := Collect([]byte("abbccc")).Dominant()
	if v != 'c' || n != 3 {
		t.Errorf("expected c x3, got %q x%d", v, n)
	}

	// Tie resolves to the lowest value.
	v, _ = Collect([]byte("ba")).Dominant()
	if v != 'a' {
		t.Errorf("expected a on tie, got %q", v)
	}
}

func TestHistogram(t *testing.T) {
	out := Collect([]byte("hello world")).Histogram(64, 8)

	if out == "" {
		t.Fatal("expected non-empty histogram")
	}
	if !strings.Contains(out, "byte value frequency") {
		t.Error("missing caption")
	}
}
