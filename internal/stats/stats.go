// Package stats summarizes the byte distribution of a buffer.
package stats

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// Summary holds the per-value distribution of one buffer.
type Summary struct {
	Size      int      `json:"size"`
	Counts    [256]int `json:"counts"`
	Printable int      `json:"printable"`
	Distinct  int      `json:"distinct"`
	Entropy   float64  `json:"entropy"`
}

// Collect counts byte values and computes Shannon entropy in bits per byte.
// The printable range matches the hex formatter's, 0x20 through 0x7f.
func Collect(data []byte) Summary {
	s := Summary{Size: len(data)}
	for _, v := range data {
		s.Counts[v]++
		if v >= 0x20 && v <= 0x7f {
			s.Printable++
		}
	}
	for _, n := range s.Counts {
		if n == 0 {
			continue
		}
		s.Distinct++
		p := float64(n) / float64(s.Size)
		s.Entropy -= p * math.Log2(p)
	}
	return s
}

// Dominant returns the most frequent byte value and its count. Ties go to
// the lowest value; empty input reports value 0 with count 0.
func (s Summary) Dominant() (byte, int) {
	best := 0
	for v, n := range s.Counts {
		if n > s.Counts[best] {
			best = v
		}
	}
	return byte(best), s.Counts[best]
}

// Histogram plots the 256-bucket value distribution.
func (s Summary) Histogram(width, height int) string {
	data := make([]float64, len(s.Counts))
	for i, n := range s.Counts {
		data[i] = float64(n)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("byte value frequency (0x00..0xff)"),
	)
}
