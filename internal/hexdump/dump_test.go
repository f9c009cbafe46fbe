package hexdump_test

import (
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hexglow/internal/hexdump"
)

var _ = Describe("Split", func() {
	It("returns no chunks for empty input", func() {
		Expect(hexdump.Split(nil, 32)).To(BeEmpty())
		Expect(hexdump.Split([]byte{}, 32)).To(BeEmpty())
	})

	It("splits evenly divisible input into full chunks", func() {
		chunks := hexdump.Split(make([]byte, 96), 32)
		Expect(chunks).To(HaveLen(3))
		for _, c := range chunks {
			Expect(c).To(HaveLen(32))
		}
	})

	It("puts the remainder in a short final chunk", func() {
		chunks := hexdump.Split(make([]byte, 70), 32)
		Expect(chunks).To(HaveLen(3))
		Expect(chunks[0]).To(HaveLen(32))
		Expect(chunks[1]).To(HaveLen(32))
		Expect(chunks[2]).To(HaveLen(6))
	})

	It("covers the input exactly once in order", func() {
		data := make([]byte, 100)
		for i := range data {
			data[i] = byte(i)
		}
		var joined []byte
		for _, c := range hexdump.Split(data, 32) {
			joined = append(joined, c...)
		}
		Expect(joined).To(Equal(data))
	})
})

var _ = Describe("Dump", func() {
	dump := func(data []byte) string {
		return hexdump.Dump(data, hexdump.DefaultPlaceholder)
	}

	// groups splits a dump into its 3-line chunk groups, dropping the
	// trailing empty element left by the final newline.
	groups := func(s string) [][]string {
		if s == "" {
			return nil
		}
		lines := strings.Split(s, "\n")
		Expect(lines[len(lines)-1]).To(BeEmpty())
		lines = lines[:len(lines)-1]
		Expect(len(lines) % 3).To(BeZero())
		var out [][]string
		for i := 0; i < len(lines); i += 3 {
			out = append(out, lines[i:i+3])
		}
		return out
	}

	It("returns an empty string for empty input", func() {
		Expect(dump(nil)).To(BeEmpty())
	})

	It("renders the documented two-byte example", func() {
		Expect(dump([]byte("AB"))).To(Equal("41 42 \n A  B \n\n"))
	})

	It("substitutes the placeholder for non-printable bytes", func() {
		Expect(dump([]byte{0, 1, 2})).To(Equal("00 01 02 \n .  .  . \n\n"))
	})

	It("accepts an alternate placeholder", func() {
		out := hexdump.Dump([]byte{0}, '?')
		Expect(out).To(Equal("00 \n ? \n\n"))
	})

	It("produces one group per 32 bytes, rounding up", func() {
		for _, tc := range []struct{ n, want int }{
			{1, 1}, {31, 1}, {32, 1}, {33, 2}, {64, 2}, {65, 3}, {200, 7},
		} {
			Expect(groups(dump(make([]byte, tc.n)))).To(HaveLen(tc.want),
				"input length %d", tc.n)
		}
	})

	It("emits 3-character cells aligned across both lines", func() {
		data := make([]byte, 45)
		for i := range data {
			data[i] = byte(i * 5)
		}
		for gi, g := range groups(dump(data)) {
			n := 32
			if gi == 1 {
				n = 13
			}
			Expect(g[0]).To(HaveLen(n * hexdump.CellWidth))
			Expect(g[1]).To(HaveLen(n * hexdump.CellWidth))
			Expect(g[2]).To(BeEmpty())
		}
	})

	It("renders every printable byte as itself", func() {
		for v := byte(0x20); v <= 0x7e; v++ {
			out := dump([]byte{v})
			Expect(groups(out)[0][1]).To(Equal(" " + string(v) + " "))
		}
	})

	It("keeps DEL inside the printable range", func() {
		// 0x7f passes the formatter's printable check and renders as
		// itself, not as the placeholder.
		Expect(groups(dump([]byte{0x7f}))[0][1]).To(Equal(" \x7f "))
		Expect(groups(dump([]byte{0x1f}))[0][1]).To(Equal(" . "))
		Expect(groups(dump([]byte{0x80}))[0][1]).To(Equal(" . "))
	})

	It("round-trips every byte value through the hex lines", func() {
		data := make([]byte, 256)
		for i := range data {
			data[i] = byte(i)
		}
		var decoded []byte
		for _, g := range groups(dump(data)) {
			for _, cell := range strings.Fields(g[0]) {
				v, err := strconv.ParseUint(cell, 16, 8)
				Expect(err).NotTo(HaveOccurred())
				decoded = append(decoded, byte(v))
			}
		}
		Expect(decoded).To(Equal(data))
	})
})
