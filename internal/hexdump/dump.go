package hexdump

import (
	"fmt"
	"strings"
)

const (
	// ChunkSize is the number of bytes rendered per hex/ASCII line pair.
	ChunkSize = 32

	// CellWidth is the fixed width of the slot representing one byte in
	// either line: two hex digits plus a space, or a character flanked
	// by spaces.
	CellWidth = 3

	// DefaultPlaceholder stands in for non-printable bytes in the ASCII line.
	DefaultPlaceholder = '.'
)

// Split partitions data into consecutive chunks of at most size bytes.
// The final chunk holds the remainder; empty input yields no chunks.
func Split(data []byte, size int) [][]byte {
	if size <= 0 || len(data) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for i := 0; i < len(data); i += size {
		end := i + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[i:end])
	}
	return chunks
}

// Dump renders data as pairs of aligned hex and ASCII lines, one pair per
// 32-byte chunk, with a blank line after each pair. Bytes in the range
// 0x20..0x7f render as themselves in the ASCII line; everything else renders
// as the placeholder. Both lines use 3-character cells so the i-th hex cell
// sits directly above the i-th ASCII cell.
func Dump(data []byte, placeholder byte) string {
	var b strings.Builder
	b.Grow(len(data) * 2 * CellWidth)

	for _, chunk := range Split(data, ChunkSize) {
		var hexLine, asciiLine strings.Builder
		for _, v := range chunk {
			fmt.Fprintf(&hexLine, "%02x ", v)
			asciiLine.WriteByte(' ')
			if v >= 0x20 && v <= 0x7f {
				asciiLine.WriteByte(v)
			} else {
				asciiLine.WriteByte(placeholder)
			}
			asciiLine.WriteByte(' ')
		}
		b.WriteString(hexLine.String())
		b.WriteByte('\n')
		b.WriteString(asciiLine.String())
		b.WriteByte('\n')
		b.WriteByte('\n')
	}
	return b.String()
}
