// Package hexdump formats raw bytes as aligned hex and ASCII line pairs.
//
// The output is structured with the ASCII column aligned under the
// corresponding data bytes rather than the canonical hexdump -C layout:
//
//	41 42 43
//	 A  B  C
//
// Input is consumed in 32-byte chunks ([ChunkSize]); each chunk produces a
// hex line, an ASCII line, and a blank separator. Every byte occupies one
// [CellWidth]-character cell in both lines, so downstream renderers can
// partition either line into cells without reparsing the bytes.
package hexdump
