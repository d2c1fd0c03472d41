// Package hexutil renders bytes as hex strings for the Dump() pretty-printers
// scattered across this module's message types. Grounded on
// original_source/carnaval/common/HexDump.py (hexbyte/hexstr/hexnum2str) and
// on the teacher's own inline hex formatting in smb2_types.go.
package hexutil

import "fmt"

const hexDigits = "0123456789ABCDEF"

// Byte formats a single byte as two uppercase hex digits.
func Byte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}

// Str formats a byte slice as contiguous two-digit hex pairs.
func Str(data []byte) string {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(out)
}

// Num formats a non-negative integer as "0xNNNN", zero-padded to width
// hex digits.
func Num(v uint64, width int) string {
	return fmt.Sprintf("0x%0*X", width, v)
}

// Dump renders data as a classic offset/hex/ASCII dump, one 16-byte row per
// line, each line prefixed by indent spaces.
func Dump(data []byte, indent int) string {
	ind := make([]byte, indent)
	for i := range ind {
		ind[i] = ' '
	}
	var out []byte
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]
		out = append(out, ind...)
		out = append(out, []byte(fmt.Sprintf("%04X: ", off))...)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				out = append(out, []byte(Byte(row[i]))...)
				out = append(out, ' ')
			} else {
				out = append(out, ' ', ' ', ' ')
			}
		}
		out = append(out, ' ')
		for _, b := range row {
			if b >= 0x20 && b < 0x7f {
				out = append(out, b)
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
