package tip20

import "unicode/utf8"

// MemoSize is the fixed on-chain memo width in bytes.
const MemoSize = 32

// maxMemoBytes leaves one byte of zero padding so a full-width memo still
// decodes as a terminated string.
const maxMemoBytes = MemoSize - 1

// EncodeMemo packs a UTF-8 string into the fixed 32-byte memo field,
// right-padded with zero bytes. Strings longer than 31 bytes are truncated
// on a rune boundary so the result stays valid UTF-8.
func EncodeMemo(s string) [MemoSize]byte {
	var memo [MemoSize]byte
	b := []byte(s)
	if len(b) > maxMemoBytes {
		cut := maxMemoBytes
		for cut > 0 && b[cut]&0xC0 == 0x80 {
			cut--
		}
		b = b[:cut]
	}
	copy(memo[:], b)
	return memo
}

// DecodeMemo unpacks a memo field back into a string, dropping the zero
// padding. Invalid UTF-8 yields an empty string.
func DecodeMemo(memo [MemoSize]byte) string {
	end := len(memo)
	for end > 0 && memo[end-1] == 0 {
		end--
	}
	s := memo[:end]
	if !utf8.Valid(s) {
		return ""
	}
	return string(s)
}
