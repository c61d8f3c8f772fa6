package tip20

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMemo(t *testing.T) {
	t.Run("Short memo is zero padded", func(t *testing.T) {
		memo := EncodeMemo("Invoice INV-0001")
		assert.Equal(t, "Invoice INV-0001", DecodeMemo(memo))
		assert.True(t, bytes.HasSuffix(memo[:], make([]byte, MemoSize-len("Invoice INV-0001"))))
	})

	t.Run("Long memo truncates to 31 bytes", func(t *testing.T) {
		long := strings.Repeat("a", 50)
		memo := EncodeMemo(long)
		assert.Equal(t, strings.Repeat("a", 31), DecodeMemo(memo))
		assert.EqualValues(t, 0, memo[31])
	})

	t.Run("Truncation respects rune boundaries", func(t *testing.T) {
		// Two-byte runes: a naive cut at 31 would split the 16th rune.
		long := strings.Repeat("é", 20)
		memo := EncodeMemo(long)
		decoded := DecodeMemo(memo)
		assert.True(t, strings.HasPrefix(long, decoded))
		assert.LessOrEqual(t, len(decoded), 31)
		assert.NotEmpty(t, decoded)
	})

	t.Run("Empty memo is all zeroes", func(t *testing.T) {
		memo := EncodeMemo("")
		assert.Equal(t, [MemoSize]byte{}, memo)
		assert.Equal(t, "", DecodeMemo(memo))
	})
}
