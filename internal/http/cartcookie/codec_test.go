package cartcookie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := New([]byte("test-secret"), "cart", false)

	val, err := codec.Encode(Ref{CartID: "c-123", ItemCount: 4})
	require.NoError(t, err)

	out, err := codec.Decode(val)
	require.NoError(t, err)
	assert.Equal(t, "c-123", out.CartID)
	assert.Equal(t, 4, out.ItemCount)
}

func TestCodecRejectsTamperedCount(t *testing.T) {
	codec := New([]byte("test-secret"), "cart", false)

	val, err := codec.Encode(Ref{CartID: "c-123", ItemCount: 1})
	require.NoError(t, err)

	// Re-sign is impossible without the secret; flipping payload bytes
	// must fail verification.
	parts := strings.SplitN(val, ".", 2)
	forged := "x" + parts[0] + "." + parts[1]

	_, err = codec.Decode(forged)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := New([]byte("test-secret"), "cart", false)

	for _, v := range []string{"", "no-dot", "a.b.c", "!!.??"} {
		_, err := codec.Decode(v)
		assert.Error(t, err, "value %q", v)
	}
}

func TestCodecRejectsEmptyCartID(t *testing.T) {
	codec := New([]byte("test-secret"), "cart", false)

	val, err := codec.Encode(Ref{ItemCount: 2})
	require.NoError(t, err)

	_, err = codec.Decode(val)
	assert.ErrorIs(t, err, ErrInvalid)
}
