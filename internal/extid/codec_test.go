package extid

import (
	"encoding/base64"
	"testing"

	"github.com/ideavault/backend/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	c := Codec{}

	external := c.EncodeUint(target.KindIdea, 42)
	kind, id, err := c.Decode(external)
	require.NoError(t, err)
	assert.Equal(t, target.KindIdea, kind)
	assert.Equal(t, "42", id)

	// Mongo hex ids ride the same codec.
	external = c.Encode(target.KindAnnounce, "64f0c1a2b3d4e5f601020304")
	kind, id, err = c.Decode(external)
	require.NoError(t, err)
	assert.Equal(t, target.KindAnnounce, kind)
	assert.Equal(t, "64f0c1a2b3d4e5f601020304", id)
}

func TestCodecOpaqueness(t *testing.T) {
	c := Codec{}
	external := c.EncodeUint(target.KindMemo, 7)
	assert.NotContains(t, external, "Memo")
	assert.NotContains(t, external, ":")
}

func TestDecodeRejectsMalformedIDs(t *testing.T) {
	c := Codec{}

	cases := map[string]string{
		"not base64":     "%%%not-base64%%%",
		"no separator":   base64.StdEncoding.EncodeToString([]byte("Idea42")),
		"empty kind":     base64.StdEncoding.EncodeToString([]byte(":42")),
		"empty id":       base64.StdEncoding.EncodeToString([]byte("Idea:")),
		"empty string":   "",
		"separator only": base64.StdEncoding.EncodeToString([]byte(":")),
	}

	for name, external := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := c.Decode(external)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
