package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTokenRoundTrip(t *testing.T) {
	projectID := "65f1c0ffee0000000000abcd"

	token := EncodeShareToken(projectID)
	got, err := DecodeShareToken(token)

	require.NoError(t, err)
	assert.Equal(t, projectID, got)
}

func TestDecodeShareToken(t *testing.T) {
	t.Run("rejects garbage base64", func(t *testing.T) {
		_, err := DecodeShareToken("!!!not-base64!!!")
		assert.EqualError(t, err, "invalid link")
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := DecodeShareToken(base64.StdEncoding.EncodeToString([]byte(":123")))
		assert.EqualError(t, err, "invalid link")
	})

	t.Run("accepts payload without timestamp", func(t *testing.T) {
		got, err := DecodeShareToken(base64.StdEncoding.EncodeToString([]byte("abc")))
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	})

	t.Run("id may not contain extra separators", func(t *testing.T) {
		got, err := DecodeShareToken(base64.StdEncoding.EncodeToString([]byte("abc:123:junk")))
		require.NoError(t, err)
		assert.Equal(t, "abc", got)
	})
}
