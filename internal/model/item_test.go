package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_JSONShapes(t *testing.T) {
	t.Run("remote image stays a plain URL string", func(t *testing.T) {
		raw, err := json.Marshal(RemoteImage("https://example.com/dosa.jpg"))
		require.NoError(t, err)
		assert.Equal(t, `"https://example.com/dosa.jpg"`, string(raw))

		var img Image
		require.NoError(t, json.Unmarshal(raw, &img))
		assert.Equal(t, "https://example.com/dosa.jpg", img.URL)
		assert.Empty(t, img.Data)
	})

	t.Run("embedded image round-trips through a data URI", func(t *testing.T) {
		original := EmbeddedImage("image/png", []byte{0x89, 0x50, 0x4e, 0x47})

		raw, err := json.Marshal(original)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "data:image/png;base64,")

		var img Image
		require.NoError(t, json.Unmarshal(raw, &img))
		assert.Equal(t, original, img)
	})

	t.Run("null decodes to the zero image", func(t *testing.T) {
		var img Image
		require.NoError(t, json.Unmarshal([]byte("null"), &img))
		assert.True(t, img.IsZero())
	})

	t.Run("malformed data URI is rejected", func(t *testing.T) {
		var img Image
		err := json.Unmarshal([]byte(`"data:image/pngnocomma"`), &img)
		assert.Error(t, err)
	})
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusCompleted} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Status("burnt").Valid())
}

func TestCartLine_Subtotal(t *testing.T) {
	line := CartLine{ItemID: "item-1", Name: "Dosa", Price: 40, Quantity: 3}
	assert.Equal(t, 120.0, line.Subtotal())
}
