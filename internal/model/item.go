package model

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MenuItem represents a sellable item in the menu catalog.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       Image   `json:"image"`
}

// ItemDraft is the payload for creating a menu item. Price arrives as the
// raw user-entered string and is validated by the catalog.
type ItemDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       *Image `json:"image,omitempty"`
}

// ItemPatch is a partial update for a menu item. Nil fields are left
// untouched by the catalog.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Image       *Image  `json:"image,omitempty"`
}

// Image is either a remote URL or an embedded payload. Exactly one of the
// two variants is set; the zero value means "no image".
type Image struct {
	URL  string
	MIME string
	Data []byte
}

// RemoteImage returns the URL variant.
func RemoteImage(url string) Image {
	return Image{URL: url}
}

// EmbeddedImage returns the inline-payload variant.
func EmbeddedImage(mime string, data []byte) Image {
	return Image{MIME: mime, Data: data}
}

// IsZero reports whether no image was supplied.
func (img Image) IsZero() bool {
	return img.URL == "" && len(img.Data) == 0
}

// MarshalJSON encodes the image in the stored single-string shape: a plain
// URL for the remote variant, a data: URI for the embedded one.
func (img Image) MarshalJSON() ([]byte, error) {
	if len(img.Data) > 0 {
		uri := fmt.Sprintf("data:%s;base64,%s", img.MIME, base64.StdEncoding.EncodeToString(img.Data))
		return json.Marshal(uri)
	}
	return json.Marshal(img.URL)
}

// UnmarshalJSON decodes either string shape back into the tagged variant.
func (img *Image) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*img = Image{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	if !strings.HasPrefix(s, "data:") {
		*img = Image{URL: s}
		return nil
	}

	rest := strings.TrimPrefix(s, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return fmt.Errorf("malformed data URI in image field")
	}

	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("failed to decode embedded image payload: %w", err)
	}

	*img = Image{MIME: mime, Data: data}
	return nil
}
