package clip

import (
	"time"
	"unicode/utf8"
)

// ContentType identifies which kind of payload a Clip carries.
type ContentType string

const (
	// ContentTypeText marks a clip holding raw text.
	ContentTypeText ContentType = "text"
	// ContentTypeImage marks a clip holding base64-encoded image data.
	ContentTypeImage ContentType = "image"
)

// Metadata holds the measurements relevant to a clip's content type.
// Text clips populate TextLength, counted in runes so multibyte text
// measures as a user would expect; image clips populate ImageWidth and
// ImageHeight. The other group is always absent.
type Metadata struct {
	TextLength  int `json:"text_length,omitempty"`
	ImageWidth  int `json:"image_width,omitempty"`
	ImageHeight int `json:"image_height,omitempty"`
}

// Clip is one captured clipboard item.
//
// A clip is immutable after capture except for Timestamp, which is
// refreshed in place when the same (SourceApp, Content) key is captured
// again. SourceApp and SourceURL use the empty string for "unknown".
type Clip struct {
	// ID is the opaque unique identifier, assigned at creation.
	ID string `json:"id"`

	// Content is the string payload: raw text, or image data in base64.
	Content string `json:"content"`

	// ContentType selects which Metadata fields are meaningful.
	ContentType ContentType `json:"content_type"`

	// SourceApp is the frontmost application name at capture time.
	SourceApp string `json:"source_app,omitempty"`

	// SourceURL is the URL associated with the content, when known.
	SourceURL string `json:"source_url,omitempty"`

	// Timestamp is the capture (or last-refresh) instant.
	Timestamp time.Time `json:"timestamp"`

	// Metadata carries the content-type specific measurements.
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Key is the natural identity of a clip: where it came from and what it
// says. The store keeps at most one clip per key.
type Key struct {
	SourceApp string
	Content   string
}

// Key returns the clip's natural key.
func (c Clip) Key() Key {
	return Key{SourceApp: c.SourceApp, Content: c.Content}
}

// NewText builds a text clip with a fresh ID and text-length metadata.
func NewText(content, sourceApp, sourceURL string, capturedAt time.Time) Clip {
	return Clip{
		ID:          NewID(),
		Content:     content,
		ContentType: ContentTypeText,
		SourceApp:   sourceApp,
		SourceURL:   sourceURL,
		Timestamp:   capturedAt,
		Metadata:    &Metadata{TextLength: utf8.RuneCountInString(content)},
	}
}

// NewImage builds an image clip with a fresh ID and dimension metadata.
// Content may be empty when encoding failed upstream; the dimensions are
// still recorded.
func NewImage(content string, width, height int, sourceApp string, capturedAt time.Time) Clip {
	return Clip{
		ID:          NewID(),
		Content:     content,
		ContentType: ContentTypeImage,
		SourceApp:   sourceApp,
		Timestamp:   capturedAt,
		Metadata:    &Metadata{ImageWidth: width, ImageHeight: height},
	}
}
