package clip

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		clip Clip
	}{
		{
			name: "text with all optionals",
			clip: Clip{
				ID:          "c1",
				Content:     "Hello",
				ContentType: ContentTypeText,
				SourceApp:   "Safari",
				SourceURL:   "https://example.com/page",
				Timestamp:   now,
				Metadata:    &Metadata{TextLength: 5},
			},
		},
		{
			name: "text without optionals",
			clip: Clip{
				ID:          "c2",
				Content:     "plain",
				ContentType: ContentTypeText,
				Timestamp:   now,
				Metadata:    &Metadata{TextLength: 5},
			},
		},
		{
			name: "image",
			clip: Clip{
				ID:          "c3",
				Content:     "aGVsbG8=",
				ContentType: ContentTypeImage,
				SourceApp:   "Preview",
				Timestamp:   now,
				Metadata:    &Metadata{ImageWidth: 640, ImageHeight: 480},
			},
		},
		{
			name: "no metadata",
			clip: Clip{
				ID:          "c4",
				Content:     "bare",
				ContentType: ContentTypeText,
				Timestamp:   now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{Clips: []Clip{tt.clip}}
			b, err := doc.Encode()
			require.NoError(t, err)

			decoded, err := DecodeDocument(b)
			require.NoError(t, err)
			require.Len(t, decoded.Clips, 1)
			assert.Equal(t, tt.clip, decoded.Clips[0])
		})
	}
}

func TestDocumentFieldNames(t *testing.T) {
	doc := Document{Clips: []Clip{
		NewText("Hello", "Safari", "https://example.com", time.Now()),
	}}
	b, err := doc.Encode()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Contains(t, raw, "clips")

	var entries []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["clips"], &entries))
	require.Len(t, entries, 1)

	for _, field := range []string{"id", "content", "content_type", "source_app", "source_url", "timestamp", "metadata"} {
		assert.Contains(t, entries[0], field)
	}
}

func TestDecodeDocumentRejectsGarbage(t *testing.T) {
	_, err := DecodeDocument([]byte("not json at all"))
	require.Error(t, err)
}

func TestNewTextMetadata(t *testing.T) {
	c := NewText("Hello", "Safari", "", time.Now())

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, ContentTypeText, c.ContentType)
	require.NotNil(t, c.Metadata)
	assert.Equal(t, 5, c.Metadata.TextLength)
	assert.Zero(t, c.Metadata.ImageWidth)
	assert.Zero(t, c.Metadata.ImageHeight)
}

func TestNewTextMetadataCountsRunes(t *testing.T) {
	tests := []struct {
		content string
		length  int
	}{
		{"ascii", 5},
		{"héllo", 5},
		{"日本語のテキスト", 8},
		{"🙂🙃", 2},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			c := NewText(tt.content, "", "", time.Now())
			require.NotNil(t, c.Metadata)
			assert.Equal(t, tt.length, c.Metadata.TextLength)
		})
	}
}

func TestNewImageMetadata(t *testing.T) {
	c := NewImage("payload", 800, 600, "Preview", time.Now())

	assert.Equal(t, ContentTypeImage, c.ContentType)
	require.NotNil(t, c.Metadata)
	assert.Equal(t, 800, c.Metadata.ImageWidth)
	assert.Equal(t, 600, c.Metadata.ImageHeight)
	assert.Zero(t, c.Metadata.TextLength)
}

func TestKeyDistinguishesAppAndContent(t *testing.T) {
	a := NewText("Hello", "Safari", "", time.Now())
	b := NewText("Hello", "Chrome", "", time.Now())
	c := NewText("Hello", "", "", time.Now())
	d := NewText("World", "Safari", "", time.Now())

	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())
	assert.Equal(t, a.Key(), NewText("Hello", "Safari", "ignored-url", time.Now()).Key())
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
