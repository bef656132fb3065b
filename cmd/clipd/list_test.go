package main

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/clipd/internal/clip"
)

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short text unchanged", "hello", "hello"},
		{"newlines flattened", "one\ntwo", "one two"},
		{
			"long ascii truncated",
			strings.Repeat("a", 60),
			strings.Repeat("a", contentPreviewLen) + "…",
		},
		{
			"multibyte runes kept whole",
			strings.Repeat("ü", 60),
			strings.Repeat("ü", contentPreviewLen) + "…",
		},
		{
			"cjk kept whole",
			strings.Repeat("語", 60),
			strings.Repeat("語", contentPreviewLen) + "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preview(clip.NewText(tt.content, "", "", now))
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestPreviewImageShowsDimensions(t *testing.T) {
	c := clip.NewImage("payload", 800, 600, "Preview", time.Now())
	assert.Equal(t, "<image 800x600>", preview(c))

	c.Metadata = nil
	assert.Equal(t, "<image>", preview(c))
}
