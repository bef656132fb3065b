package clipboard

import (
	"image"
	"net/url"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// SystemSource adapts the system clipboard to the watcher's Source
// contract.
//
// The text transport underneath exposes no native change counter, so one
// is derived: each ChangeCount call samples the clipboard and advances an
// internal counter when the sample differs from the previous one. Image
// payloads are not supported on this backend and always report absent.
type SystemSource struct {
	mu    sync.Mutex
	count int64
	last  string
}

// NewSystemSource creates a source backed by the system clipboard.
func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

// ChangeCount samples the clipboard and returns the derived monotonic
// change counter. Read failures leave the counter unchanged.
func (s *SystemSource) ChangeCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := clipboard.ReadAll()
	if err != nil {
		return s.count
	}
	if text != s.last {
		s.last = text
		s.count++
	}
	return s.count
}

// Text returns the text payload observed by the last ChangeCount sample.
func (s *SystemSource) Text() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.last != ""
}

// Image reports absent: the text transport carries no image payloads.
func (s *SystemSource) Image() (image.Image, bool) {
	return nil, false
}

// URL returns the current payload when it is a single absolute http(s)
// URL, mirroring a URL-typed pasteboard item.
func (s *SystemSource) URL() (string, bool) {
	s.mu.Lock()
	text := s.last
	s.mu.Unlock()

	u, ok := ParseURLPayload(text)
	return u, ok
}

// ParseURLPayload reports whether text is a lone absolute http(s) URL.
func ParseURLPayload(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\n\r") {
		return "", false
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return trimmed, true
}
