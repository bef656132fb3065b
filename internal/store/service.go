package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/clipd/internal/clip"
)

// Service provides knowledge-document operations.
type Service interface {
	// Load reads the persisted document into the cache. Idempotent.
	Load(ctx context.Context) error

	// Save upserts a clip by its natural key and persists the document.
	// It returns the stored record: the existing one with a refreshed
	// timestamp on key match, the given clip otherwise.
	Save(ctx context.Context, c clip.Clip) (clip.Clip, error)

	// List returns a snapshot of the cache, newest first.
	List(ctx context.Context) []clip.Clip

	// Find looks up a clip by its natural key.
	Find(ctx context.Context, sourceApp, content string) (clip.Clip, bool)

	// Delete removes the clip with the given id and persists.
	Delete(ctx context.Context, id string) error

	// Wipe empties the cache and persists the empty document.
	Wipe(ctx context.Context) error

	// Path returns the location of the persisted document.
	Path() string
}

// service implements Service with a mutex-guarded in-memory cache mirrored
// to a single JSON file.
type service struct {
	path   string
	logger *zap.Logger

	mu    sync.Mutex
	clips []clip.Clip
}

// NewService creates a knowledge store persisting to the given file path.
func NewService(path string, logger *zap.Logger) (Service, error) {
	if path == "" {
		return nil, errors.New("store: document path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{path: path, logger: logger}, nil
}

func (s *service) Path() string {
	return s.path
}

// Load reads the document file into the cache. A missing file initializes
// an empty cache; an unparseable file leaves the cache empty and returns
// LoadFailedError.
func (s *service) Load(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		s.clips = nil
		return &LoadFailedError{Reason: err.Error()}
	}

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.clips = nil
		s.logger.Debug("no knowledge document yet, starting empty",
			zap.String("path", s.path))
		return nil
	}
	if err != nil {
		s.clips = nil
		return &LoadFailedError{Reason: err.Error()}
	}

	doc, err := clip.DecodeDocument(b)
	if err != nil {
		s.clips = nil
		return &LoadFailedError{Reason: err.Error()}
	}

	s.clips = doc.Clips
	s.logger.Info("knowledge document loaded",
		zap.String("path", s.path),
		zap.Int("clips", len(s.clips)))
	return nil
}

// Save upserts by natural key. On a key match only the existing record's
// timestamp is replaced; all other fields keep their first-capture values.
// A persistence failure rolls the cache back and returns SaveFailedError.
func (s *service) Save(_ context.Context, c clip.Clip) (clip.Clip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.Key()
	idx := -1
	for i := range s.clips {
		if s.clips[i].Key() == key {
			idx = i
			break
		}
	}

	var stored clip.Clip
	if idx >= 0 {
		prev := s.clips[idx].Timestamp
		s.clips[idx].Timestamp = c.Timestamp
		stored = s.clips[idx]

		if err := s.persist(); err != nil {
			s.clips[idx].Timestamp = prev
			return clip.Clip{}, &SaveFailedError{Reason: err.Error()}
		}
		s.logger.Debug("clip refreshed",
			zap.String("id", stored.ID),
			zap.String("source_app", stored.SourceApp))
		return stored, nil
	}

	s.clips = append(s.clips, c)
	if err := s.persist(); err != nil {
		s.clips = s.clips[:len(s.clips)-1]
		return clip.Clip{}, &SaveFailedError{Reason: err.Error()}
	}
	s.logger.Debug("clip saved",
		zap.String("id", c.ID),
		zap.String("content_type", string(c.ContentType)),
		zap.String("source_app", c.SourceApp))
	return c, nil
}

// List returns a copy of the cache sorted by timestamp descending.
func (s *service) List(_ context.Context) []clip.Clip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]clip.Clip, len(s.clips))
	copy(out, s.clips)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Find performs a point lookup by natural key.
func (s *service) Find(_ context.Context, sourceApp, content string) (clip.Clip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := clip.Key{SourceApp: sourceApp, Content: content}
	for i := range s.clips {
		if s.clips[i].Key() == key {
			return s.clips[i], true
		}
	}
	return clip.Clip{}, false
}

// Delete removes the clip with the given id. A missing id returns
// ClipNotFoundError and changes nothing. A persistence failure rolls the
// removal back and returns DeleteFailedError.
func (s *service) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.clips {
		if s.clips[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &ClipNotFoundError{ID: id}
	}

	removed := s.clips[idx]
	s.clips = append(s.clips[:idx], s.clips[idx+1:]...)

	if err := s.persist(); err != nil {
		s.clips = append(s.clips, clip.Clip{})
		copy(s.clips[idx+1:], s.clips[idx:])
		s.clips[idx] = removed
		return &DeleteFailedError{Reason: err.Error()}
	}
	s.logger.Info("clip deleted", zap.String("id", id))
	return nil
}

// Wipe empties the cache and persists the empty document. A persistence
// failure restores the previous cache and returns SaveFailedError.
func (s *service) Wipe(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.clips
	s.clips = nil
	if err := s.persist(); err != nil {
		s.clips = prev
		return &SaveFailedError{Reason: err.Error()}
	}
	s.logger.Info("knowledge document wiped", zap.Int("removed", len(prev)))
	return nil
}

// persist rewrites the full document atomically via a temp file rename.
// Callers must hold s.mu.
func (s *service) persist() error {
	doc := clip.Document{Clips: s.clips}
	if doc.Clips == nil {
		doc.Clips = []clip.Clip{}
	}
	b, err := doc.Encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
