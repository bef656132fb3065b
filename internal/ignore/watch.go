package ignore

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the policy whenever its ignore file changes, until ctx is
// cancelled. It watches the parent directory so editors that replace the
// file (rename-over-write) are still observed. A policy without a file
// returns immediately.
func (p *Policy) Watch(ctx context.Context) error {
	if p.path == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(p.path)
	if err := w.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(p.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := p.Reload(); err != nil {
				p.logger.Warn("ignore file reload failed",
					zap.String("path", p.path),
					zap.Error(err))
				continue
			}
			p.logger.Info("ignore file reloaded", zap.String("path", p.path))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("ignore file watch error", zap.Error(err))
		}
	}
}
