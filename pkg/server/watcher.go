package server

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/pkg/files"
)

// watchCatalog reloads the catalog whenever the file at path is written or
// replaced. The parent directory is watched so atomic renames are seen.
// The returned func stops the watcher.
func (s *Server) watchCatalog(ctx context.Context, path string) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog watcher: %w", err)
	}

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	s.logger.Info("watching catalog for changes", zap.String("path", target))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				switch {
				case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
					s.reloadCatalog(target)
				case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
					s.logger.Warn("catalog file removed, keeping current catalog", zap.String("path", target))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("catalog watcher error", zap.Error(err))
			}
		}
	}()

	return func() {
		watcher.Close()
		<-done
	}, nil
}

func (s *Server) reloadCatalog(path string) {
	items, err := files.LoadCatalog(path)
	s.metrics.CatalogReloaded(err)
	if err != nil {
		s.logger.Warn("catalog reload failed, keeping current catalog", zap.String("path", path), zap.Error(err))
		return
	}

	s.SetCatalog(items)
	s.logger.Info("catalog reloaded", zap.String("path", path), zap.Int("items", len(items)))
}
