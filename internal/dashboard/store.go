package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Seed file names inside the seed directory.
const (
	UniversitySeedFile = "university.json"
	EmployerSeedFile   = "employer.json"
	StudentSeedFile    = "student.json"
)

// SeedStore provides the seeds every dashboard mount copies from. Seeds come
// from JSON files in a directory when present and fall back to DefaultSeeds.
type SeedStore struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	seeds Seeds
}

// NewSeedStore creates a store holding the default seeds. dir may be empty,
// in which case Load keeps the defaults.
func NewSeedStore(fsys afero.Fs, dir string, logger *slog.Logger) *SeedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeedStore{
		fs:     fsys,
		dir:    dir,
		logger: logger.With("component", "seeds"),
		seeds:  DefaultSeeds(),
	}
}

// Seeds returns a deep copy of the current seeds.
func (s *SeedStore) Seeds() Seeds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeds.Clone()
}

// Load reads every seed file that exists. A missing file keeps the built-in
// seed for that dashboard; a malformed file fails the load and leaves the
// current seeds untouched.
func (s *SeedStore) Load() error {
	next := DefaultSeeds()
	if s.dir != "" && s.fs != nil {
		if err := s.readFile(UniversitySeedFile, &next.University); err != nil {
			return err
		}
		if err := s.readFile(EmployerSeedFile, &next.Employer); err != nil {
			return err
		}
		if err := s.readFile(StudentSeedFile, &next.Student); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.seeds = next
	s.mu.Unlock()
	return nil
}

func (s *SeedStore) readFile(name string, into any) error {
	path := filepath.Join(s.dir, name)
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read seed %s: %w", path, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decode seed %s: %w", path, err)
	}
	s.logger.Debug("Loaded seed file", "path", path)
	return nil
}

// Watch reloads the seeds whenever a file in the seed directory changes. It
// only works on the OS filesystem and returns once the watcher is running.
// Dashboards mounted before a reload keep their copy.
func (s *SeedStore) Watch(ctx context.Context) error {
	if s.dir == "" {
		return errors.New("seed directory is not configured")
	}
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return errors.New("seed watching requires the OS filesystem")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	go s.watchFiles(ctx, watcher)
	s.logger.Info("Watching seed directory", "dir", s.dir)
	return nil
}

func (s *SeedStore) watchFiles(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		s.logger.Debug("Seed watcher stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isSeedFile(event.Name) || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := s.Load(); err != nil {
				s.logger.Error("Failed to reload seeds", "path", event.Name, "error", err)
				continue
			}
			s.logger.Info("Reloaded seeds", "path", event.Name, "op", event.Op.String())

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("Seed watcher error", "error", err)
		}
	}
}

func isSeedFile(path string) bool {
	switch filepath.Base(path) {
	case UniversitySeedFile, EmployerSeedFile, StudentSeedFile:
		return true
	}
	return false
}
