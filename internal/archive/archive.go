package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jobsearch-agent/internal/logging"
	"jobsearch-agent/pkg/utils"
)

// Store persists uploaded resume files to a fixed directory. Entries are
// write-once and list-only; cleanup is external. The timestamp in the
// stored name has second resolution, so two uploads of the same filename
// within one second collide. Known weak uniqueness key, accepted risk.
type Store struct {
	dir    string
	now    func() time.Time
	logger logging.Logger
}

// NewStore creates the archive directory if absent and returns the store.
// Directory creation failure is fatal at startup, so the error propagates.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}

	return &Store{
		dir:    dir,
		now:    time.Now,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Save writes the uploaded content under a name combining the original
// filename, the ingestion timestamp and the extension inferred from the
// declared content type. Returns the stored filename.
func (s *Store) Save(filename, ext string, r io.Reader) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stored := fmt.Sprintf("%s_%s%s", base, s.now().Format("20060102_150405"), ext)

	path := filepath.Join(s.dir, stored)
	f, err := os.Create(path)
	if err != nil {
		return "", utils.NewArchiveWriteError(err)
	}
	defer f.Close()

	written, err := io.Copy(f, r)
	if err != nil {
		return "", utils.NewArchiveWriteError(err)
	}

	s.logger.Info("Archived uploaded resume", map[string]interface{}{
		"file":       stored,
		"size_bytes": written,
	})

	return stored, nil
}

// List returns the archive directory's current entries. Ordering follows
// the underlying filesystem; no guarantee is provided.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
