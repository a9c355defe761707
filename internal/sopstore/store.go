// Package sopstore resolves SOP identifiers to decoded document text.
package sopstore

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dgallion1/sopdex/internal/decode"
)

// SOP identifies one document in the store without loading its content.
type SOP struct {
	ID       string `json:"sop_id"`
	Filename string `json:"filename"`
	Path     string `json:"-"`
}

// Store owns the directory of SOP documents and a process-lifetime cache
// of decoded text. Decoding failures are logged and reported as absent;
// they are never cached, so a later request retries naturally.
type Store struct {
	dir    string
	log    *slog.Logger
	decode func(path string) (string, error)

	mu    sync.RWMutex
	cache map[string]string

	// Coalesces concurrent decodes of the same SOP into one flight.
	group singleflight.Group
}

var errNotFound = errors.New("sop not found")

func New(dir string, opts decode.Options, log *slog.Logger) *Store {
	return &Store{
		dir: dir,
		log: log,
		decode: func(path string) (string, error) {
			return decode.File(path, opts)
		},
		cache: make(map[string]string),
	}
}

// List enumerates the SOPs in the store directory, ordered by filename.
// Directories, Windows Zone.Identifier droppings, and files in formats
// the decoder cannot handle are skipped. A missing or unreadable
// directory yields an empty list, not an error.
func (s *Store) List() []SOP {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Error("list sops", "dir", s.dir, "error", err)
		return nil
	}

	var sops []SOP
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.Contains(name, "Zone.Identifier") {
			continue
		}
		if !decode.Supported(name) {
			continue
		}
		sops = append(sops, SOP{
			ID:       strings.TrimSuffix(name, filepath.Ext(name)),
			Filename: name,
			Path:     filepath.Join(s.dir, name),
		})
	}
	return sops
}

// Resolve returns the decoded text for an SOP ID. The ID matches a file
// stem exactly or as a prefix, first match in List order winning. The
// second return is false when no document matches or decoding fails.
func (s *Store) Resolve(id string) (string, bool) {
	s.mu.RLock()
	text, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return text, true
	}

	v, err, _ := s.group.Do(id, func() (any, error) {
		// A finished flight may have populated the cache between the
		// read above and entering the group.
		s.mu.RLock()
		cached, ok := s.cache[id]
		s.mu.RUnlock()
		if ok {
			return cached, nil
		}

		sop, ok := s.find(id)
		if !ok {
			return nil, errNotFound
		}

		decoded, err := s.decode(sop.Path)
		if err != nil {
			s.log.Error("decode sop", "sop_id", id, "path", sop.Path, "error", err)
			return nil, err
		}

		s.mu.Lock()
		s.cache[id] = decoded
		s.mu.Unlock()
		return decoded, nil
	})
	if err != nil {
		return "", false
	}
	return v.(string), true
}

func (s *Store) find(id string) (SOP, bool) {
	for _, sop := range s.List() {
		if strings.HasPrefix(sop.ID, id) {
			return sop, true
		}
	}
	return SOP{}, false
}
