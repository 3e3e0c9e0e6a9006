package caja

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/natefinch/atomic"
)

// DefaultFile is the default location of the book file.
const DefaultFile = "caja.json"

// Store persists the book aggregate to a single local file slot. The
// slot is read whole at startup and rewritten whole after every
// change; there is no partial update.
type Store struct {
	path string
}

// NewStore returns a store over the given file path, or over
// DefaultFile when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the file path backing this store.
func (s *Store) Path() string { return s.path }

// Load reads the persisted snapshot. A missing, unreadable or corrupt
// snapshot degrades to the default empty book with a logged warning;
// it is never surfaced as an error.
func (s *Store) Load() *Book {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook()
	}
	if err != nil {
		log.Printf("warning: could not read book file %q, starting from an empty book: %v", s.path, err)
		return NewBook()
	}
	b, err := DecodeBook(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: could not decode book file %q, starting from an empty book: %v", s.path, err)
		return NewBook()
	}
	return b
}

// Save writes the whole aggregate to the slot atomically: the new
// snapshot is staged to a temporary file and renamed over the old
// one, so a failed write never truncates the previous snapshot.
//
// A save failure is reportable but non-fatal: the in-memory book
// remains usable and the previous snapshot is intact.
func (s *Store) Save(b *Book) error {
	var buf bytes.Buffer
	if err := EncodeBook(&buf, b); err != nil {
		return err
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("could not write book file %q: %w", s.path, err)
	}
	return nil
}
