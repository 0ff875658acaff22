// Package storage persists synthesized audio as a flat directory of files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Error wraps a filesystem fault so handlers can map it to a status code.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "storage: " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type File struct {
	Name string
	Path string
	Size int64
}

// Store is a flat directory of audio files. Names are not checked for
// collisions; a reused name overwrites the previous file.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Path: dir, Err: err}
	}

	return &Store{
		dir: dir,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Save(name string, data []byte) (*File, error) {
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	return &File{
		Name: name,
		Path: path,

		Size: int64(len(data)),
	}, nil
}

// FileName returns a generated name like tts_20060102_150405_1a2b3c4d.wav.
func FileName() string {
	timestamp := time.Now().Format("20060102_150405")
	id := uuid.NewString()[:8]

	return fmt.Sprintf("tts_%s_%s.wav", timestamp, id)
}

// ChunkFileName returns the name for one chunk of a chunked request.
func ChunkFileName(index int) string {
	timestamp := time.Now().Format("20060102_150405")

	return fmt.Sprintf("tts_chunk_%d_%s.wav", index, timestamp)
}
