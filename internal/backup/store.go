package backup

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const fileSuffix = ".json.gz"

var (
	ErrInvalidFilename = errors.New("invalid backup filename")
	ErrReadFailed      = errors.New("failed to read backup file")
	ErrInvalidFormat   = errors.New("invalid backup file format")
)

type FileInfo struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// FileStore persists gzip-compressed JSON envelopes in a single
// directory, created on first write.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
	}
}

// Write serializes the envelope to indented JSON, compresses it and
// writes it under a filename derived from the envelope timestamp
// (":" and "." replaced by "-"). Returns the filename and full path.
func (s *FileStore) Write(env Envelope) (string, string, error) {
	encoded, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("json.MarshalIndent -> %w", err)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	replacer := strings.NewReplacer(":", "-", ".", "-")
	filename := "backup-" + replacer.Replace(env.Timestamp) + fileSuffix
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("os.Create -> %w", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if _, err = zw.Write(encoded); err != nil {
		return "", "", fmt.Errorf("gzip.Write -> %w", err)
	}
	if err = zw.Close(); err != nil {
		return "", "", fmt.Errorf("gzip.Close -> %w", err)
	}

	return filename, path, nil
}

// List enumerates backup files newest-first. A missing directory yields
// an empty list, not an error.
func (s *FileStore) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []FileInfo{}, nil
		}

		return nil, fmt.Errorf("os.ReadDir -> %w", err)
	}

	backups := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("entry.Info -> %w", err)
		}

		// Birth time is not portable; mtime stands in for both since
		// backup files are written once and never modified.
		backups = append(backups, FileInfo{
			Filename: entry.Name(),
			Size:     info.Size(),
			Created:  info.ModTime(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})

	return backups, nil
}

// Read validates the filename, then decompresses and decodes the
// envelope. Validation happens before any file IO.
func (s *FileStore) Read(filename string) (Envelope, error) {
	if !strings.HasSuffix(filename, fileSuffix) {
		return Envelope{}, ErrInvalidFilename
	}

	// Reject traversal attempts; backups live directly under dir.
	if filepath.Base(filename) != filename {
		return Envelope{}, ErrInvalidFilename
	}

	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		return Envelope{}, fmt.Errorf("%w -> %v", ErrReadFailed, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w -> %v", ErrReadFailed, err)
	}
	defer zr.Close()

	var env Envelope
	if err = json.NewDecoder(zr).Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("%w -> %v", ErrReadFailed, err)
	}

	if env.Data.Booths == nil || env.Data.Visitors == nil || env.Data.Visits == nil {
		return Envelope{}, ErrInvalidFormat
	}

	return env, nil
}
