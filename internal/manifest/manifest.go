// Package manifest records the files of a generation run with their sizes
// and BLAKE2b-256 digests.
package manifest

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Name is the manifest file name inside the output root.
const Name = "manifest.json"

// Entry describes one generated file.
type Entry struct {
	// Path is slash separated and relative to the output root.
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	Digest string `json:"blake2b_256"`
}

// Manifest lists generated files sorted by path.
type Manifest struct {
	Cols  int     `json:"cols"`
	Files []Entry `json:"files"`
}

// Scan walks root and returns a manifest of every regular file below it.
// An existing manifest file at the root is skipped.
func Scan(root string, cols int) (*Manifest, error) {
	m := &Manifest{Cols: cols, Files: []Entry{}}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == Name {
			return nil
		}
		e, err := hashFile(path)
		if err != nil {
			return err
		}
		e.Path = rel
		m.Files = append(m.Files, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].Path < m.Files[j].Path })
	return m, nil
}

func hashFile(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()
	h, err := blake2b.New256(nil)
	if err != nil {
		return Entry{}, err
	}
	n, err := io.Copy(h, f)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Size: n, Digest: hex.EncodeToString(h.Sum(nil))}, nil
}

// Lookup returns the entry for the slash separated path.
func (m *Manifest) Lookup(path string) (Entry, bool) {
	i := sort.Search(len(m.Files), func(i int) bool { return m.Files[i].Path >= path })
	if i < len(m.Files) && m.Files[i].Path == path {
		return m.Files[i], true
	}
	return Entry{}, false
}

// Write encodes the manifest as indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// WriteFile writes the manifest to root/manifest.json via a temp file then rename.
func (m *Manifest) WriteFile(root string) error {
	path := filepath.Join(root, Name)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
