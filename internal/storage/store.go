package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/statmech/internal/ising"
	"github.com/san-kum/statmech/internal/sweep"
)

// DefaultFile is the data file written by the c and e commands.
const DefaultFile = "test.txt"

const metaSuffix = ".meta.json"

// Store writes data files, each with a JSON metadata sidecar, into baseDir.
type Store struct {
	baseDir string
}

// New returns a store rooted at baseDir. Nothing is created until the first
// write.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Path resolves name inside the store.
func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// RunMetadata is the sidecar written next to every data file.
type RunMetadata struct {
	File      string             `json:"file"`
	Command   string             `json:"command"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Params    map[string]float64 `json:"params,omitempty"`
}

func (s *Store) write(name string, meta RunMetadata, encode func(io.Writer) error) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	path := s.Path(name)
	if err := writeFile(path, encode); err != nil {
		return "", err
	}

	meta.File = name
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	err := writeFile(path+metaSuffix, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// writeFile creates path and fills it with encode. On failure the partial
// file is removed.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// SaveSweep writes a sweep table and returns its path.
func (s *Store) SaveSweep(name string, meta RunMetadata, points []sweep.Point) (string, error) {
	return s.write(name, meta, func(w io.Writer) error { return EncodeSweep(w, points) })
}

// SaveTraces writes the six relaxation rows.
func (s *Store) SaveTraces(name string, meta RunMetadata, ordered, random ising.Trace) (string, error) {
	return s.write(name, meta, func(w io.Writer) error { return EncodeTraces(w, ordered, random) })
}

// SaveFloats writes one row of floats.
func (s *Store) SaveFloats(name string, meta RunMetadata, values []float64) (string, error) {
	return s.write(name, meta, func(w io.Writer) error { return EncodeFloats(w, values) })
}

// SaveInts writes one row of integers.
func (s *Store) SaveInts(name string, meta RunMetadata, values []int) (string, error) {
	return s.write(name, meta, func(w io.Writer) error { return EncodeInts(w, values) })
}

// LoadSweep reads a sweep table by name, or by path when name is absolute.
func (s *Store) LoadSweep(name string) ([]sweep.Point, error) {
	path := name
	if !filepath.IsAbs(name) {
		path = s.Path(name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSweep(f)
}

// Load returns the metadata written alongside name.
func (s *Store) Load(name string) (*RunMetadata, error) {
	data, err := os.ReadFile(s.Path(name) + metaSuffix)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// List returns the metadata of every file in the store, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metaSuffix) {
			continue
		}
		meta, err := s.Load(strings.TrimSuffix(entry.Name(), metaSuffix))
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}
