package corpus

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/creachadair/atomicfile"

	tmos "github.com/lxl66566/urldecoder/libs/os"
)

const (
	corpusDirPerm = 0755
	seedFilePerm  = 0644
)

// Store writes seed files into a single corpus directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is not touched
// until Ensure or Write is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the corpus directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the file a seed with the given name is written to.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Ensure creates the corpus directory and its parents if needed.
func (s *Store) Ensure() error {
	return tmos.EnsureDir(s.dir, corpusDirPerm)
}

// Write stores seed.Payload byte for byte under seed.Name, replacing any
// previous file of that name. The file is written to a temporary name and
// renamed into place, so a reader never sees a partial seed.
func (s *Store) Write(seed Seed) error {
	if err := seed.ValidateBasic(); err != nil {
		return err
	}
	path := s.Path(seed.Name)
	if _, err := atomicfile.WriteAll(path, bytes.NewReader(seed.Payload), seedFilePerm); err != nil {
		return fmt.Errorf("write seed %q: %w", path, err)
	}
	return nil
}
