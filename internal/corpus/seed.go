package corpus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSeedName is returned when a seed name cannot be used as a plain
// file name inside the corpus directory.
var ErrInvalidSeedName = errors.New("invalid seed name")

// Seed is one corpus input: a file name and the exact bytes it holds.
type Seed struct {
	Name    string
	Payload []byte
}

// ValidateBasic checks that the name is a single path element.
func (s Seed) ValidateBasic() error {
	switch {
	case s.Name == "", s.Name == ".", s.Name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidSeedName, s.Name)
	case strings.ContainsAny(s.Name, `/\`), strings.IndexByte(s.Name, 0) >= 0:
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidSeedName, s.Name)
	}
	return nil
}
