package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Loader reads level<N>.json from a directory on disk, falling back to the
// embedded levels when the file is not there.
type Loader struct {
	Dir string
	FS  fs.FS
}

// NewLoader returns a loader over dir and the embedded levels.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir, FS: LevelsFS}
}

// FileName returns the file name for a level index.
func FileName(index int) string {
	return fmt.Sprintf("level%d.json", index)
}

// IndexFromFileName extracts N from level<N>.json.
func IndexFromFileName(name string) (int, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, "level") || !strings.HasSuffix(base, ".json") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(base, "level"), ".json"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Load reads and parses the level at index.
func (l *Loader) Load(index int) (*Definition, error) {
	name := FileName(index)
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return def, nil
}

// Indexes lists every level index available on disk or embedded, sorted.
func (l *Loader) Indexes() []int {
	seen := map[int]bool{}
	if l != nil && l.Dir != "" {
		if entries, err := os.ReadDir(l.Dir); err == nil {
			for _, e := range entries {
				if n, ok := IndexFromFileName(e.Name()); ok {
					seen[n] = true
				}
			}
		}
	}
	if l != nil && l.FS != nil {
		if entries, err := fs.ReadDir(l.FS, "."); err == nil {
			for _, e := range entries {
				if n, ok := IndexFromFileName(e.Name()); ok {
					seen[n] = true
				}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (l *Loader) read(name string) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if l.Dir != "" {
		data, err := os.ReadFile(filepath.Join(l.Dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
	}
	if l.FS != nil {
		data, err := fs.ReadFile(l.FS, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}
