package storage

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// bestLocks serializes writers of the same file. SSH sessions share one
// best file per game.
var bestLocks sync.Map // path -> *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := bestLocks.LoadOrStore(path, new(sync.Mutex))
	return mu.(*sync.Mutex)
}

// BestFile keeps a single best score as a decimal integer in a text file.
// Read and write failures are swallowed: a missing or corrupt file reads
// as 0 and a failed write leaves the old value in place.
type BestFile struct {
	path string
}

// NewBestFile returns a best-score file at path. A leading ~ is expanded.
func NewBestFile(path string) *BestFile {
	if expanded, err := expandHome(path); err == nil {
		path = expanded
	}
	return &BestFile{path: path}
}

// BestFileFor returns the best-score file for a game inside dir.
func BestFileFor(dir, gameID string) *BestFile {
	return NewBestFile(filepath.Join(dir, gameID+"_best.txt"))
}

// Path returns the file location.
func (f *BestFile) Path() string {
	return f.path
}

// Load reads the stored best, or 0 if it cannot.
func (f *BestFile) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0
	}
	best, err := strconv.Atoi(text)
	if err != nil || best < 0 {
		return 0
	}
	return best
}

// Save writes best unless the file already holds a higher score, creating
// the parent directory if needed.
func (f *BestFile) Save(best int) {
	mu := lockFor(f.path)
	mu.Lock()
	defer mu.Unlock()

	if best <= f.Load() {
		return
	}
	dir := filepath.Dir(f.path)
	_ = os.MkdirAll(dir, 0o755)

	// Write to a unique sibling first so a crash never leaves a truncated
	// file and another process never shares the temp file
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return
	}
	_ = tmp.Chmod(0o644)
	_, err = tmp.WriteString(strconv.Itoa(best))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), f.path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
	}
}
