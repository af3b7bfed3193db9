package highscore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// FileName is the default high score file name.
const FileName = "highscore.json"

// DefaultPath returns ~/.flappy/highscore.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".flappy", FileName), nil
}

// FileStore keeps the high score in a JSON file of the form
// {"highscore": N}.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by path. The file is created on the
// first Save. A nil logger discards diagnostics.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score. Missing files, malformed JSON, values of
// the wrong type and negative numbers all yield 0.
func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("highscore read failed", "path", s.path, "err", err)
		}
		return 0
	}

	n, err := decode(data)
	if err != nil {
		s.logger.Debug("highscore file ignored", "path", s.path, "err", err)
		return 0
	}
	return n
}

// Save writes n through a temporary file and a rename, so a crash never
// leaves a truncated file behind.
func (s *FileStore) Save(n int) error {
	if n < 0 {
		return fmt.Errorf("highscore: negative score %d", n)
	}

	data, err := json.Marshal(map[string]int{"highscore": n})
	if err != nil {
		return fmt.Errorf("highscore: failed to encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("highscore: failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.json")
	if err != nil {
		return fmt.Errorf("highscore: failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: failed to write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: failed to write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: failed to replace %s: %w", s.path, err)
	}
	return nil
}

// decode extracts the score, accepting integers, floats (truncated),
// numeric strings and booleans. A missing key is 0.
func decode(data []byte) (int, error) {
	var doc map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return 0, err
	}

	var n int
	switch v := doc["highscore"].(type) {
	case nil:
		return 0, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n = int(i)
			break
		}
		f, err := v.Float64()
		if err != nil || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("highscore %q out of range", v)
		}
		n = int(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("highscore %q is not an integer", v)
		}
		n = i
	case bool:
		if v {
			n = 1
		}
	default:
		return 0, fmt.Errorf("highscore has unsupported type %T", v)
	}

	if n < 0 {
		return 0, fmt.Errorf("negative highscore %d", n)
	}
	return n, nil
}
