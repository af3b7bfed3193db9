package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// resolveSeed turns the --seed flag into the seed to play with.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// loadGameConfig loads the game config named by --config, or the usual
// search path when the flag is empty.
func loadGameConfig() (config.FlappyConfig, error) {
	return config.LoadFlappy(flagConfig)
}

// fileLogger opens the play log. The alternate screen owns the terminal,
// so play logs go to a file. On failure it returns a discarding logger and
// the error for the caller to report.
func fileLogger(level string) (*log.Logger, io.Closer, error) {
	path, err := logging.DefaultPath()
	if err != nil {
		return logging.Discard(), nopCloser{}, err
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return logging.Discard(), nopCloser{}, err
	}
	logger, err := logging.New(f, "flappy", level)
	if err != nil {
		f.Close()
		return logging.Discard(), nopCloser{}, err
	}
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// highScoreStore returns the file-backed high score, or an in-memory one
// when saving is disabled.
func highScoreStore(path string, noSave bool, logger *log.Logger) (highscore.Store, error) {
	if noSave {
		return &highscore.MemoryStore{}, nil
	}
	if path == "" {
		p, err := highscore.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return highscore.NewFileStore(path, logger), nil
}

// playerName names the local player in the run history.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

