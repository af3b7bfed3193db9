package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// HighScore returns the stored high score for a game, or 0 if none.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM highscores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return max(score, 0), nil
}

// SetHighScore replaces the stored high score for a game.
func (s *Store) SetHighScore(gameID string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	_, err := s.db.Exec(
		`INSERT INTO highscores (game_id, score) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// HighScores adapts the store to highscore.Store for one game. Read errors
// are logged and reported as 0.
func (s *Store) HighScores(gameID string, logger *log.Logger) highscore.Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &highScores{store: s, gameID: gameID, logger: logger}
}

type highScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

func (h *highScores) Load() int {
	n, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Debug("highscore read failed", "game", h.gameID, "err", err)
		return 0
	}
	return n
}

func (h *highScores) Save(n int) error {
	return h.store.SetHighScore(h.gameID, n)
}
