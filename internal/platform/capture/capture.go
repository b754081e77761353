// Package capture writes plain-text screenshots of a rendered frame.
package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

// DefaultDir returns ~/.termtris/screenshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("capture: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".termtris", "screenshots"), nil
}

// Save writes the screen as text to dir, named after the game and time.
// It returns the written path.
func Save(dir, gameID string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("capture: cannot write screenshot: %w", err)
	}
	return path, nil
}
