package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"naijaquest/internal/api"
)

// The CLI keeps the last view of each game on disk so 'naija status'
// can render something when the server is unreachable.

func savePath(gameID string) (string, error) {
	dir, err := baseDir()
	if err != nil {
		return "", err
	}
	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(saves, gameID+".json"), nil
}

func SaveSnapshot(view api.GameView) error {
	if view.ID == "" {
		return nil
	}
	path, err := savePath(view.ID)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func LoadSnapshot(gameID string) (api.GameView, error) {
	path, err := savePath(gameID)
	if err != nil {
		return api.GameView{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return api.GameView{}, err
	}
	var view api.GameView
	if err := json.Unmarshal(raw, &view); err != nil {
		return api.GameView{}, err
	}
	return view, nil
}

func RemoveSnapshot(gameID string) error {
	path, err := savePath(gameID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return os.Remove(path)
}
