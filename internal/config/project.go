package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "bingwall"

// Project holds the resolved per-user paths the tool works with.
type Project struct {
	ConfigFilePath string `json:"config_file_path"`
	DataDir        string `json:"data_dir"`
	StateFilePath  string `json:"state_file_path"`
}

// ResolveProject locates the config, data and state paths following the XDG
// base directory spec, with the usual ~/.config, ~/.local/share and
// ~/.local/state fallbacks.
func ResolveProject() (Project, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Project{}, fmt.Errorf("resolve config directory: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Project{}, fmt.Errorf("resolve home directory: %w", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(home, ".local", "share")
	}

	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		stateDir = filepath.Join(home, ".local", "state")
	}

	return Project{
		ConfigFilePath: filepath.Join(configDir, appDirName, "config.json"),
		DataDir:        filepath.Join(dataDir, appDirName),
		StateFilePath:  filepath.Join(stateDir, appDirName, "image_index.json"),
	}, nil
}

// EnsureDirs creates the data directory and the state file's parent directory
// if they do not exist yet.
func (p Project) EnsureDirs() error {
	if err := os.MkdirAll(p.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.StateFilePath), 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	return nil
}
