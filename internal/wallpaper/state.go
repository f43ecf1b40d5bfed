package wallpaper

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// AppState is the persisted document: the full catalog plus the file name of
// the image currently in use. CurrentImage is nil when nothing has been
// selected yet. A stale pointer (file deleted out from under us) is
// tolerated on load and surfaces downstream as a missing file.
type AppState struct {
	ImageData    Catalog `json:"image_data"`
	CurrentImage *string `json:"current_image"`
}

// LoadState reads the state file at path, returning an empty state when the
// file does not exist yet. A file that exists but fails to parse is an
// error; silently starting over would throw away the download history.
func LoadState(path string) (*AppState, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &AppState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	var state AppState
	if err := json.Unmarshal(contents, &state); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	return &state, nil
}

// Save writes the state as pretty-printed JSON, replacing any previous file.
// There is no locking; the single-user usage model makes last-writer-wins
// acceptable.
func (s *AppState) Save(path string) error {
	contents, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("write state file %s: %w", path, err)
	}
	return nil
}

// Current returns the current image file name, or "" when none is set.
func (s *AppState) Current() string {
	if s.CurrentImage == nil {
		return ""
	}
	return *s.CurrentImage
}

// SetCurrent records name as the current image.
func (s *AppState) SetCurrent(name string) {
	s.CurrentImage = &name
}
