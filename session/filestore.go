package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/townbook/client-go/types"
)

// FileStore persists the session as a small JSON file with two entries,
// auth_token and auth_user, mirroring the durable key-value storage the
// web client uses. Safe for concurrent use.
type FileStore struct {
	path string

	mu    sync.RWMutex
	state fileState
}

type fileState struct {
	AuthToken string          `json:"auth_token,omitempty"`
	AuthUser  *types.AuthUser `json:"auth_user,omitempty"`
}

// OpenFileStore loads the session file at path, creating parent
// directories as needed. A missing file is an empty session, not an error.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(data, &fs.state); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if fs.state.AuthUser != nil {
		normalized := NormalizeUser(*fs.state.AuthUser)
		fs.state.AuthUser = &normalized
	}
	return fs, nil
}

func (fs *FileStore) Token() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.state.AuthToken
}

func (fs *FileStore) CurrentUser() (types.AuthUser, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if fs.state.AuthUser == nil {
		return types.AuthUser{}, false
	}
	return *fs.state.AuthUser, true
}

// SetSession stores the token and normalized user and writes them through
// to disk.
func (fs *FileStore) SetSession(token string, user types.AuthUser) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	normalized := NormalizeUser(user)
	fs.state = fileState{AuthToken: token, AuthUser: &normalized}
	return fs.flush()
}

// Clear wipes the session and removes the file contents.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.state = fileState{}
	return fs.flush()
}

func (fs *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.MarshalIndent(fs.state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
