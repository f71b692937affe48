package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeStore keeps one immutable JSON file per resume under
// <root>/<id>.json. Resumes are written once on application submission
// and never updated or deleted.
type ResumeStore struct {
	root string
	log  *zap.Logger
}

func NewResumeStore(root string, log *zap.Logger) (*ResumeStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create resumes root: %w", err)
	}
	return &ResumeStore{root: root, log: log}, nil
}

// Save writes the payload under a fresh uuid and returns the id. The
// collision probability of v4 uuids is negligible and is not checked.
func (s *ResumeStore) Save(payload map[string]any) (string, error) {
	id := uuid.NewString()
	if err := writeJSONFile(filepath.Join(s.root, id+".json"), payload); err != nil {
		return "", err
	}

	s.log.Debug("saved resume", zap.String("resume_id", id))
	return id, nil
}

// Load returns the stored payload, or ErrNotFound if no such id exists.
func (s *ResumeStore) Load(id string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(s.root, id+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("resume not found: %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read resume %s: %w", id, err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode resume %s: %w", id, err)
	}
	return payload, nil
}
