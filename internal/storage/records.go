package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nikolak/job-tracker/internal/models"
	"go.uber.org/zap"
)

// RecordStore persists application day-documents as one JSON file per
// (profile, date) under <root>/<profile>/<date>.json. It holds no state
// between calls: every operation opens, reads or rewrites, and closes the
// file. Profile directories live directly under the data root, next to
// the schedules/ and resumes/ directories.
type RecordStore struct {
	root  string
	locks *keyedMutex
	log   *zap.Logger
}

func NewRecordStore(root string, log *zap.Logger) (*RecordStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data root: %w", err)
	}
	return &RecordStore{root: root, locks: newKeyedMutex(), log: log}, nil
}

func (s *RecordStore) dayPath(profile, date string) string {
	return filepath.Join(s.root, profile, date+".json")
}

// Lock serializes a read-modify-write cycle for one day file. The caller
// must invoke the returned unlock function when done.
func (s *RecordStore) Lock(profile, date string) func() {
	return s.locks.Lock(profile + "/" + date)
}

// Read returns the day-document for (profile, date). A missing profile
// directory or day file yields an empty document, not an error.
func (s *RecordStore) Read(profile, date string) (models.DayDocument, error) {
	data, err := os.ReadFile(s.dayPath(profile, date))
	if errors.Is(err, fs.ErrNotExist) {
		return models.DayDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read day file: %w", err)
	}

	var doc models.DayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode day file %s/%s: %w", profile, date, err)
	}
	return doc, nil
}

// Write overwrites the whole day file, creating the profile directory on
// first use.
func (s *RecordStore) Write(profile, date string, doc models.DayDocument) (string, error) {
	dir := filepath.Join(s.root, profile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create profile dir: %w", err)
	}

	path := s.dayPath(profile, date)
	if err := writeJSONFile(path, doc); err != nil {
		return "", err
	}

	s.log.Debug("wrote day file",
		zap.String("profile", profile),
		zap.String("date", date),
	)
	return path, nil
}

// ReadMerged combines every day file of a profile in filename (date)
// order: per company, roles from later days overwrite earlier ones.
// Unreadable day files are skipped. A missing profile yields an empty
// document.
func (s *RecordStore) ReadMerged(profile string) (models.DayDocument, error) {
	dir := filepath.Join(s.root, profile)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return models.DayDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var dates []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			dates = append(dates, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(dates)

	combined := models.DayDocument{}
	for _, date := range dates {
		doc, err := s.Read(profile, date)
		if err != nil {
			s.log.Warn("skipping unreadable day file",
				zap.String("profile", profile),
				zap.String("date", date),
				zap.Error(err),
			)
			continue
		}
		for company, roles := range doc {
			if combined[company] == nil {
				combined[company] = map[string]models.Application{}
			}
			for role, app := range roles {
				combined[company][role] = app
			}
		}
	}
	return combined, nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
