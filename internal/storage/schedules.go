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

// ScheduleStore keeps the full schedule list of each profile in a single
// JSON file, <root>/<profile>.json. Every mutation rewrites the whole
// file.
type ScheduleStore struct {
	root  string
	locks *keyedMutex
	log   *zap.Logger
}

func NewScheduleStore(root string, log *zap.Logger) (*ScheduleStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create schedules root: %w", err)
	}
	return &ScheduleStore{root: root, locks: newKeyedMutex(), log: log}, nil
}

func (s *ScheduleStore) path(profile string) string {
	return filepath.Join(s.root, profile+".json")
}

// Lock serializes a read-modify-write cycle for one profile. The caller
// must invoke the returned unlock function when done.
func (s *ScheduleStore) Lock(profile string) func() {
	return s.locks.Lock(profile)
}

// Exists reports whether the profile has a schedule file at all.
func (s *ScheduleStore) Exists(profile string) bool {
	_, err := os.Stat(s.path(profile))
	return err == nil
}

// Read returns the profile's entries, empty if the file does not exist.
// Malformed JSON is an error; callers in list paths may choose to skip it.
func (s *ScheduleStore) Read(profile string) ([]models.ScheduleEntry, error) {
	data, err := os.ReadFile(s.path(profile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read schedules for %s: %w", profile, err)
	}

	var entries []models.ScheduleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode schedules for %s: %w", profile, err)
	}
	return entries, nil
}

// Write overwrites the profile's schedule file with the full list.
func (s *ScheduleStore) Write(profile string, entries []models.ScheduleEntry) error {
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	if err := writeJSONFile(s.path(profile), entries); err != nil {
		return err
	}

	s.log.Debug("wrote schedules",
		zap.String("profile", profile),
		zap.Int("entries", len(entries)),
	)
	return nil
}

// Profiles lists every profile that has a schedule file, sorted by name.
func (s *ScheduleStore) Profiles() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read schedules root: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names, nil
}
