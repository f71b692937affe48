package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nikolak/job-tracker/internal/models"
	"github.com/nikolak/job-tracker/internal/storage"
	"go.uber.org/zap"
)

// ScheduleService owns the upsert/merge, delete, and query logic for
// interview schedule entries. Entries are identified by their
// (company_name, role_name) pair, case-sensitive.
type ScheduleService struct {
	Store *storage.ScheduleStore
	Log   *zap.Logger
}

func NewScheduleService(store *storage.ScheduleStore, log *zap.Logger) *ScheduleService {
	return &ScheduleService{Store: store, Log: log}
}

// ScheduleUpdate carries one upsert. Empty strings mean "not provided"
// for Assignee, Duration, InterviewLink and InterviewDatetime (existing
// values are kept); every other field replaces the stored value
// unconditionally.
type ScheduleUpdate struct {
	ProfileName string
	CompanyName string
	RoleName    string
	Link        string
	ResumeID    string

	InterviewStage    string
	NextSteps         string
	Status            string
	InterviewLink     string
	InterviewDatetime string
	Assignee          string
	Duration          string
}

// Upsert inserts or merges one schedule entry and returns the profile's
// full updated list. A supplied interview_datetime is normalized to the
// reference timezone; if it does not parse as ISO the raw string is
// stored as-is.
func (s *ScheduleService) Upsert(u ScheduleUpdate) ([]models.ScheduleEntry, error) {
	if u.InterviewDatetime != "" {
		u.InterviewDatetime = NormalizeISO(u.InterviewDatetime)
	}

	unlock := s.Store.Lock(u.ProfileName)
	defer unlock()

	entries, err := s.Store.Read(u.ProfileName)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, e := range entries {
		if e.CompanyName == u.CompanyName && e.RoleName == u.RoleName {
			idx = i
			break
		}
	}

	if idx == -1 {
		entries = append(entries, models.ScheduleEntry{
			CompanyName:       u.CompanyName,
			RoleName:          u.RoleName,
			Link:              u.Link,
			ResumeID:          u.ResumeID,
			InterviewStage:    u.InterviewStage,
			NextSteps:         u.NextSteps,
			PreviousSteps:     []string{},
			Status:            u.Status,
			InterviewLink:     u.InterviewLink,
			InterviewDatetime: u.InterviewDatetime,
			Assignee:          u.Assignee,
			Duration:          u.Duration,
		})
	} else {
		e := &entries[idx]

		// Capture the stage being displaced. Never record the same
		// stage twice in a row.
		if e.InterviewStage != "" &&
			(len(e.PreviousSteps) == 0 || e.PreviousSteps[len(e.PreviousSteps)-1] != e.InterviewStage) {
			e.PreviousSteps = append(e.PreviousSteps, e.InterviewStage)
		}

		e.Link = u.Link
		e.ResumeID = u.ResumeID
		e.InterviewStage = u.InterviewStage
		e.NextSteps = u.NextSteps
		e.Status = u.Status
		if u.Assignee != "" {
			e.Assignee = u.Assignee
		}
		if u.Duration != "" {
			e.Duration = u.Duration
		}
		if u.InterviewLink != "" {
			e.InterviewLink = u.InterviewLink
		}
		if u.InterviewDatetime != "" {
			e.InterviewDatetime = u.InterviewDatetime
		}
	}

	if err := s.Store.Write(u.ProfileName, entries); err != nil {
		return nil, err
	}

	s.Log.Info("schedule upserted",
		zap.String("profile", u.ProfileName),
		zap.String("company", u.CompanyName),
		zap.String("role", u.RoleName),
	)
	return entries, nil
}

// Delete removes the entry matching (company, role) and returns how many
// entries remain. It fails with storage.ErrNotFound when the profile has
// no schedule file or no entry matched.
func (s *ScheduleService) Delete(profile, company, role string) (int, error) {
	unlock := s.Store.Lock(profile)
	defer unlock()

	if !s.Store.Exists(profile) {
		return 0, fmt.Errorf("profile schedule not found: %w", storage.ErrNotFound)
	}

	entries, err := s.Store.Read(profile)
	if err != nil {
		return 0, err
	}

	kept := entries[:0:0]
	for _, e := range entries {
		if !(e.CompanyName == company && e.RoleName == role) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return 0, fmt.Errorf("schedule not found: %w", storage.ErrNotFound)
	}

	if err := s.Store.Write(profile, kept); err != nil {
		return 0, err
	}

	s.Log.Info("schedule deleted",
		zap.String("profile", profile),
		zap.String("company", company),
		zap.String("role", role),
	)
	return len(kept), nil
}

// List returns schedule entries, each tagged with its source profile,
// optionally filtered by calendar date (reference timezone) and by
// assignee, sorted ascending by interview time. Entries without a usable
// timestamp are dropped by the date filter and sort last otherwise.
func (s *ScheduleService) List(profile, date, assignee string) ([]models.ScheduleEntry, error) {
	var items []models.ScheduleEntry

	collect := func(name string) {
		entries, err := s.Store.Read(name)
		if err != nil {
			s.Log.Warn("skipping unreadable schedule file",
				zap.String("profile", name),
				zap.Error(err),
			)
			return
		}
		for _, e := range entries {
			e.ProfileName = name
			items = append(items, e)
		}
	}

	if profile != "" {
		collect(profile)
	} else {
		profiles, err := s.Store.Profiles()
		if err != nil {
			return nil, err
		}
		for _, name := range profiles {
			collect(name)
		}
	}

	if date != "" {
		filtered := items[:0:0]
		for _, e := range items {
			if t, ok := ParseDateTime(e.InterviewDatetime); ok && t.Format(dateLayout) == date {
				filtered = append(filtered, e)
			}
		}
		items = filtered
	}

	if assignee != "" {
		want := strings.ToLower(strings.TrimSpace(assignee))
		filtered := items[:0:0]
		for _, e := range items {
			if strings.ToLower(strings.TrimSpace(e.Assignee)) == want {
				filtered = append(filtered, e)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return sortKey(items[i]).Before(sortKey(items[j]))
	})

	if items == nil {
		items = []models.ScheduleEntry{}
	}
	return items, nil
}

func sortKey(e models.ScheduleEntry) time.Time {
	if t, ok := ParseDateTime(e.InterviewDatetime); ok {
		return t
	}
	return farFuture
}
