package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolak/job-tracker/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleService(t *testing.T) *ScheduleService {
	t.Helper()
	store, err := storage.NewScheduleStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return NewScheduleService(store, zap.NewNop())
}

func baseUpdate() ScheduleUpdate {
	return ScheduleUpdate{
		ProfileName: "nikola",
		CompanyName: "Acme",
		RoleName:    "SWE",
		Link:        "https://acme/jobs/1",
		ResumeID:    "r1",
		Status:      "waiting",
	}
}

func TestUpsertCreatesEntry(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewStage = "Phone Screen"

	entries, err := svc.Upsert(u)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Acme", e.CompanyName)
	assert.Equal(t, "SWE", e.RoleName)
	assert.Equal(t, "Phone Screen", e.InterviewStage)
	assert.Equal(t, "waiting", e.Status)
	assert.Equal(t, []string{}, e.PreviousSteps)
}

func TestUpsertDisplacesStageIntoHistory(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewStage = "Phone Screen"
	_, err := svc.Upsert(u)
	require.NoError(t, err)

	u.InterviewStage = "Onsite"
	entries, err := svc.Upsert(u)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Onsite", entries[0].InterviewStage)
	assert.Equal(t, []string{"Phone Screen"}, entries[0].PreviousSteps)
}

func TestUpsertNeverDuplicatesConsecutiveStages(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewStage = "Phone Screen"
	_, err := svc.Upsert(u)
	require.NoError(t, err)

	u.InterviewStage = "Onsite"
	_, err = svc.Upsert(u)
	require.NoError(t, err)

	// A third upsert with the same stage must not append Onsite twice.
	entries, err := svc.Upsert(u)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Onsite", entries[0].InterviewStage)
	assert.Equal(t, []string{"Phone Screen", "Onsite"}, entries[0].PreviousSteps)
}

func TestUpsertMergeSemantics(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewStage = "Phone Screen"
	u.NextSteps = "prepare"
	u.Assignee = "Marta"
	u.Duration = "45m"
	u.InterviewLink = "https://meet/1"
	u.InterviewDatetime = "2024-03-01T10:00:00"
	_, err := svc.Upsert(u)
	require.NoError(t, err)

	// Second upsert omits the sticky fields and clears the rest.
	second := baseUpdate()
	second.InterviewStage = ""
	second.NextSteps = ""
	entries, err := svc.Upsert(second)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	// Replaced unconditionally, even with empty values.
	assert.Equal(t, "", e.InterviewStage)
	assert.Equal(t, "", e.NextSteps)
	// Preserved because the incoming values were empty.
	assert.Equal(t, "Marta", e.Assignee)
	assert.Equal(t, "45m", e.Duration)
	assert.Equal(t, "https://meet/1", e.InterviewLink)
	assert.Equal(t, "2024-03-01 10:00:00 CET", e.InterviewDatetime)
	// The displaced stage landed in the history.
	assert.Equal(t, []string{"Phone Screen"}, e.PreviousSteps)
}

func TestUpsertNormalizesDatetime(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewDatetime = "2024-03-01T10:00:00+00:00"
	entries, err := svc.Upsert(u)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01 11:00:00 CET", entries[0].InterviewDatetime)
}

func TestUpsertKeepsRawDatetimeOnParseFailure(t *testing.T) {
	svc := newScheduleService(t)

	u := baseUpdate()
	u.InterviewDatetime = "when they get back to us"
	entries, err := svc.Upsert(u)
	require.NoError(t, err)

	assert.Equal(t, "when they get back to us", entries[0].InterviewDatetime)
}

func TestUpsertKeepsInsertionOrder(t *testing.T) {
	svc := newScheduleService(t)

	first := baseUpdate()
	_, err := svc.Upsert(first)
	require.NoError(t, err)

	second := baseUpdate()
	second.CompanyName = "Globex"
	_, err = svc.Upsert(second)
	require.NoError(t, err)

	// Updating the first entry must not move it.
	first.InterviewStage = "Onsite"
	entries, err := svc.Upsert(first)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme", entries[0].CompanyName)
	assert.Equal(t, "Globex", entries[1].CompanyName)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	svc := newScheduleService(t)

	_, err := svc.Upsert(baseUpdate())
	require.NoError(t, err)
	other := baseUpdate()
	other.CompanyName = "Globex"
	_, err = svc.Upsert(other)
	require.NoError(t, err)

	remaining, err := svc.Delete("nikola", "Acme", "SWE")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	entries, err := svc.Store.Read("nikola")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Globex", entries[0].CompanyName)
}

func TestDeleteMissingProfile(t *testing.T) {
	svc := newScheduleService(t)

	_, err := svc.Delete("ghost", "Acme", "SWE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestDeleteMissingEntry(t *testing.T) {
	svc := newScheduleService(t)

	_, err := svc.Upsert(baseUpdate())
	require.NoError(t, err)

	_, err = svc.Delete("nikola", "Acme", "Designer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestListTagsProfileAndConcatenates(t *testing.T) {
	svc := newScheduleService(t)

	_, err := svc.Upsert(baseUpdate())
	require.NoError(t, err)

	other := baseUpdate()
	other.ProfileName = "ammar"
	other.CompanyName = "Globex"
	_, err = svc.Upsert(other)
	require.NoError(t, err)

	items, err := svc.List("", "", "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	profiles := []string{items[0].ProfileName, items[1].ProfileName}
	assert.ElementsMatch(t, []string{"nikola", "ammar"}, profiles)
}

func TestListDateFilter(t *testing.T) {
	svc := newScheduleService(t)

	match := baseUpdate()
	match.InterviewDatetime = "2024-03-01T10:00:00"
	_, err := svc.Upsert(match)
	require.NoError(t, err)

	wrongDay := baseUpdate()
	wrongDay.CompanyName = "Globex"
	wrongDay.InterviewDatetime = "2024-03-02T10:00:00"
	_, err = svc.Upsert(wrongDay)
	require.NoError(t, err)

	noTime := baseUpdate()
	noTime.CompanyName = "Initech"
	_, err = svc.Upsert(noTime)
	require.NoError(t, err)

	unparseable := baseUpdate()
	unparseable.CompanyName = "Umbrella"
	unparseable.InterviewDatetime = "soon, hopefully"
	_, err = svc.Upsert(unparseable)
	require.NoError(t, err)

	items, err := svc.List("nikola", "2024-03-01", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].CompanyName)
}

func TestListAssigneeFilter(t *testing.T) {
	svc := newScheduleService(t)

	mine := baseUpdate()
	mine.Assignee = "Marta"
	_, err := svc.Upsert(mine)
	require.NoError(t, err)

	theirs := baseUpdate()
	theirs.CompanyName = "Globex"
	theirs.Assignee = "Jan"
	_, err = svc.Upsert(theirs)
	require.NoError(t, err)

	unassigned := baseUpdate()
	unassigned.CompanyName = "Initech"
	_, err = svc.Upsert(unassigned)
	require.NoError(t, err)

	items, err := svc.List("nikola", "", "  marta ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0].CompanyName)
}

func TestListSortsMissingDatetimesLastStably(t *testing.T) {
	svc := newScheduleService(t)

	updates := []ScheduleUpdate{
		{CompanyName: "NoTime1"},
		{CompanyName: "Late", InterviewDatetime: "2024-03-05T09:00:00"},
		{CompanyName: "NoTime2", InterviewDatetime: "tbd"},
		{CompanyName: "Early", InterviewDatetime: "2024-03-01T09:00:00"},
		{CompanyName: "NoTime3"},
	}
	for _, u := range updates {
		u.ProfileName = "nikola"
		u.RoleName = "SWE"
		u.Link = "https://x"
		u.ResumeID = "r1"
		u.Status = "waiting"
		_, err := svc.Upsert(u)
		require.NoError(t, err)
	}

	items, err := svc.List("nikola", "", "")
	require.NoError(t, err)
	require.Len(t, items, 5)

	var order []string
	for _, e := range items {
		order = append(order, e.CompanyName)
	}
	// Valid timestamps ascending first, then the missing/unparseable
	// ones in their original relative order.
	assert.Equal(t, []string{"Early", "Late", "NoTime1", "NoTime2", "NoTime3"}, order)
}

func TestListEmpty(t *testing.T) {
	svc := newScheduleService(t)

	items, err := svc.List("", "", "")
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestListSkipsCorruptProfileFiles(t *testing.T) {
	root := t.TempDir()
	store, err := storage.NewScheduleStore(root, zap.NewNop())
	require.NoError(t, err)
	svc := NewScheduleService(store, zap.NewNop())

	_, err = svc.Upsert(baseUpdate())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "broken.json"), []byte("{not a list"), 0o644))

	items, err := svc.List("", "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "nikola", items[0].ProfileName)
}
