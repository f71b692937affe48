package services

import (
	"github.com/nikolak/job-tracker/internal/models"
	"github.com/nikolak/job-tracker/internal/storage"
	"go.uber.org/zap"
)

// ApplicationService records submitted applications into the day file of
// the current Warsaw calendar date and snapshots the attached resume.
type ApplicationService struct {
	Records *storage.RecordStore
	Resumes *storage.ResumeStore
	Log     *zap.Logger
}

func NewApplicationService(records *storage.RecordStore, resumes *storage.ResumeStore, log *zap.Logger) *ApplicationService {
	return &ApplicationService{Records: records, Resumes: resumes, Log: log}
}

// SubmissionResult reports where an application landed on disk.
type SubmissionResult struct {
	SavedTo string
	Date    string
	Data    models.DayDocument
}

// Submit stores the resume under a fresh id and upserts the (company,
// role) record into today's day file. Re-applying to the same pair the
// same day overwrites that record.
func (s *ApplicationService) Submit(profile, company, role, link string, resume map[string]any) (*SubmissionResult, error) {
	date := CurrentDate()

	unlock := s.Records.Lock(profile, date)
	defer unlock()

	doc, err := s.Records.Read(profile, date)
	if err != nil {
		return nil, err
	}

	resumeID, err := s.Resumes.Save(resume)
	if err != nil {
		return nil, err
	}

	if doc[company] == nil {
		doc[company] = map[string]models.Application{}
	}
	doc[company][role] = models.Application{Link: link, ResumeID: resumeID}

	path, err := s.Records.Write(profile, date, doc)
	if err != nil {
		return nil, err
	}

	s.Log.Info("application recorded",
		zap.String("profile", profile),
		zap.String("company", company),
		zap.String("role", role),
		zap.String("resume_id", resumeID),
	)
	return &SubmissionResult{SavedTo: path, Date: date, Data: doc}, nil
}

// Applied returns one day's document when date is set, otherwise every
// day merged (later days overwrite earlier ones per company and role).
func (s *ApplicationService) Applied(profile, date string) (models.DayDocument, error) {
	if date != "" {
		return s.Records.Read(profile, date)
	}
	return s.Records.ReadMerged(profile)
}
