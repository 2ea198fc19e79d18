package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domain "dailyapps/internal/domain/jobs"
	"dailyapps/internal/util"
)

type JobBoardService interface {
	CreateCompany(ctx context.Context, name, contactInfo string) (CompanyInfo, error)
	CreatePosting(ctx context.Context, companyID string, in PostingInput) (PostingInfo, error)
	EditPosting(ctx context.Context, companyID string, postingID int64, salary decimal.Decimal, title string) (PostingInfo, error)
	DeletePosting(ctx context.Context, companyID string, postingID int64) error
	ListPostings(ctx context.Context, jobType domain.JobType) ([]PostingInfo, error)
	CompanyPostings(ctx context.Context, companyID string) ([]PostingInfo, error)
	CreateSeeker(ctx context.Context, name, contactInfo, resume string) (SeekerInfo, error)
	Search(ctx context.Context, seekerID string, criteria domain.Criteria) ([]PostingInfo, error)
	Apply(ctx context.Context, seekerID string, postingID int64) (ApplicationInfo, error)
	SeekerApplications(ctx context.Context, seekerID string) ([]ApplicationInfo, error)
	ViewApplications(ctx context.Context, companyID string, postingID int64) ([]ApplicationInfo, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.Status) (ApplicationInfo, error)
}

type PostingInput struct {
	Title     string          `json:"title"`
	Salary    decimal.Decimal `json:"salary"`
	Type      domain.JobType  `json:"type"`
	WorkHours int             `json:"work_hours,omitempty"`
}

type CompanyInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type PostingInfo struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Salary       decimal.Decimal `json:"salary"`
	Type         domain.JobType  `json:"type"`
	WorkHours    int             `json:"work_hours,omitempty"`
	CompanyID    string          `json:"company_id"`
	Applications int             `json:"applications"`
}

type SeekerInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	Resume      string `json:"resume,omitempty"`
}

type ApplicationInfo struct {
	ID          string                `json:"id"`
	PostingID   int64                 `json:"posting_id"`
	PostingName string                `json:"posting_title"`
	ApplicantID string                `json:"applicant_id"`
	Applicant   string                `json:"applicant"`
	Status      domain.Status         `json:"status"`
	History     []domain.StatusChange `json:"history"`
}

type jobBoardService struct {
	mu           sync.Mutex
	seq          util.Sequence
	fullTime     *domain.FullTimeJob
	companies    map[string]*domain.Company
	seekers      map[string]*domain.JobSeeker
	postings     map[int64]*domain.Company
	applications map[string]*domain.Application
	logger       *zap.Logger
}

func NewJobBoardService(logger *zap.Logger) JobBoardService {
	s := &jobBoardService{
		companies:    make(map[string]*domain.Company),
		seekers:      make(map[string]*domain.JobSeeker),
		postings:     make(map[int64]*domain.Company),
		applications: make(map[string]*domain.Application),
		logger:       logger,
	}
	s.fullTime = domain.NewFullTimeJob(&s.seq)
	return s
}

func postingInfo(p *domain.Posting) PostingInfo {
	return PostingInfo{
		ID:           p.ID,
		Title:        p.Title,
		Salary:       p.Salary,
		Type:         p.Type,
		WorkHours:    p.WorkHours,
		CompanyID:    p.CompanyID,
		Applications: len(p.Applications()),
	}
}

func postingInfos(ps []*domain.Posting) []PostingInfo {
	out := make([]PostingInfo, 0, len(ps))
	for _, p := range ps {
		out = append(out, postingInfo(p))
	}
	return out
}

func applicationInfo(a *domain.Application) ApplicationInfo {
	return ApplicationInfo{
		ID:          a.ID,
		PostingID:   a.Posting.ID,
		PostingName: a.Posting.Title,
		ApplicantID: a.Applicant.ID,
		Applicant:   a.Applicant.Name,
		Status:      a.Status,
		History:     a.History(),
	}
}

func applicationInfos(as []*domain.Application) []ApplicationInfo {
	out := make([]ApplicationInfo, 0, len(as))
	for _, a := range as {
		out = append(out, applicationInfo(a))
	}
	return out
}

// operation picks the posting variant for a job type. Part-time variants
// share the board's id sequence.
func (s *jobBoardService) operation(jobType domain.JobType, hours int) (domain.PostingOperation, error) {
	switch jobType {
	case domain.FullTime, "":
		return s.fullTime, nil
	case domain.PartTime:
		return domain.NewPartTimeJob(&s.seq, hours)
	default:
		return nil, fmt.Errorf("job type %q: %w", jobType, domain.ErrInvalidJobPosting)
	}
}

func (s *jobBoardService) company(id string) (*domain.Company, error) {
	c, ok := s.companies[id]
	if !ok {
		return nil, fmt.Errorf("company %s: %w", id, domain.ErrCompanyNotFound)
	}
	return c, nil
}

func (s *jobBoardService) seeker(id string) (*domain.JobSeeker, error) {
	js, ok := s.seekers[id]
	if !ok {
		return nil, fmt.Errorf("job seeker %s: %w", id, domain.ErrSeekerNotFound)
	}
	return js, nil
}

// allPostings lists every open posting in id order.
func (s *jobBoardService) allPostings() []*domain.Posting {
	var all []*domain.Posting
	for _, c := range s.companies {
		all = append(all, c.Postings()...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func (s *jobBoardService) CreateCompany(ctx context.Context, name, contactInfo string) (CompanyInfo, error) {
	c, err := domain.NewCompany(name, contactInfo)
	if err != nil {
		return CompanyInfo{}, fmt.Errorf("failed to create company: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
	s.logger.Info("Company created", zap.String("company_id", c.ID), zap.String("name", c.Name))
	return CompanyInfo{ID: c.ID, Name: c.Name, ContactInfo: c.ContactInfo}, nil
}

func (s *jobBoardService) CreatePosting(ctx context.Context, companyID string, in PostingInput) (PostingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.company(companyID)
	if err != nil {
		return PostingInfo{}, err
	}
	op, err := s.operation(in.Type, in.WorkHours)
	if err != nil {
		return PostingInfo{}, err
	}
	p, err := op.CreatePosting(in.Title, in.Salary)
	if err != nil {
		s.logger.Warn("Failed to create posting", zap.String("company_id", companyID), zap.Error(err))
		return PostingInfo{}, fmt.Errorf("failed to create posting: %w", err)
	}
	c.AddPosting(p)
	s.postings[p.ID] = c
	s.logger.Info("Posting created",
		zap.Int64("posting_id", p.ID),
		zap.String("company_id", companyID),
		zap.String("type", string(p.Type)))
	return postingInfo(p), nil
}

func (s *jobBoardService) EditPosting(ctx context.Context, companyID string, postingID int64, salary decimal.Decimal, title string) (PostingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.company(companyID)
	if err != nil {
		return PostingInfo{}, err
	}
	if err := c.EditPosting(postingID, salary, title); err != nil {
		return PostingInfo{}, fmt.Errorf("edit posting %d: %w", postingID, err)
	}
	p, err := c.Posting(postingID)
	if err != nil {
		return PostingInfo{}, err
	}
	s.logger.Info("Posting edited", zap.Int64("posting_id", postingID))
	return postingInfo(p), nil
}

func (s *jobBoardService) DeletePosting(ctx context.Context, companyID string, postingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.company(companyID)
	if err != nil {
		return err
	}
	p, err := c.Posting(postingID)
	if err != nil {
		return err
	}
	op, err := s.operation(p.Type, p.WorkHours)
	if err != nil {
		return err
	}
	if err := c.RemovePosting(op, postingID); err != nil {
		return err
	}
	delete(s.postings, postingID)
	s.logger.Info("Posting deleted", zap.Int64("posting_id", postingID), zap.String("company_id", companyID))
	return nil
}

// ListPostings lists open postings of one job type, or every type when
// jobType is empty.
func (s *jobBoardService) ListPostings(ctx context.Context, jobType domain.JobType) ([]PostingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.allPostings()
	if jobType == "" {
		return postingInfos(all), nil
	}
	op, err := s.operation(jobType, 1)
	if err != nil {
		return nil, err
	}
	return postingInfos(op.ListPostings(all)), nil
}

func (s *jobBoardService) CompanyPostings(ctx context.Context, companyID string) ([]PostingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.company(companyID)
	if err != nil {
		return nil, err
	}
	return postingInfos(c.Postings()), nil
}

func (s *jobBoardService) CreateSeeker(ctx context.Context, name, contactInfo, resume string) (SeekerInfo, error) {
	js, err := domain.NewJobSeeker(name, contactInfo, resume)
	if err != nil {
		return SeekerInfo{}, fmt.Errorf("failed to create job seeker: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seekers[js.ID] = js
	s.logger.Info("Job seeker created", zap.String("seeker_id", js.ID))
	return SeekerInfo{ID: js.ID, Name: js.Name, ContactInfo: js.ContactInfo, Resume: js.Resume}, nil
}

func (s *jobBoardService) Search(ctx context.Context, seekerID string, criteria domain.Criteria) ([]PostingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	js, err := s.seeker(seekerID)
	if err != nil {
		return nil, err
	}
	found, err := js.Search(criteria, s.allPostings())
	if err != nil {
		return nil, err
	}
	return postingInfos(found), nil
}

func (s *jobBoardService) Apply(ctx context.Context, seekerID string, postingID int64) (ApplicationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	js, err := s.seeker(seekerID)
	if err != nil {
		return ApplicationInfo{}, err
	}
	c, ok := s.postings[postingID]
	if !ok {
		return ApplicationInfo{}, fmt.Errorf("posting %d: %w", postingID, domain.ErrInvalidJobPosting)
	}
	p, err := c.Posting(postingID)
	if err != nil {
		return ApplicationInfo{}, err
	}
	app, err := js.Apply(p)
	if err != nil {
		s.logger.Warn("Application rejected", zap.String("seeker_id", seekerID), zap.Int64("posting_id", postingID), zap.Error(err))
		return ApplicationInfo{}, err
	}
	s.applications[app.ID] = app
	s.logger.Info("Application submitted", zap.String("application_id", app.ID), zap.Int64("posting_id", postingID))
	return applicationInfo(app), nil
}

func (s *jobBoardService) SeekerApplications(ctx context.Context, seekerID string) ([]ApplicationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	js, err := s.seeker(seekerID)
	if err != nil {
		return nil, err
	}
	return applicationInfos(js.Applications()), nil
}

func (s *jobBoardService) ViewApplications(ctx context.Context, companyID string, postingID int64) ([]ApplicationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.company(companyID)
	if err != nil {
		return nil, err
	}
	apps, err := c.ViewApplications(postingID)
	if err != nil {
		return nil, err
	}
	return applicationInfos(apps), nil
}

func (s *jobBoardService) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.Status) (ApplicationInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return ApplicationInfo{}, fmt.Errorf("application %s: %w", applicationID, domain.ErrApplicationNotFound)
	}
	if err := app.UpdateStatus(status); err != nil {
		return ApplicationInfo{}, err
	}
	s.logger.Info("Application status updated", zap.String("application_id", applicationID), zap.String("status", string(status)))
	return applicationInfo(app), nil
}
