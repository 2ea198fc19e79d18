package jobs

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type JobSeeker struct {
	ID           string
	Name         string
	ContactInfo  string
	Resume       string
	applications []*Application
}

func NewJobSeeker(name, contactInfo, resume string) (*JobSeeker, error) {
	n, err := validate.Check(validate.TagName, name)
	if err != nil {
		return nil, err
	}
	c, err := validate.Check(validate.TagContactInfo, contactInfo)
	if err != nil {
		return nil, err
	}
	return &JobSeeker{ID: util.GenerateUUID(), Name: n, ContactInfo: c, Resume: resume}, nil
}

// Criteria matches postings by exact title and type, ignoring case, with a
// salary floor.
type Criteria struct {
	Title     string
	Type      JobType
	MinSalary decimal.Decimal
}

func (s *JobSeeker) Search(criteria Criteria, postings []*Posting) ([]*Posting, error) {
	var found []*Posting
	for _, p := range postings {
		if strings.EqualFold(criteria.Title, p.Title) &&
			strings.EqualFold(string(criteria.Type), string(p.Type)) &&
			criteria.MinSalary.LessThanOrEqual(p.Salary) {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("search %q: %w", criteria.Title, ErrApplicationNotFound)
	}
	return found, nil
}

func (s *JobSeeker) Apply(p *Posting) (*Application, error) {
	if p == nil {
		return nil, ErrInvalidJobPosting
	}
	for _, a := range s.applications {
		if a.Posting.ID == p.ID {
			return nil, fmt.Errorf("posting %d: %w", p.ID, ErrDuplicateApplication)
		}
	}
	app := &Application{
		ID:        util.GenerateUUID(),
		Posting:   p,
		Applicant: s,
		Status:    StatusNew,
		history:   []StatusChange{{Status: StatusNew, Time: time.Now()}},
	}
	s.applications = append(s.applications, app)
	p.applications = append(p.applications, app)
	return app, nil
}

func (s *JobSeeker) Applications() []*Application {
	return slices.Clone(s.applications)
}
