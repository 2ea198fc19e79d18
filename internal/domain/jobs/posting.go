package jobs

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type JobType string

const (
	FullTime JobType = "FullTime"
	PartTime JobType = "PartTime"
)

type Posting struct {
	ID           int64
	Title        string
	Salary       decimal.Decimal
	Type         JobType
	WorkHours    int
	CompanyID    string
	applications []*Application
}

func (p *Posting) Applications() []*Application {
	return slices.Clone(p.applications)
}

// PostingOperation is implemented by FullTimeJob and PartTimeJob. Both draw
// ids from the same sequence, so ids are unique across variants.
type PostingOperation interface {
	Type() JobType
	CreatePosting(title string, salary decimal.Decimal) (*Posting, error)
	DeletePosting(postings []*Posting, id int64) []*Posting
	ListPostings(postings []*Posting) []*Posting
	isPostingOperation()
}

func newPosting(seq *util.Sequence, title string, salary decimal.Decimal, jobType JobType, hours int) (*Posting, error) {
	t, err := validate.Check(validate.TagName, title)
	if err != nil {
		return nil, err
	}
	s, err := validate.Positive(validate.TagSalary, salary)
	if err != nil {
		return nil, err
	}
	return &Posting{
		ID:        seq.Next(),
		Title:     t,
		Salary:    s,
		Type:      jobType,
		WorkHours: hours,
	}, nil
}

func deletePosting(postings []*Posting, id int64) []*Posting {
	return slices.DeleteFunc(slices.Clone(postings), func(p *Posting) bool { return p.ID == id })
}

func listPostings(postings []*Posting, jobType JobType) []*Posting {
	var out []*Posting
	for _, p := range postings {
		if p.Type == jobType {
			out = append(out, p)
		}
	}
	return out
}

type FullTimeJob struct {
	seq *util.Sequence
}

func NewFullTimeJob(seq *util.Sequence) *FullTimeJob {
	return &FullTimeJob{seq: seq}
}

func (j *FullTimeJob) isPostingOperation() {}

func (j *FullTimeJob) Type() JobType { return FullTime }

func (j *FullTimeJob) CreatePosting(title string, salary decimal.Decimal) (*Posting, error) {
	return newPosting(j.seq, title, salary, FullTime, 0)
}

func (j *FullTimeJob) DeletePosting(postings []*Posting, id int64) []*Posting {
	return deletePosting(postings, id)
}

func (j *FullTimeJob) ListPostings(postings []*Posting) []*Posting {
	return listPostings(postings, FullTime)
}

type PartTimeJob struct {
	seq       *util.Sequence
	WorkHours int
}

func NewPartTimeJob(seq *util.Sequence, workHours int) (*PartTimeJob, error) {
	if workHours <= 0 {
		return nil, fmt.Errorf("%d work hours: %w", workHours, ErrInvalidJobPosting)
	}
	return &PartTimeJob{seq: seq, WorkHours: workHours}, nil
}

func (j *PartTimeJob) isPostingOperation() {}

func (j *PartTimeJob) Type() JobType { return PartTime }

func (j *PartTimeJob) CreatePosting(title string, salary decimal.Decimal) (*Posting, error) {
	return newPosting(j.seq, title, salary, PartTime, j.WorkHours)
}

func (j *PartTimeJob) DeletePosting(postings []*Posting, id int64) []*Posting {
	return deletePosting(postings, id)
}

func (j *PartTimeJob) ListPostings(postings []*Posting) []*Posting {
	return listPostings(postings, PartTime)
}
