package jobs

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type Company struct {
	ID          string
	Name        string
	ContactInfo string
	postings    []*Posting
}

func NewCompany(name, contactInfo string) (*Company, error) {
	n, err := validate.Check(validate.TagCompanyName, name)
	if err != nil {
		return nil, err
	}
	c, err := validate.Check(validate.TagContactInfo, contactInfo)
	if err != nil {
		return nil, err
	}
	return &Company{ID: util.GenerateUUID(), Name: n, ContactInfo: c}, nil
}

func (c *Company) AddPosting(p *Posting) {
	p.CompanyID = c.ID
	c.postings = append(c.postings, p)
}

func (c *Company) Postings() []*Posting {
	return slices.Clone(c.postings)
}

func (c *Company) Posting(id int64) (*Posting, error) {
	for _, p := range c.postings {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("posting %d: %w", id, ErrInvalidJobPosting)
}

func (c *Company) EditPosting(id int64, salary decimal.Decimal, title string) error {
	p, err := c.Posting(id)
	if err != nil {
		return err
	}
	t, err := validate.Check(validate.TagName, title)
	if err != nil {
		return err
	}
	s, err := validate.Positive(validate.TagSalary, salary)
	if err != nil {
		return err
	}
	p.Title, p.Salary = t, s
	return nil
}

// RemovePosting deletes the posting through the given operation variant.
func (c *Company) RemovePosting(op PostingOperation, id int64) error {
	remaining := op.DeletePosting(c.postings, id)
	if len(remaining) == len(c.postings) {
		return fmt.Errorf("posting %d: %w", id, ErrInvalidJobPosting)
	}
	c.postings = remaining
	return nil
}

func (c *Company) ViewApplications(postingID int64) ([]*Application, error) {
	p, err := c.Posting(postingID)
	if err != nil {
		return nil, fmt.Errorf("posting %d: %w", postingID, ErrApplicationNotFound)
	}
	return p.Applications(), nil
}
