package jobs

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestPostingIDsAreMonotonicAcrossVariants(t *testing.T) {
	var seq util.Sequence
	full := NewFullTimeJob(&seq)
	part, err := NewPartTimeJob(&seq, 20)
	require.NoError(t, err)

	var last int64
	for i := 0; i < 5; i++ {
		op := PostingOperation(full)
		if i%2 == 1 {
			op = part
		}
		p, err := op.CreatePosting("Engineer", dec(1000))
		require.NoError(t, err)
		assert.Greater(t, p.ID, last)
		last = p.ID
	}
}

func TestCreatePostingVariants(t *testing.T) {
	var seq util.Sequence
	full := NewFullTimeJob(&seq)
	part, err := NewPartTimeJob(&seq, 15)
	require.NoError(t, err)

	fp, err := full.CreatePosting("Engineer", dec(5000))
	require.NoError(t, err)
	assert.Equal(t, FullTime, fp.Type)
	assert.Zero(t, fp.WorkHours)

	pp, err := part.CreatePosting("Barista", dec(900))
	require.NoError(t, err)
	assert.Equal(t, PartTime, pp.Type)
	assert.Equal(t, 15, pp.WorkHours)

	_, err = full.CreatePosting("", dec(1))
	assert.ErrorIs(t, err, validate.ErrValidation)
	_, err = full.CreatePosting("Engineer", dec(0))
	assert.ErrorIs(t, err, validate.ErrValidation)

	_, err = NewPartTimeJob(&seq, 0)
	assert.ErrorIs(t, err, ErrInvalidJobPosting)

	all := []*Posting{fp, pp}
	assert.Equal(t, []*Posting{fp}, full.ListPostings(all))
	assert.Equal(t, []*Posting{pp}, part.ListPostings(all))
	assert.Equal(t, []*Posting{pp}, full.DeletePosting(all, fp.ID))
	assert.Len(t, all, 2)
}

func TestCompanyPostingLifecycle(t *testing.T) {
	var seq util.Sequence
	op := NewFullTimeJob(&seq)
	co, err := NewCompany("Acme", "jobs@acme.com")
	require.NoError(t, err)

	p, err := op.CreatePosting("Engineer", dec(5000))
	require.NoError(t, err)
	co.AddPosting(p)
	assert.Equal(t, co.ID, p.CompanyID)

	require.NoError(t, co.EditPosting(p.ID, dec(6000), "Senior Engineer"))
	assert.Equal(t, "Senior Engineer", p.Title)
	assert.True(t, p.Salary.Equal(dec(6000)))

	assert.ErrorIs(t, co.EditPosting(999, dec(1), "x"), ErrInvalidJobPosting)
	assert.ErrorIs(t, co.EditPosting(p.ID, dec(-1), "x"), validate.ErrValidation)

	require.NoError(t, co.RemovePosting(op, p.ID))
	assert.Empty(t, co.Postings())
	assert.ErrorIs(t, co.RemovePosting(op, p.ID), ErrInvalidJobPosting)
}

func TestCompanyNameMustStartWithLetter(t *testing.T) {
	_, err := NewCompany("3M", "info@3m.com")
	assert.ErrorIs(t, err, validate.ErrValidation)
}

func TestSearchAndApply(t *testing.T) {
	var seq util.Sequence
	full := NewFullTimeJob(&seq)
	co, _ := NewCompany("Acme", "jobs@acme.com")
	eng, _ := full.CreatePosting("Engineer", dec(5000))
	cheap, _ := full.CreatePosting("Engineer", dec(1000))
	co.AddPosting(eng)
	co.AddPosting(cheap)

	seeker, err := NewJobSeeker("Anna Smith", "anna@example.com", "10 years of Go")
	require.NoError(t, err)

	found, err := seeker.Search(Criteria{Title: "engineer", Type: "fulltime", MinSalary: dec(2000)}, co.Postings())
	require.NoError(t, err)
	assert.Equal(t, []*Posting{eng}, found)

	_, err = seeker.Search(Criteria{Title: "Designer", Type: FullTime}, co.Postings())
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	app, err := seeker.Apply(eng)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, app.Status)

	_, err = seeker.Apply(eng)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	_, err = seeker.Apply(nil)
	assert.ErrorIs(t, err, ErrInvalidJobPosting)

	apps, err := co.ViewApplications(eng.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Same(t, seeker, apps[0].Applicant)

	_, err = co.ViewApplications(12345)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
	assert.Len(t, seeker.Applications(), 1)
}

func TestApplicationStatus(t *testing.T) {
	var seq util.Sequence
	p, _ := NewFullTimeJob(&seq).CreatePosting("Engineer", dec(5000))
	seeker, _ := NewJobSeeker("Anna", "anna@example.com", "")
	app, err := seeker.Apply(p)
	require.NoError(t, err)

	require.NoError(t, app.UpdateStatus(StatusInterview))
	require.NoError(t, app.UpdateStatus(StatusAccepted))
	assert.ErrorIs(t, app.UpdateStatus("hired?"), ErrInvalidStatus)

	assert.Equal(t, StatusAccepted, app.Status)
	history := app.History()
	require.Len(t, history, 3)
	assert.Equal(t, StatusNew, history[0].Status)
	assert.Equal(t, StatusAccepted, history[2].Status)
}
