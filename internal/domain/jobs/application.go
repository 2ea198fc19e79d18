package jobs

import (
	"fmt"
	"slices"
	"time"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

func (s Status) valid() bool {
	switch s {
	case StatusNew, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type StatusChange struct {
	Status Status    `json:"status"`
	Time   time.Time `json:"time"`
}

type Application struct {
	ID        string
	Posting   *Posting
	Applicant *JobSeeker
	Status    Status
	history   []StatusChange
}

func (a *Application) UpdateStatus(status Status) error {
	if !status.valid() {
		return fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}
	a.Status = status
	a.history = append(a.history, StatusChange{Status: status, Time: time.Now()})
	return nil
}

// History lists every status the application has held, oldest first.
func (a *Application) History() []StatusChange {
	return slices.Clone(a.history)
}
