package jobs

import "errors"

var (
	ErrInvalidJobPosting    = errors.New("invalid job posting")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this posting")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrSeekerNotFound       = errors.New("job seeker not found")
)
