package job

import "errors"

var (
	ErrJobNotFound = errors.New("job not found")
	ErrFetchFailed = errors.New("failed to fetch jobs")
)
