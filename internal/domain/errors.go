package domain

import "errors"

var (
	ErrNotTracked          = errors.New("file is not tracked")
	ErrAlreadyProcessed    = errors.New("file already processed")
	ErrDuplicateObject     = errors.New("object already exists")
	ErrObjectNotFound      = errors.New("object not found")
	ErrRecordNotFound      = errors.New("record not found")
	ErrAlreadyApproved     = errors.New("record already approved")
	ErrRecordExists        = errors.New("record already exists for file")
	ErrRunInProgress       = errors.New("another run is in progress")
	ErrFileTooLarge        = errors.New("file exceeds size limit")
	ErrUnsupportedCategory = errors.New("unsupported category")
)
