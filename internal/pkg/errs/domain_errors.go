package errs

import "errors"

// Domain-specific sentinel errors shared by usecase and handler layers
var (
	// Precondition errors
	ErrSectioningDisabled = errors.New("student sectioning is not enabled")
	ErrWaitListDisabled   = errors.New("wait-listing is not allowed")

	// Lookup errors
	ErrOfferingNotFound = errors.New("offering not found")
	ErrStudentNotFound  = errors.New("student not found")

	// Resectioning errors
	ErrResectionFailed     = errors.New("resectioning failed")
	ErrProviderFailed      = errors.New("enrollment provider failed")
	ErrAssignmentFailed    = errors.New("assignment failed")
	ErrOfferingCheckFailed = errors.New("offering check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
