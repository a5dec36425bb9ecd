package sectioning

import (
	"context"

	"course-sectioning/internal/domain/offering"
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/sectioning/ports_mock.go -package=sectioningmock

// Lock is an acquired offering lock. Release is safe to call more than once;
// only the first call has an effect.
type Lock interface {
	Release()
}

// EnrollmentsView is a point-in-time view of one offering's enrollments.
// Requests lists every course request enrolled in or wait-listed for the offering.
type EnrollmentsView interface {
	domain.EnrollmentCounter
	Requests() []*student.Request
}

// Server is the in-memory domain snapshot the engine reads and mutates.
// Mutations happen only through Assign and Waitlist.
type Server interface {
	IsOfferingLocked(offeringID int64) bool
	// LockOffering never waits: it returns false when the offering is held.
	LockOffering(offeringID int64, owner string) (Lock, bool)
	LockShared(ctx context.Context, offeringID int64, owner string) (Lock, error)

	Offering(offeringID int64) *offering.Offering
	Student(studentID int64) *student.Student
	Enrollments(offeringID int64) EnrollmentsView

	// Assign replaces the request's enrollment and returns the updated request,
	// or nil when the assignment was rejected.
	Assign(req *student.Request, enrollment *student.Enrollment) *student.Request
	Waitlist(req *student.Request, waitlist bool) *student.Request
	PersistExpectedSpaces(offeringID int64)
}

// ResectionInput is everything the scoring oracle may look at.
type ResectionInput struct {
	Offering    *offering.Offering
	Student     *student.Student
	Request     *student.Request
	Enrollments domain.EnrollmentCounter
	Checker     *domain.Checker
	Weights     Weights
}

// Resectioner proposes a new enrollment for a candidate, or nil when no
// acceptable assignment exists.
type Resectioner interface {
	Resection(ctx context.Context, in ResectionInput) (*student.Enrollment, error)
}

// EnrollmentProvider is an optional external hook that may replace the
// proposed enrollment.
type EnrollmentProvider interface {
	Resection(ctx context.Context, server Server, c *Candidate, proposed *student.Enrollment) (*student.Enrollment, error)
}

// StudentPriority scores a request; lower scores are processed first.
type StudentPriority interface {
	Score(st *student.Student, req *student.Request) int64
}

// Engine is the entry point used by the HTTP and CLI adapters.
type Engine interface {
	CheckOfferings(ctx context.Context, p CheckParams) (*Result, error)
	IsCheckNeeded(ctx context.Context, old, next *student.Enrollment) (domain.TriggerDecision, error)
	IsCheckNeededForStudent(ctx context.Context, old *student.Enrollment) (domain.TriggerDecision, error)
}

var _ Engine = (*Usecase)(nil)
