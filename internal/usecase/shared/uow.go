package shared

import (
	"context"
	"time"

	"course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/infra/db"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations, retried per DB_TX_MAX_RETRIES
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	ClassEnrollments() ClassEnrollmentRepository
	CourseDemands() CourseDemandRepository
	ExpectedSpaces() ExpectedSpaceRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

// ClassEnrollmentRow is one persisted student/class link.
type ClassEnrollmentRow struct {
	StudentID      int64
	ClassID        int64
	CourseID       int64
	CourseDemandID int64
	ChangedBy      string
	EnrolledAt     time.Time
	ApprovedBy     *string
	ApprovedAt     *time.Time
}

type ExpectedSpaceRow struct {
	OfferingID int64
	SectionID  int64
	Available  int
	UpdatedAt  time.Time
}

type ClassEnrollmentRepository interface {
	// DeleteForRequest removes the rows tied to the course demand or to the
	// given course and returns them.
	DeleteForRequest(ctx context.Context, tx db.DBTX, studentID, courseDemandID, courseID int64) ([]ClassEnrollmentRow, error)
	Insert(ctx context.Context, tx db.DBTX, row ClassEnrollmentRow) error
}

type CourseDemandRepository interface {
	SetWaitlist(ctx context.Context, tx db.DBTX, courseDemandID int64, waitlist bool, at time.Time) error
}

type ExpectedSpaceRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, offeringID int64, spaces []sectioning.ExpectedSpace, at time.Time) error
	ListByOffering(ctx context.Context, tx db.DBTX, offeringID int64) ([]ExpectedSpaceRow, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
