//go:build unit

package sectioning_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/infra/resection"
	"course-sectioning/internal/infra/snapshot"
	"course-sectioning/internal/pkg/clock"
	"course-sectioning/internal/usecase/auditlog"
	"course-sectioning/internal/usecase/sectioning"
	"course-sectioning/internal/usecase/shared"
	sharedmock "course-sectioning/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func defaultOptions() sectioning.Options {
	return sectioning.Options{
		Enabled:             true,
		AllowWaitListing:    true,
		ReschedulingEnabled: true,
		Weights:             sectioning.Weights{SameSection: 1, SameConfig: 0.5, SelectionOrder: 0.1},
	}
}

type recordingSink struct {
	mu      sync.Mutex
	actions []*auditlog.Action
}

func (s *recordingSink) Record(_ context.Context, a *auditlog.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, a)
	return nil
}

type waitlistWrite struct {
	DemandID int64
	Waitlist bool
}

// harness wires a usecase to a real snapshot server and mocked persistence.
// acceptWrites records every write instead of asserting on it.
type harness struct {
	t    *testing.T
	ctrl *gomock.Controller
	srv  *snapshot.Server
	clk  *clock.MockClock
	sink *recordingSink

	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	classes       *sharedmock.MockClassEnrollmentRepository
	demands       *sharedmock.MockCourseDemandRepository
	spaces        *sharedmock.MockExpectedSpaceRepository
	notifications *sharedmock.MockNotificationRepository

	commits  int
	existing map[int64][]shared.ClassEnrollmentRow
	deleted  [][3]int64
	inserted []shared.ClassEnrollmentRow
	waitlist []waitlistWrite
	upserted map[int64][]domain.ExpectedSpace
	jobs     []map[string]any
}

func newHarness(t *testing.T, students ...*student.Student) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		t:             t,
		ctrl:          ctrl,
		srv:           snapshot.NewServer(nil),
		clk:           clock.NewMockClock(testNow),
		sink:          &recordingSink{},
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		classes:       sharedmock.NewMockClassEnrollmentRepository(ctrl),
		demands:       sharedmock.NewMockCourseDemandRepository(ctrl),
		spaces:        sharedmock.NewMockExpectedSpaceRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		existing:      make(map[int64][]shared.ClassEnrollmentRow),
		upserted:      make(map[int64][]domain.ExpectedSpace),
	}
	for _, st := range students {
		h.srv.PutStudent(st)
	}

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().ClassEnrollments().Return(h.classes).AnyTimes()
	h.tx.EXPECT().CourseDemands().Return(h.demands).AnyTimes()
	h.tx.EXPECT().ExpectedSpaces().Return(h.spaces).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			if err := fn(ctx, h.tx); err != nil {
				return err
			}
			h.commits++
			return nil
		}).AnyTimes()
	return h
}

func (h *harness) acceptWrites() *harness {
	h.classes.EXPECT().DeleteForRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, studentID, demandID, courseID int64) ([]shared.ClassEnrollmentRow, error) {
			h.deleted = append(h.deleted, [3]int64{studentID, demandID, courseID})
			rows := h.existing[studentID]
			delete(h.existing, studentID)
			return rows, nil
		}).AnyTimes()
	h.classes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, row shared.ClassEnrollmentRow) error {
			h.inserted = append(h.inserted, row)
			return nil
		}).AnyTimes()
	h.demands.EXPECT().SetWaitlist(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, demandID int64, waitlist bool, _ time.Time) error {
			h.waitlist = append(h.waitlist, waitlistWrite{DemandID: demandID, Waitlist: waitlist})
			return nil
		}).AnyTimes()
	h.spaces.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, offeringID int64, spaces []domain.ExpectedSpace, _ time.Time) error {
			h.upserted[offeringID] = spaces
			return nil
		}).AnyTimes()
	h.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), sectioning.NotificationKindEmail, sectioning.NotificationTopicEnrollment, gomock.Any(), testNow).
		DoAndReturn(func(_ context.Context, _ db.DBTX, _, _ string, payload []byte, _ time.Time) error {
			var job map[string]any
			if err := json.Unmarshal(payload, &job); err != nil {
				h.t.Errorf("invalid notification payload: %v", err)
			}
			h.jobs = append(h.jobs, job)
			return nil
		}).AnyTimes()
	return h
}

func (h *harness) usecase(opts sectioning.Options, resectioner sectioning.Resectioner, options ...sectioning.Option) *sectioning.Usecase {
	if resectioner == nil {
		resectioner = resection.NewFirstFit()
	}
	return sectioning.NewUsecase(opts, h.srv, h.uow, resectioner, h.sink, h.clk, h.clk, options...)
}

func (h *harness) request(studentID, requestID int64) *student.Request {
	h.t.Helper()
	st := h.srv.Student(studentID)
	if st == nil {
		h.t.Fatalf("student %d not loaded", studentID)
	}
	req, err := st.Request(requestID)
	if err != nil {
		h.t.Fatalf("request %d of student %d: %v", requestID, studentID, err)
	}
	return req
}
