package sectioning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/pkg/clock"
	"course-sectioning/internal/pkg/errs"
	"course-sectioning/internal/usecase/auditlog"
	"course-sectioning/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ReasonSectioningDisabled  = "sectioning is disabled"
	ReasonWaitListingDisabled = "wait-listing is disabled"
	ReasonOfferingLocked      = "offering is locked"
	ReasonOfferingNotFound    = "offering not found"
	ReasonOfferingNoWaitList  = "offering does not allow wait-listing"
)

type CheckParams struct {
	OfferingIDs    []int64
	SkipStudentIDs []int64
	// StudentIDs restricts the pass to these students when not empty.
	StudentIDs []int64
	// Actor is the external id recorded as changed_by; empty means the engine itself.
	Actor string
}

type Result struct {
	// Succeeded is false when at least one offering failed.
	Succeeded bool             `json:"succeeded"`
	Skipped   string           `json:"skipped,omitempty"`
	Offerings []OfferingResult `json:"offerings"`
}

type OfferingResult struct {
	OfferingID int64             `json:"offering_id"`
	Skipped    bool              `json:"skipped"`
	Reason     string            `json:"reason,omitempty"`
	Error      string            `json:"error,omitempty"`
	Candidates []CandidateResult `json:"candidates"`
}

type CandidateResult struct {
	ActionID   uuid.UUID           `json:"action_id"`
	StudentID  int64               `json:"student_id"`
	RequestID  int64               `json:"request_id"`
	Result     auditlog.Result     `json:"result"`
	Previous   *student.Enrollment `json:"previous,omitempty"`
	Enrollment *student.Enrollment `json:"enrollment,omitempty"`
}

type Usecase struct {
	opts        Options
	server      Server
	uow         shared.UnitOfWork
	resectioner Resectioner
	provider    EnrollmentProvider
	priority    StudentPriority
	sink        auditlog.Sink
	clock       clock.Clock
	cpu         clock.CPUClock
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithProvider(p EnrollmentProvider) Option {
	return func(u *Usecase) { u.provider = p }
}

func WithPriority(p StudentPriority) Option {
	return func(u *Usecase) { u.priority = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *Usecase) { u.logger = l }
}

func NewUsecase(
	opts Options,
	server Server,
	uow shared.UnitOfWork,
	resectioner Resectioner,
	sink auditlog.Sink,
	clk clock.Clock,
	cpu clock.CPUClock,
	options ...Option,
) *Usecase {
	u := &Usecase{
		opts:        opts,
		server:      server,
		uow:         uow,
		resectioner: resectioner,
		priority:    DefaultPriority{},
		sink:        sink,
		clock:       clk,
		cpu:         cpu,
		logger:      slog.Default(),
	}
	for _, o := range options {
		o(u)
	}
	return u
}

// CheckOfferings runs one resectioning pass over each offering in turn. A
// failure in one offering is recorded and does not stop the others.
func (u *Usecase) CheckOfferings(ctx context.Context, p CheckParams) (*Result, error) {
	res := &Result{Succeeded: true, Offerings: []OfferingResult{}}
	if !u.opts.Enabled {
		res.Skipped = ReasonSectioningDisabled
		return res, nil
	}
	if !u.opts.AllowWaitListing {
		res.Skipped = ReasonWaitListingDisabled
		return res, nil
	}

	filter := newQueueFilter(p.SkipStudentIDs, p.StudentIDs)
	for _, id := range p.OfferingIDs {
		out, err := u.checkOffering(ctx, id, filter, p.Actor)
		if err != nil {
			res.Succeeded = false
			out.Error = err.Error()
			u.logger.Error("offering check failed", "offering_id", id, "error", err)
			u.recordOfferingFailure(ctx, id, err)
		}
		res.Offerings = append(res.Offerings, out)
	}
	return res, nil
}

func (u *Usecase) checkOffering(ctx context.Context, offeringID int64, filter queueFilter, actor string) (out OfferingResult, err error) {
	out = OfferingResult{OfferingID: offeringID, Candidates: []CandidateResult{}}

	if u.server.IsOfferingLocked(offeringID) {
		u.logger.Info("skipping locked offering", "offering_id", offeringID)
		out.Skipped, out.Reason = true, ReasonOfferingLocked
		return out, nil
	}
	off := u.server.Offering(offeringID)
	if off == nil {
		out.Skipped, out.Reason = true, ReasonOfferingNotFound
		return out, nil
	}
	if !off.IsWaitList() {
		out.Skipped, out.Reason = true, ReasonOfferingNoWaitList
		return out, nil
	}

	lock, ok := u.server.LockOffering(offeringID, fmt.Sprintf("%s:%s", auditlog.OperationCheckOffering, uuid.NewString()))
	if !ok {
		u.logger.Info("offering locked by another holder", "offering_id", offeringID)
		out.Skipped, out.Reason = true, ReasonOfferingLocked
		return out, nil
	}
	defer lock.Release()
	defer func() {
		if r := recover(); r != nil {
			err = errs.Mark(errs.Newf("panic while checking offering %d: %v", offeringID, r), errs.ErrOfferingCheckFailed)
		}
	}()

	ts := u.clock.Now()
	checker := domain.NewChecker(u.opts.checkOptions(), u.server, u.clock.Now)
	queue := u.buildQueue(off, filter, checker)
	u.logger.Debug("checking offering", "offering_id", offeringID, "offering", off.Name(), "candidates", len(queue))

	for i, c := range queue {
		out.Candidates = append(out.Candidates, u.resection(ctx, c, checker, i, len(queue), ts, actor))
	}
	return out, nil
}

func (u *Usecase) resection(ctx context.Context, c *Candidate, checker *domain.Checker, index, total int, ts time.Time, actor string) CandidateResult {
	a := c.Action
	a.AddOption("Index", fmt.Sprintf("%d of %d", index+1, total))
	cpuStart := u.cpu.CPUTime()

	result := u.attempt(ctx, c, checker, ts, actor)

	a.Finish(result, u.cpu.CPUTime()-cpuStart, u.clock.Now())
	u.record(ctx, a)

	return CandidateResult{
		ActionID:   a.ID,
		StudentID:  c.Student.ID,
		RequestID:  c.Request.ID,
		Result:     result,
		Previous:   c.Previous,
		Enrollment: c.Request.Enrollment(),
	}
}

func (u *Usecase) attempt(ctx context.Context, c *Candidate, checker *domain.Checker, ts time.Time, actor string) auditlog.Result {
	a := c.Action
	previous := c.Request.Enrollment()
	u.logger.Debug("resectioning", "student_id", c.Student.ID, "request", c.Request.String(), "previous", previous.String())

	enrollment, err := u.compute(ctx, c, checker)
	if err != nil {
		return u.fail(c, err, "resectioning failed")
	}
	a.AddEnrollment(auditlog.EnrollmentComputed, enrollment)

	if u.provider != nil {
		enrollment, err = u.callProvider(ctx, c, enrollment)
		if err != nil {
			return u.fail(c, err, "enrollment provider failed")
		}
	}

	if enrollment != nil {
		enrollment = enrollment.Clone()
		enrollment.StudentID = c.Student.ID
		enrollment.RequestID = c.Request.ID
		enrollment.Timestamp = ts
	}
	u.logger.Debug("new enrollment", "student_id", c.Student.ID, "enrollment", enrollment.String())

	// The provider may return anything; it gets the same check as the oracle.
	if u.provider != nil && enrollment != nil &&
		(enrollment.OfferingID != c.Offering.ID() || !checker.Check(c.Offering, c.Student, enrollment, c.Previous)) {
		a.AddMessage(auditlog.LevelWarn, u.clock.Now(), "provided enrollment %s is not valid", enrollment)
		return u.fail(c, errs.Mark(errs.Newf("provided enrollment %s is not valid", enrollment), errs.ErrProviderFailed), "enrollment provider failed")
	}

	updated := u.server.Assign(c.Request, enrollment)
	if updated == nil {
		a.AddMessage(auditlog.LevelError, u.clock.Now(), "failed to assign %s to %s", enrollment, c.Request)
		u.logger.Error("assignment rejected", "student_id", c.Student.ID, "request_id", c.Request.ID)
		return auditlog.ResultFailure
	}
	c.Request = updated

	if previous.Equal(enrollment) {
		return auditlog.ResultFalse
	}

	if err := u.persist(ctx, c, previous, enrollment, ts, actor); err != nil {
		if restored := u.server.Assign(c.Request, previous); restored != nil {
			c.Request = restored
		} else {
			u.logger.Error("failed to restore previous enrollment", "student_id", c.Student.ID, "request_id", c.Request.ID)
		}
		return u.fail(c, errs.Mark(err, errs.ErrDatabaseOperationFailed), "failed to persist enrollment")
	}
	u.afterCommit(c, enrollment)
	a.AddEnrollment(auditlog.EnrollmentStored, enrollment)

	if enrollment == nil {
		return auditlog.ResultNull
	}
	return auditlog.ResultSuccess
}

// compute asks the scoring oracle for a proposal. A proposal that does not
// pass the checker is discarded.
func (u *Usecase) compute(ctx context.Context, c *Candidate, checker *domain.Checker) (e *student.Enrollment, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, errs.Mark(errs.Newf("resectioner panicked: %v", r), errs.ErrResectionFailed)
		}
	}()

	e, err = u.resectioner.Resection(ctx, ResectionInput{
		Offering:    c.Offering,
		Student:     c.Student,
		Request:     c.Request,
		Enrollments: u.server.Enrollments(c.Offering.ID()),
		Checker:     checker,
		Weights:     u.opts.Weights,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResectionFailed)
	}
	if e == nil {
		return nil, nil
	}

	e = e.Clone()
	e.StudentID = c.Student.ID
	e.RequestID = c.Request.ID
	if e.OfferingID != c.Offering.ID() || !checker.Check(c.Offering, c.Student, e, c.Previous) {
		c.Action.AddEnrollment(auditlog.EnrollmentComputed, e)
		c.Action.AddMessage(auditlog.LevelWarn, u.clock.Now(), "computed enrollment %s is not valid", e)
		return nil, nil
	}
	return e, nil
}

func (u *Usecase) callProvider(ctx context.Context, c *Candidate, proposed *student.Enrollment) (e *student.Enrollment, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, errs.Mark(errs.Newf("enrollment provider panicked: %v", r), errs.ErrProviderFailed)
		}
	}()

	e, err = u.provider.Resection(ctx, u.server, c, proposed)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderFailed)
	}
	return e, nil
}

func (u *Usecase) fail(c *Candidate, err error, msg string) auditlog.Result {
	c.Action.AddMessage(auditlog.LevelFatal, u.clock.Now(), "%s: %v", msg, err)
	u.logger.Error(msg,
		"student_id", c.Student.ID,
		"request_id", c.Request.ID,
		"offering_id", c.Offering.ID(),
		"error", err)
	return auditlog.ResultFailure
}

func (u *Usecase) record(ctx context.Context, a *auditlog.Action) {
	if u.sink == nil {
		return
	}
	if err := u.sink.Record(ctx, a); err != nil {
		u.logger.Warn("failed to record sectioning action", "action_id", a.ID, "error", err)
	}
}

func (u *Usecase) recordOfferingFailure(ctx context.Context, offeringID int64, err error) {
	now := u.clock.Now()
	name := ""
	if off := u.server.Offering(offeringID); off != nil {
		name = off.Name()
	}
	a := auditlog.NewAction(auditlog.OperationCheckOffering, now).WithOffering(offeringID, name)
	a.AddMessage(auditlog.LevelFatal, now, "%v", err)
	a.Finish(auditlog.ResultFailure, 0, now)
	u.record(ctx, a)
}
