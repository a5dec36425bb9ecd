package sectioning

import (
	"context"
	"encoding/json"
	"time"

	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/pkg/errs"
	"course-sectioning/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	NotificationKindEmail         = "email"
	NotificationTopicEnrollment   = "enrollment_changed"
	notificationSourceCheckOffers = "check-offering"
)

type enrollmentChangedPayload struct {
	ActionID   uuid.UUID           `json:"action_id"`
	Source     string              `json:"source"`
	StudentID  int64               `json:"student_id"`
	ExternalID string              `json:"external_id"`
	RequestID  int64               `json:"request_id"`
	OfferingID int64               `json:"offering_id"`
	Old        *student.Enrollment `json:"old"`
	New        *student.Enrollment `json:"new"`
}

// waitlistChange returns the wait-list flag the course demand must end up with
// after the assignment, and whether it differs from the current one. An
// enrolled request leaves the wait-list; an unassigned primary request joins it.
func waitlistChange(req *student.Request, enrollment *student.Enrollment) (value, changed bool) {
	switch {
	case enrollment != nil && req.Waitlist:
		return false, true
	case enrollment == nil && !req.Alternative && !req.Waitlist:
		return true, true
	default:
		return req.Waitlist, false
	}
}

// persist writes the new enrollment in one transaction: class enrollment rows,
// the course demand wait-list flag, expected spaces and the notification job.
func (u *Usecase) persist(ctx context.Context, c *Candidate, previous, enrollment *student.Enrollment, ts time.Time, actor string) error {
	st, req, off := c.Student, c.Request, c.Offering

	changedBy := WaitlistChangedBy
	if actor != "" {
		changedBy = actor
	}
	var previousCourseID int64
	if previous != nil {
		previousCourseID = previous.CourseID
	}

	payload, err := json.Marshal(enrollmentChangedPayload{
		ActionID:   c.Action.ID,
		Source:     notificationSourceCheckOffers,
		StudentID:  st.ID,
		ExternalID: st.ExternalID,
		RequestID:  req.ID,
		OfferingID: off.ID(),
		Old:        previous,
		New:        enrollment,
	})
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.ClassEnrollments().DeleteForRequest(ctx, tx.DB(), st.ID, req.ID, previousCourseID)
		if err != nil {
			return err
		}

		byClass := make(map[int64]shared.ClassEnrollmentRow, len(removed))
		var approvedBy *string
		var approvedAt *time.Time
		for _, r := range removed {
			byClass[r.ClassID] = r
			if approvedBy == nil && r.ApprovedBy != nil {
				approvedBy, approvedAt = r.ApprovedBy, r.ApprovedAt
			}
		}

		if enrollment != nil {
			for _, sectionID := range enrollment.SectionIDs {
				row := shared.ClassEnrollmentRow{
					StudentID:      st.ID,
					ClassID:        sectionID,
					CourseID:       enrollment.CourseID,
					CourseDemandID: req.ID,
					ChangedBy:      changedBy,
					EnrolledAt:     ts,
					ApprovedBy:     approvedBy,
					ApprovedAt:     approvedAt,
				}
				if old, ok := byClass[sectionID]; ok {
					if old.ChangedBy != "" {
						row.ChangedBy = old.ChangedBy
					}
					row.EnrolledAt = old.EnrolledAt
				}
				if err := tx.ClassEnrollments().Insert(ctx, tx.DB(), row); err != nil {
					return err
				}
			}
		}

		if value, changed := waitlistChange(req, enrollment); changed {
			if err := tx.CourseDemands().SetWaitlist(ctx, tx.DB(), req.ID, value, ts); err != nil {
				return err
			}
		}

		spaces := domain.ComputeExpectedSpaces(off, u.server.Enrollments(off.ID()))
		if err := tx.ExpectedSpaces().Upsert(ctx, tx.DB(), off.ID(), spaces, ts); err != nil {
			return err
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindEmail, NotificationTopicEnrollment, payload, ts)
	})
}

// afterCommit aligns the in-memory snapshot with what was just committed.
func (u *Usecase) afterCommit(c *Candidate, enrollment *student.Enrollment) {
	if value, changed := waitlistChange(c.Request, enrollment); changed {
		if updated := u.server.Waitlist(c.Request, value); updated != nil {
			c.Request = updated
		}
	}
	u.server.PersistExpectedSpaces(c.Offering.ID())
}
