package sectioning

import (
	"context"

	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
)

const checkNeededOwner = "check-needed"

// IsCheckNeeded decides whether replacing old with next (nil when the student
// dropped the course) is worth a resectioning pass over old's offering.
func (u *Usecase) IsCheckNeeded(ctx context.Context, old, next *student.Enrollment) (domain.TriggerDecision, error) {
	if old == nil {
		return domain.TriggerDecision{Reason: "no previous enrollment"}, nil
	}
	if !u.opts.Enabled {
		return domain.TriggerDecision{Reason: ReasonSectioningDisabled}, nil
	}
	if !u.opts.AllowWaitListing {
		return domain.TriggerDecision{Reason: ReasonWaitListingDisabled}, nil
	}
	off := u.server.Offering(old.OfferingID)
	if off == nil {
		return domain.TriggerDecision{Reason: ReasonOfferingNotFound}, nil
	}
	if !off.IsWaitList() {
		return domain.TriggerDecision{Reason: ReasonOfferingNoWaitList}, nil
	}

	lock, err := u.server.LockShared(ctx, off.ID(), checkNeededOwner)
	if err != nil {
		return domain.TriggerDecision{}, err
	}
	defer lock.Release()

	return domain.IsCheckNeeded(off, u.server.Enrollments(off.ID()), old, next, u.clock.Now()), nil
}

// IsCheckNeededForStudent looks up the student's current enrollment for the
// same request and compares it with old.
func (u *Usecase) IsCheckNeededForStudent(ctx context.Context, old *student.Enrollment) (domain.TriggerDecision, error) {
	if old == nil {
		return domain.TriggerDecision{Reason: "no previous enrollment"}, nil
	}
	var next *student.Enrollment
	if st := u.server.Student(old.StudentID); st != nil {
		if req, err := st.Request(old.RequestID); err == nil {
			next = req.Enrollment()
		} else {
			next = st.EnrollmentFor(old.OfferingID)
		}
		if next != nil && next.OfferingID != old.OfferingID {
			next = nil
		}
	}
	return u.IsCheckNeeded(ctx, old, next)
}
