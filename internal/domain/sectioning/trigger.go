package sectioning

import (
	"fmt"
	"time"

	"course-sectioning/internal/domain/offering"
	"course-sectioning/internal/domain/student"
)

// EnrollmentCounter exposes the live enrolled counts of one offering.
type EnrollmentCounter interface {
	CountForSection(sectionID int64) int
	CountForConfig(configID int64) int
	CountForCourse(courseID int64) int
}

// TriggerDecision explains why a check was or was not requested.
type TriggerDecision struct {
	Needed bool
	Reason string
}

// IsCheckNeeded decides whether the move from old to next (nil when the
// student dropped) freed a seat worth resectioning the offering for. A seat is
// only signalled when the limit minus the current count is exactly one, the
// moment a full section, config or course becomes available.
func IsCheckNeeded(off *offering.Offering, counts EnrollmentCounter, old, next *student.Enrollment, now time.Time) TriggerDecision {
	if old == nil || off == nil || !off.IsWaitList() {
		return TriggerDecision{}
	}

	vacated := old.VacatedSections(next)
	if len(vacated) == 0 {
		return TriggerDecision{Reason: "no section dropped"}
	}

	if off.HasActiveReservation(now) {
		return TriggerDecision{Needed: true, Reason: "there are reservations"}
	}

	for _, id := range vacated {
		s := off.Section(id)
		if s != nil && s.HasLimit() && s.Limit-counts.CountForSection(id) == 1 {
			return TriggerDecision{Needed: true, Reason: fmt.Sprintf("section %s became available", s)}
		}
	}

	if next == nil || next.ConfigID != old.ConfigID {
		if cfg := off.Config(old.ConfigID); cfg != nil && cfg.Limit >= 0 && cfg.Limit-counts.CountForConfig(cfg.ID) == 1 {
			return TriggerDecision{Needed: true, Reason: fmt.Sprintf("config %s became available", cfg.Name)}
		}
	}

	if next == nil || next.CourseID != old.CourseID {
		if c := off.Course(old.CourseID); c != nil && c.Limit >= 0 && c.Limit-counts.CountForCourse(c.ID) == 1 {
			return TriggerDecision{Needed: true, Reason: fmt.Sprintf("course %s became available", c.Name)}
		}
	}

	return TriggerDecision{Reason: "no seat transitioned to available"}
}
