package sectioning

import (
	"course-sectioning/internal/domain/offering"
	"course-sectioning/internal/domain/student"
)

// IsWaitListed reports whether an unassigned course request legitimately waits
// for a seat in the offering: it carries the wait-list flag and lists a course
// of the offering whose override was not rejected.
func IsWaitListed(st *student.Student, req *student.Request, off *offering.Offering) bool {
	if st == nil || off == nil || !req.IsCourseRequest() || !off.IsWaitList() {
		return false
	}
	if !req.Waitlist || req.Enrollment() != nil {
		return false
	}
	choice, ok := req.ChoiceFor(off.ID())
	if !ok {
		return false
	}
	if choice.Override == student.OverrideRejected {
		return false
	}
	return off.Course(choice.CourseID) != nil || len(off.Courses()) == 0
}
