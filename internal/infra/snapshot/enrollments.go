package snapshot

import "course-sectioning/internal/domain/student"

type enrollments struct {
	requests  []*student.Request
	bySection map[int64]int
	byConfig  map[int64]int
	byCourse  map[int64]int
}

func newEnrollments() *enrollments {
	return &enrollments{
		bySection: make(map[int64]int),
		byConfig:  make(map[int64]int),
		byCourse:  make(map[int64]int),
	}
}

func (v *enrollments) add(r *student.Request, e *student.Enrollment) {
	v.requests = append(v.requests, r)
	if e == nil {
		return
	}
	for _, id := range e.SectionIDs {
		v.bySection[id]++
	}
	v.byConfig[e.ConfigID]++
	v.byCourse[e.CourseID]++
}

func (v *enrollments) Requests() []*student.Request     { return v.requests }
func (v *enrollments) CountForSection(sectionID int64) int { return v.bySection[sectionID] }
func (v *enrollments) CountForConfig(configID int64) int   { return v.byConfig[configID] }
func (v *enrollments) CountForCourse(courseID int64) int   { return v.byCourse[courseID] }
