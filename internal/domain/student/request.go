package student

import (
	"fmt"
	"slices"

	"course-sectioning/internal/domain/offering"
)

type RequestKind int

const (
	KindCourse RequestKind = iota + 1
	KindFreeTime
)

type OverrideStatus string

const (
	OverrideNone     OverrideStatus = ""
	OverridePending  OverrideStatus = "pending"
	OverrideApproved OverrideStatus = "approved"
	OverrideRejected OverrideStatus = "rejected"
)

// Request is one prioritized entry of a student's course requests. Exactly one
// of Course and FreeTime is set.
type Request struct {
	ID          int64            `yaml:"id" json:"id"`
	StudentID   int64            `yaml:"-" json:"student_id"`
	Priority    int              `yaml:"priority" json:"priority"`
	Alternative bool             `yaml:"alternative" json:"alternative"`
	Waitlist    bool             `yaml:"waitlist" json:"waitlist"`
	Course      *CourseRequest   `yaml:"course" json:"course,omitempty"`
	FreeTime    *FreeTimeRequest `yaml:"free_time" json:"free_time,omitempty"`
}

type CourseRequest struct {
	Choices    []CourseChoice `yaml:"choices" json:"choices"`
	Enrollment *Enrollment    `yaml:"enrollment" json:"enrollment,omitempty"`
}

type CourseChoice struct {
	CourseID   int64          `yaml:"course" json:"course_id"`
	OfferingID int64          `yaml:"offering" json:"offering_id"`
	CourseName string         `yaml:"name" json:"course_name"`
	Override   OverrideStatus `yaml:"override" json:"override,omitempty"`
}

type FreeTimeRequest struct {
	Days      int `yaml:"days" json:"days"`
	StartSlot int `yaml:"start" json:"start_slot"`
	Length    int `yaml:"length" json:"length"`
}

// Time returns the free time as a meeting pattern comparable with section times.
func (f *FreeTimeRequest) Time() *offering.TimeLocation {
	if f == nil {
		return nil
	}
	return &offering.TimeLocation{Days: f.Days, StartSlot: f.StartSlot, Length: f.Length}
}

func (r *Request) Kind() RequestKind {
	if r.FreeTime != nil {
		return KindFreeTime
	}
	return KindCourse
}

func (r *Request) IsCourseRequest() bool { return r != nil && r.Course != nil }

// Enrollment returns the current enrollment of a course request, nil otherwise.
func (r *Request) Enrollment() *Enrollment {
	if !r.IsCourseRequest() {
		return nil
	}
	return r.Course.Enrollment
}

// ChoiceFor returns the first course choice belonging to the offering.
func (r *Request) ChoiceFor(offeringID int64) (CourseChoice, bool) {
	if !r.IsCourseRequest() {
		return CourseChoice{}, false
	}
	i := slices.IndexFunc(r.Course.Choices, func(c CourseChoice) bool { return c.OfferingID == offeringID })
	if i < 0 {
		return CourseChoice{}, false
	}
	return r.Course.Choices[i], true
}

// HasOffering reports whether the request lists a course of the offering.
func (r *Request) HasOffering(offeringID int64) bool {
	_, ok := r.ChoiceFor(offeringID)
	return ok
}

// Clone copies the request together with its enrollment.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	c := *r
	if r.Course != nil {
		cr := *r.Course
		cr.Choices = slices.Clone(r.Course.Choices)
		cr.Enrollment = r.Course.Enrollment.Clone()
		c.Course = &cr
	}
	if r.FreeTime != nil {
		ft := *r.FreeTime
		c.FreeTime = &ft
	}
	return &c
}

func (r *Request) String() string {
	if r == nil {
		return "<nil>"
	}
	if r.Kind() == KindFreeTime {
		return fmt.Sprintf("%d. Free %d/%d+%d", r.Priority, r.FreeTime.Days, r.FreeTime.StartSlot, r.FreeTime.Length)
	}
	names := make([]string, 0, len(r.Course.Choices))
	for _, c := range r.Course.Choices {
		names = append(names, c.CourseName)
	}
	prefix := ""
	if r.Alternative {
		prefix = "A"
	}
	suffix := ""
	if r.Waitlist {
		suffix = " (w)"
	}
	return fmt.Sprintf("%s%d. %v%s", prefix, r.Priority, names, suffix)
}
