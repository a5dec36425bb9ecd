//go:build unit || e2e

package builder

import (
	"fmt"

	"course-sectioning/internal/domain/student"
)

type StudentBuilder struct {
	ID         int64
	ExternalID string
	Name       string
	Priority   int
	Groups     []string
	Requests   []*student.Request
}

func NewStudentBuilder(id int64) *StudentBuilder {
	return &StudentBuilder{
		ID:         id,
		ExternalID: fmt.Sprintf("S%04d", id),
		Name:       fmt.Sprintf("Student %d", id),
	}
}

func (b *StudentBuilder) With(mutate func(*StudentBuilder)) *StudentBuilder {
	mutate(b)
	return b
}

func (b *StudentBuilder) WithPriority(p int) *StudentBuilder {
	b.Priority = p
	return b
}

func (b *StudentBuilder) WithGroups(groups ...string) *StudentBuilder {
	b.Groups = append(b.Groups, groups...)
	return b
}

func (b *StudentBuilder) WithRequests(reqs ...*RequestBuilder) *StudentBuilder {
	for _, r := range reqs {
		b.Requests = append(b.Requests, r.Build())
	}
	return b
}

// Build fills in the student back-references of every request and enrollment.
func (b *StudentBuilder) Build() *student.Student {
	st := &student.Student{
		ID:         b.ID,
		ExternalID: b.ExternalID,
		Name:       b.Name,
		Priority:   b.Priority,
		Groups:     b.Groups,
	}
	for _, r := range b.Requests {
		r.StudentID = b.ID
		if e := r.Enrollment(); e != nil {
			e.StudentID, e.RequestID = b.ID, r.ID
		}
		st.Requests = append(st.Requests, r)
	}
	return st
}

type RequestBuilder struct {
	req *student.Request
}

// NewCourseRequest returns a primary course request whose first choice is the
// course of the offering.
func NewCourseRequest(id, offeringID, courseID int64) *RequestBuilder {
	return &RequestBuilder{req: &student.Request{
		ID: id,
		Course: &student.CourseRequest{
			Choices: []student.CourseChoice{
				{CourseID: courseID, OfferingID: offeringID, CourseName: fmt.Sprintf("course-%d", courseID)},
			},
		},
	}}
}

func NewFreeTimeRequest(id int64, days, start, length int) *RequestBuilder {
	return &RequestBuilder{req: &student.Request{
		ID:       id,
		FreeTime: &student.FreeTimeRequest{Days: days, StartSlot: start, Length: length},
	}}
}

func (r *RequestBuilder) Priority(p int) *RequestBuilder {
	r.req.Priority = p
	return r
}

func (r *RequestBuilder) Alternative() *RequestBuilder {
	r.req.Alternative = true
	return r
}

func (r *RequestBuilder) Waitlisted() *RequestBuilder {
	r.req.Waitlist = true
	return r
}

// Choice appends another course choice.
func (r *RequestBuilder) Choice(offeringID, courseID int64) *RequestBuilder {
	r.req.Course.Choices = append(r.req.Course.Choices, student.CourseChoice{
		CourseID:   courseID,
		OfferingID: offeringID,
		CourseName: fmt.Sprintf("course-%d", courseID),
	})
	return r
}

// Override sets the override status of the first choice.
func (r *RequestBuilder) Override(status student.OverrideStatus) *RequestBuilder {
	r.req.Course.Choices[0].Override = status
	return r
}

// Enrolled assigns the request to sections of its first choice.
func (r *RequestBuilder) Enrolled(configID int64, sectionIDs ...int64) *RequestBuilder {
	c := r.req.Course.Choices[0]
	e := student.NewEnrollment(0, r.req.ID, c.OfferingID, c.CourseID, configID, sectionIDs)
	e.CourseName = c.CourseName
	r.req.Course.Enrollment = e
	return r
}

func (r *RequestBuilder) Build() *student.Request {
	return r.req
}
