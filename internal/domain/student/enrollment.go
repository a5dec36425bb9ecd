package student

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Enrollment is a committed set of sections for one course request: exactly one
// section per subpart of the chosen config.
type Enrollment struct {
	StudentID     int64     `yaml:"-" json:"student_id"`
	RequestID     int64     `yaml:"-" json:"request_id"`
	OfferingID    int64     `yaml:"offering" json:"offering_id"`
	CourseID      int64     `yaml:"course" json:"course_id"`
	CourseName    string    `yaml:"course_name" json:"course_name,omitempty"`
	ConfigID      int64     `yaml:"config" json:"config_id"`
	SectionIDs    []int64   `yaml:"sections" json:"section_ids"`
	ReservationID *int64    `yaml:"reservation" json:"reservation_id,omitempty"`
	Timestamp     time.Time `yaml:"timestamp" json:"timestamp"`
}

// NewEnrollment returns an enrollment with its section ids sorted and de-duplicated.
func NewEnrollment(studentID, requestID, offeringID, courseID, configID int64, sectionIDs []int64) *Enrollment {
	ids := slices.Clone(sectionIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	return &Enrollment{
		StudentID:  studentID,
		RequestID:  requestID,
		OfferingID: offeringID,
		CourseID:   courseID,
		ConfigID:   configID,
		SectionIDs: ids,
	}
}

func (e *Enrollment) HasSection(sectionID int64) bool {
	return e != nil && slices.Contains(e.SectionIDs, sectionID)
}

// Equal compares the material content: offering, course, config and section set.
// Timestamps and reservation are ignored.
func (e *Enrollment) Equal(other *Enrollment) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	if e.OfferingID != other.OfferingID || e.CourseID != other.CourseID || e.ConfigID != other.ConfigID {
		return false
	}
	if len(e.SectionIDs) != len(other.SectionIDs) {
		return false
	}
	for _, id := range e.SectionIDs {
		if !other.HasSection(id) {
			return false
		}
	}
	return true
}

// VacatedSections returns the sections of e that are not part of next.
// A nil next vacates every section.
func (e *Enrollment) VacatedSections(next *Enrollment) []int64 {
	if e == nil {
		return nil
	}
	var out []int64
	for _, id := range e.SectionIDs {
		if !next.HasSection(id) {
			out = append(out, id)
		}
	}
	return out
}

func (e *Enrollment) Clone() *Enrollment {
	if e == nil {
		return nil
	}
	c := *e
	c.SectionIDs = slices.Clone(e.SectionIDs)
	if e.ReservationID != nil {
		id := *e.ReservationID
		c.ReservationID = &id
	}
	return &c
}

func (e *Enrollment) String() string {
	if e == nil {
		return "not assigned"
	}
	parts := make([]string, len(e.SectionIDs))
	for i, id := range e.SectionIDs {
		parts[i] = fmt.Sprint(id)
	}
	name := e.CourseName
	if name == "" {
		name = fmt.Sprintf("course-%d", e.CourseID)
	}
	return fmt.Sprintf("%s [config %d: %s]", name, e.ConfigID, strings.Join(parts, ", "))
}
