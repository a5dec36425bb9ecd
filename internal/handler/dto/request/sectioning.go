package request

import (
	"time"

	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/usecase/sectioning"
)

type CheckOfferingsRequest struct {
	OfferingIDs    []int64 `json:"offering_ids" binding:"required,min=1,dive,gt=0"`
	SkipStudentIDs []int64 `json:"skip_student_ids" binding:"omitempty,dive,gt=0"`
	StudentIDs     []int64 `json:"student_ids" binding:"omitempty,dive,gt=0"`
}

func (r *CheckOfferingsRequest) ToParams(actor string) sectioning.CheckParams {
	return sectioning.CheckParams{
		OfferingIDs:    r.OfferingIDs,
		SkipStudentIDs: r.SkipStudentIDs,
		StudentIDs:     r.StudentIDs,
		Actor:          actor,
	}
}

type EnrollmentRequest struct {
	StudentID  int64     `json:"student_id" binding:"required,gt=0"`
	RequestID  int64     `json:"request_id" binding:"required,gt=0"`
	OfferingID int64     `json:"offering_id" binding:"required,gt=0"`
	CourseID   int64     `json:"course_id" binding:"required,gt=0"`
	ConfigID   int64     `json:"config_id" binding:"required,gt=0"`
	SectionIDs []int64   `json:"section_ids" binding:"required,min=1,dive,gt=0"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *EnrollmentRequest) ToDomain() *student.Enrollment {
	if r == nil {
		return nil
	}
	e := student.NewEnrollment(r.StudentID, r.RequestID, r.OfferingID, r.CourseID, r.ConfigID, r.SectionIDs)
	e.Timestamp = r.Timestamp
	return e
}

// CheckNeededRequest carries the enrollment before a change. When New is
// omitted and LookupCurrent is set, the student's current enrollment is used;
// otherwise the student is treated as having dropped the course.
type CheckNeededRequest struct {
	Old           *EnrollmentRequest `json:"old" binding:"required"`
	New           *EnrollmentRequest `json:"new"`
	LookupCurrent bool               `json:"lookup_current"`
}
