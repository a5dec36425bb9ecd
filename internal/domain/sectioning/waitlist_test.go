//go:build unit

package sectioning_test

import (
	"testing"

	"course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestIsWaitListed(t *testing.T) {
	off := builder.NewOfferingBuilder().MustBuild()
	noWaitList := builder.NewOfferingBuilder().WithWaitList(false).MustBuild()

	cases := []struct {
		name string
		req  *builder.RequestBuilder
		off  bool
		want bool
	}{
		{name: "wait-listed and unassigned", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted(), off: true, want: true},
		{name: "not wait-listed", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID), off: true, want: false},
		{name: "already enrolled", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted().Enrolled(builder.ConfigID, builder.SectionA), off: true, want: false},
		{name: "rejected override", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted().Override(student.OverrideRejected), off: true, want: false},
		{name: "pending override", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted().Override(student.OverridePending), off: true, want: true},
		{name: "other offering only", req: builder.NewCourseRequest(1, otherOfferingID, builder.CourseID).Waitlisted(), off: true, want: false},
		{name: "unknown course", req: builder.NewCourseRequest(1, builder.OfferingID, 999).Waitlisted(), off: true, want: false},
		{name: "offering does not wait-list", req: builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted(), off: false, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := builder.NewStudentBuilder(1).WithRequests(tc.req).Build()
			o := off
			if !tc.off {
				o = noWaitList
			}
			assert.Equal(t, tc.want, sectioning.IsWaitListed(st, st.Requests[0], o))
		})
	}

	t.Run("free time request", func(t *testing.T) {
		st := builder.NewStudentBuilder(1).WithRequests(builder.NewFreeTimeRequest(1, 1, 0, 12)).Build()
		assert.False(t, sectioning.IsWaitListed(st, st.Requests[0], off))
	})
}
