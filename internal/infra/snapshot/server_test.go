//go:build unit

package snapshot_test

import (
	"context"
	"testing"
	"time"

	"course-sectioning/internal/domain/offering"
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/infra/snapshot"
	"course-sectioning/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, students ...*student.Student) *snapshot.Server {
	t.Helper()
	srv := snapshot.NewServer(nil)
	srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
	for _, st := range students {
		srv.PutStudent(st)
	}
	return srv
}

func TestServer_PutStudent(t *testing.T) {
	st := &student.Student{ID: 7, Requests: []*student.Request{
		builder.NewCourseRequest(2, builder.OfferingID, builder.CourseID).Priority(1).Build(),
		builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Priority(0).Enrolled(builder.ConfigID, builder.SectionA).Build(),
	}}
	srv := newServer(t, st)

	stored := srv.Student(7)
	require.NotNil(t, stored)
	require.Len(t, stored.Requests, 2)
	assert.Equal(t, int64(1), stored.Requests[0].ID, "requests are ordered by priority")
	assert.Equal(t, int64(7), stored.Requests[0].StudentID)
	assert.Equal(t, int64(7), stored.Requests[0].Enrollment().StudentID)
	assert.Equal(t, int64(1), stored.Requests[0].Enrollment().RequestID)

	st.Requests[0].Waitlist = true
	assert.False(t, srv.Student(7).Requests[1].Waitlist, "the server keeps its own copy")
	assert.Nil(t, srv.Student(8))
}

func TestServer_PutStudent_CopiesEverything(t *testing.T) {
	changed := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	enrolled := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	req := builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Enrolled(builder.ConfigID, builder.SectionA).Build()
	req.Enrollment().Timestamp = enrolled
	st := &student.Student{ID: 7, Groups: []string{"honors"}, LastChange: &changed, Requests: []*student.Request{req}}
	srv := newServer(t, st)

	stored := srv.Student(7)
	require.NotNil(t, stored)
	require.NotNil(t, stored.LastChange)
	assert.True(t, changed.Equal(*stored.LastChange))
	assert.NotSame(t, st.LastChange, stored.LastChange)
	require.Len(t, stored.Requests, 1)
	assert.NotSame(t, req, stored.Requests[0])
	assert.NotSame(t, req.Course, stored.Requests[0].Course)
	require.NotNil(t, stored.Requests[0].Enrollment())
	assert.NotSame(t, req.Enrollment(), stored.Requests[0].Enrollment())
	assert.True(t, enrolled.Equal(stored.Requests[0].Enrollment().Timestamp))

	st.Groups[0] = "probation"
	req.Enrollment().SectionIDs[0] = builder.SectionB
	req.Course.Choices[0].OfferingID = 2
	assert.Equal(t, []string{"honors"}, srv.Student(7).Groups)
	assert.Equal(t, []int64{builder.SectionA}, srv.Student(7).Requests[0].Enrollment().SectionIDs)
	assert.Equal(t, builder.OfferingID, srv.Student(7).Requests[0].Course.Choices[0].OfferingID)
}

func TestServer_Enrollments(t *testing.T) {
	srv := newServer(t,
		builder.NewStudentBuilder(1).WithRequests(
			builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Enrolled(builder.ConfigID, builder.SectionA),
		).Build(),
		builder.NewStudentBuilder(2).WithRequests(
			builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
		builder.NewStudentBuilder(3).WithRequests(
			builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID),
		).Build(),
		builder.NewStudentBuilder(4).WithRequests(
			builder.NewCourseRequest(1, 2, 20).Enrolled(200, 21),
			builder.NewFreeTimeRequest(2, offering.Monday, 0, 12),
		).Build(),
	)

	v := srv.Enrollments(builder.OfferingID)
	reqs := v.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, int64(1), reqs[0].StudentID)
	assert.Equal(t, int64(2), reqs[1].StudentID)
	assert.Equal(t, 1, v.CountForSection(builder.SectionA))
	assert.Equal(t, 0, v.CountForSection(builder.SectionB))
	assert.Equal(t, 1, v.CountForConfig(builder.ConfigID))
	assert.Equal(t, 1, v.CountForCourse(builder.CourseID))

	other := srv.Enrollments(2)
	require.Len(t, other.Requests(), 1)
	assert.Equal(t, 1, other.CountForSection(21))
}

func TestServer_Assign(t *testing.T) {
	srv := newServer(t, builder.NewStudentBuilder(1).WithRequests(
		builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Waitlisted(),
		builder.NewFreeTimeRequest(2, offering.Monday, 0, 12),
	).Build())

	before := srv.Student(1)
	req := before.Requests[0]

	t.Run("stores a copy and leaves old snapshots untouched", func(t *testing.T) {
		e := student.NewEnrollment(0, 0, builder.OfferingID, 0, builder.ConfigID, []int64{builder.SectionB})
		updated := srv.Assign(req, e)

		require.NotNil(t, updated)
		got := updated.Enrollment()
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.StudentID)
		assert.Equal(t, int64(1), got.RequestID)
		assert.Equal(t, builder.CourseID, got.CourseID)
		assert.Equal(t, "course-10", got.CourseName)
		assert.NotSame(t, e, got)

		assert.Nil(t, req.Enrollment())
		assert.Nil(t, before.Requests[0].Enrollment())
		assert.NotSame(t, before.Requests[1], srv.Student(1).Requests[1], "versions never share requests")
		assert.True(t, srv.Student(1).Requests[0].Enrollment().Equal(got))
		assert.Equal(t, 1, srv.Enrollments(builder.OfferingID).CountForSection(builder.SectionB))
	})

	t.Run("nil clears the enrollment", func(t *testing.T) {
		updated := srv.Assign(req, nil)
		require.NotNil(t, updated)
		assert.Nil(t, updated.Enrollment())
		assert.Nil(t, srv.Student(1).Requests[0].Enrollment())
	})

	t.Run("rejects", func(t *testing.T) {
		cases := []struct {
			name string
			req  *student.Request
			e    *student.Enrollment
		}{
			{name: "unknown section", req: req, e: student.NewEnrollment(1, 1, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{99})},
			{name: "unknown config", req: req, e: student.NewEnrollment(1, 1, builder.OfferingID, builder.CourseID, 99, []int64{builder.SectionA})},
			{name: "offering not requested", req: req, e: student.NewEnrollment(1, 1, 2, builder.CourseID, builder.ConfigID, []int64{builder.SectionA})},
			{name: "free time request", req: srv.Student(1).Requests[1], e: nil},
			{name: "unknown student", req: &student.Request{ID: 1, StudentID: 9}, e: nil},
			{name: "nil request", req: nil, e: nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Nil(t, srv.Assign(tc.req, tc.e))
			})
		}
	})
}

func TestServer_Waitlist(t *testing.T) {
	srv := newServer(t, builder.NewStudentBuilder(1).WithRequests(
		builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID),
	).Build())
	req := srv.Student(1).Requests[0]

	updated := srv.Waitlist(req, true)
	require.NotNil(t, updated)
	assert.True(t, updated.Waitlist)
	assert.False(t, req.Waitlist)
	assert.True(t, srv.Student(1).Requests[0].Waitlist)
	assert.Len(t, srv.Enrollments(builder.OfferingID).Requests(), 1)

	assert.Nil(t, srv.Waitlist(&student.Request{ID: 5, StudentID: 1}, true))
}

func TestServer_PersistExpectedSpaces(t *testing.T) {
	srv := newServer(t, builder.NewStudentBuilder(1).WithRequests(
		builder.NewCourseRequest(1, builder.OfferingID, builder.CourseID).Enrolled(builder.ConfigID, builder.SectionA),
	).Build())

	assert.Empty(t, srv.ExpectedSpaces(builder.OfferingID))

	srv.PersistExpectedSpaces(builder.OfferingID)
	srv.PersistExpectedSpaces(99)

	assert.Equal(t, []domain.ExpectedSpace{
		{SectionID: builder.SectionA, Available: 0},
		{SectionID: builder.SectionB, Available: 1},
	}, srv.ExpectedSpaces(builder.OfferingID))
	assert.Empty(t, srv.ExpectedSpaces(99))
}

func TestServer_Locks(t *testing.T) {
	locks := snapshot.NewLockManager()
	srv := snapshot.NewServer(locks)

	l, ok := srv.LockOffering(builder.OfferingID, "pass")
	require.True(t, ok)
	assert.True(t, srv.IsOfferingLocked(builder.OfferingID))
	_, ok = srv.LockOffering(builder.OfferingID, "another pass")
	assert.False(t, ok)
	l.Release()
	assert.False(t, srv.IsOfferingLocked(builder.OfferingID))

	shared, err := srv.LockShared(context.Background(), builder.OfferingID, "reader")
	require.NoError(t, err)
	assert.False(t, srv.IsOfferingLocked(builder.OfferingID))
	_, ok = srv.LockOffering(builder.OfferingID, "pass")
	assert.False(t, ok, "a reader keeps the exclusive lock from being granted")
	shared.Release()

	l, ok = srv.LockOffering(builder.OfferingID, "pass")
	require.True(t, ok)
	l.Release()
}
