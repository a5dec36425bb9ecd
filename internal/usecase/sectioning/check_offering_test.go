//go:build unit

package sectioning_test

import (
	"context"
	"testing"
	"time"

	"course-sectioning/internal/domain/offering"
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/infra/resection"
	"course-sectioning/internal/infra/snapshot"
	"course-sectioning/internal/pkg/ptr"
	"course-sectioning/internal/usecase/auditlog"
	"course-sectioning/internal/usecase/sectioning"
	"course-sectioning/internal/usecase/shared"
	"course-sectioning/tests/common/builder"
	sectioningmock "course-sectioning/tests/mock/sectioning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func waitlisted(studentID, requestID int64) *student.Student {
	return builder.NewStudentBuilder(studentID).WithRequests(
		builder.NewCourseRequest(requestID, builder.OfferingID, builder.CourseID).Waitlisted(),
	).Build()
}

func enrolled(studentID, requestID, sectionID int64) *student.Student {
	return builder.NewStudentBuilder(studentID).WithRequests(
		builder.NewCourseRequest(requestID, builder.OfferingID, builder.CourseID).Enrolled(builder.ConfigID, sectionID),
	).Build()
}

func checkOne(t *testing.T, u *sectioning.Usecase, p sectioning.CheckParams) sectioning.OfferingResult {
	t.Helper()
	if p.OfferingIDs == nil {
		p.OfferingIDs = []int64{builder.OfferingID}
	}
	res, err := u.CheckOfferings(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, res.Offerings, 1)
	return res.Offerings[0]
}

func TestCheckOfferings_Disabled(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sectioning.Options)
		want   string
	}{
		{name: "sectioning disabled", mutate: func(o *sectioning.Options) { o.Enabled = false }, want: sectioning.ReasonSectioningDisabled},
		{name: "wait-listing disabled", mutate: func(o *sectioning.Options) { o.AllowWaitListing = false }, want: sectioning.ReasonWaitListingDisabled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, waitlisted(1, 10))
			h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
			opts := defaultOptions()
			tc.mutate(&opts)

			res, err := h.usecase(opts, nil).CheckOfferings(context.Background(), sectioning.CheckParams{OfferingIDs: []int64{builder.OfferingID}})

			require.NoError(t, err)
			assert.True(t, res.Succeeded)
			assert.Equal(t, tc.want, res.Skipped)
			assert.Empty(t, res.Offerings)
			assert.Nil(t, h.request(1, 10).Enrollment())
			assert.Empty(t, h.sink.actions)
		})
	}
}

func TestCheckOfferings_SkippedOfferings(t *testing.T) {
	h := newHarness(t, waitlisted(1, 10))
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
	h.srv.PutOffering(builder.NewOfferingBuilder().WithID(3).WithWaitList(false).MustBuild())
	u := h.usecase(defaultOptions(), nil)

	lock, ok := h.srv.LockOffering(builder.OfferingID, "someone else")
	require.True(t, ok)

	res, err := u.CheckOfferings(context.Background(), sectioning.CheckParams{OfferingIDs: []int64{builder.OfferingID, 2, 3}})
	lock.Release()

	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	require.Len(t, res.Offerings, 3)
	assert.Equal(t, sectioning.ReasonOfferingLocked, res.Offerings[0].Reason)
	assert.Equal(t, sectioning.ReasonOfferingNotFound, res.Offerings[1].Reason)
	assert.Equal(t, sectioning.ReasonOfferingNoWaitList, res.Offerings[2].Reason)
	for _, o := range res.Offerings {
		assert.True(t, o.Skipped)
		assert.Empty(t, o.Candidates)
	}
	assert.Nil(t, h.request(1, 10).Enrollment())
}

func TestCheckOfferings_WaitlistedStudentGetsFreeSeat(t *testing.T) {
	h := newHarness(t, waitlisted(1, 10), enrolled(2, 20, builder.SectionA)).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 1, "the valid enrollment of student 2 is not queued")
	c := out.Candidates[0]
	assert.Equal(t, auditlog.ResultSuccess, c.Result)
	assert.Equal(t, int64(1), c.StudentID)
	assert.Nil(t, c.Previous)
	require.NotNil(t, c.Enrollment)
	assert.Equal(t, []int64{builder.SectionB}, c.Enrollment.SectionIDs)
	assert.Equal(t, testNow, c.Enrollment.Timestamp)

	assert.Equal(t, 1, h.commits)
	assert.Equal(t, [][3]int64{{1, 10, 0}}, h.deleted)
	assert.Equal(t, []shared.ClassEnrollmentRow{{
		StudentID: 1, ClassID: builder.SectionB, CourseID: builder.CourseID, CourseDemandID: 10,
		ChangedBy: sectioning.WaitlistChangedBy, EnrolledAt: testNow,
	}}, h.inserted)
	assert.Equal(t, []waitlistWrite{{DemandID: 10, Waitlist: false}}, h.waitlist)
	require.Len(t, h.jobs, 1)
	assert.Nil(t, h.jobs[0]["old"])
	assert.NotNil(t, h.jobs[0]["new"])
	assert.Equal(t, c.ActionID.String(), h.jobs[0]["action_id"])

	req := h.request(1, 10)
	assert.False(t, req.Waitlist)
	assert.True(t, req.Enrollment().Equal(c.Enrollment))
	assert.Equal(t, []int{0, 0}, availability(h.srv.ExpectedSpaces(builder.OfferingID)))
	assert.Equal(t, []int{0, 0}, availability(h.upserted[builder.OfferingID]))

	require.Len(t, h.sink.actions, 1)
	a := h.sink.actions[0]
	assert.Equal(t, auditlog.ResultSuccess, a.Result)
	idx, _ := a.Option("Index")
	assert.Equal(t, "1 of 1", idx)
	assert.NotNil(t, a.Enrollment(auditlog.EnrollmentComputed))
	assert.NotNil(t, a.Enrollment(auditlog.EnrollmentStored))
}

func TestCheckOfferings_PriorityOrderAndIdempotence(t *testing.T) {
	h := newHarness(t,
		builder.NewStudentBuilder(1).WithPriority(1).WithRequests(
			builder.NewCourseRequest(10, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
		builder.NewStudentBuilder(2).WithPriority(0).WithRequests(
			builder.NewCourseRequest(20, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
	).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().WithSectionLimit(builder.SectionB, 0).MustBuild())
	u := h.usecase(defaultOptions(), nil)

	first := checkOne(t, u, sectioning.CheckParams{})

	require.Len(t, first.Candidates, 2)
	assert.Equal(t, int64(2), first.Candidates[0].StudentID, "higher priority student goes first")
	assert.Equal(t, auditlog.ResultSuccess, first.Candidates[0].Result)
	assert.Equal(t, int64(1), first.Candidates[1].StudentID)
	assert.Equal(t, auditlog.ResultFalse, first.Candidates[1].Result)
	assert.Nil(t, first.Candidates[1].Enrollment)
	assert.Equal(t, 1, h.commits)

	second := checkOne(t, u, sectioning.CheckParams{})

	require.Len(t, second.Candidates, 1)
	assert.Equal(t, int64(1), second.Candidates[0].StudentID)
	assert.Equal(t, auditlog.ResultFalse, second.Candidates[0].Result)
	assert.Equal(t, 1, h.commits, "a second pass commits nothing")
	assert.True(t, h.request(1, 10).Waitlist)
}

func TestCheckOfferings_InvalidEnrollmentIsMoved(t *testing.T) {
	approvedAt := testNow.Add(-48 * time.Hour)
	h := newHarness(t, enrolled(1, 10, builder.SectionA)).acceptWrites()
	h.existing[1] = []shared.ClassEnrollmentRow{{
		StudentID: 1, ClassID: builder.SectionA, CourseID: builder.CourseID, CourseDemandID: 10,
		ChangedBy: "advisor", EnrolledAt: approvedAt,
		ApprovedBy: ptr.Of("dean"), ApprovedAt: &approvedAt,
	}}
	h.srv.PutOffering(builder.NewOfferingBuilder().WithCancelled(builder.SectionA).MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{Actor: "ADMIN01"})

	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, auditlog.ResultSuccess, c.Result)
	assert.Equal(t, []int64{builder.SectionA}, c.Previous.SectionIDs)
	assert.Equal(t, []int64{builder.SectionB}, c.Enrollment.SectionIDs)

	assert.Equal(t, [][3]int64{{1, 10, builder.CourseID}}, h.deleted)
	require.Len(t, h.inserted, 1)
	row := h.inserted[0]
	assert.Equal(t, builder.SectionB, row.ClassID)
	assert.Equal(t, "ADMIN01", row.ChangedBy)
	assert.Equal(t, testNow, row.EnrolledAt)
	require.NotNil(t, row.ApprovedBy)
	assert.Equal(t, "dean", *row.ApprovedBy)
	assert.Equal(t, approvedAt, *row.ApprovedAt)
	assert.Empty(t, h.waitlist, "the request was not wait-listed")

	require.Len(t, h.sink.actions, 1)
	assert.NotNil(t, h.sink.actions[0].Enrollment(auditlog.EnrollmentPrevious))
}

func TestCheckOfferings_KeepsChangedByOfRetainedClass(t *testing.T) {
	h := newHarness(t, builder.NewStudentBuilder(1).WithRequests(
		builder.NewCourseRequest(10, builder.OfferingID, builder.CourseID).Enrolled(200, 21, 31),
	).Build()).acceptWrites()
	enrolledAt := testNow.Add(-time.Hour)
	h.existing[1] = []shared.ClassEnrollmentRow{
		{StudentID: 1, ClassID: 21, ChangedBy: "advisor", EnrolledAt: enrolledAt},
		{StudentID: 1, ClassID: 31, ChangedBy: "advisor", EnrolledAt: enrolledAt},
	}
	h.srv.PutOffering(builder.NewOfferingBuilder().
		WithConfig(&offering.Config{ID: 200, Limit: offering.Unlimited, Subparts: []*offering.Subpart{
			{ID: 2000, Sections: []*offering.Section{builder.Section(21, 5, builder.MWF(0, 12))}},
			{ID: 3000, Sections: []*offering.Section{
				builder.Section(31, 5, builder.TR(0, 12)),
				builder.Section(32, 5, builder.TR(24, 12)),
			}},
		}}).
		WithCancelled(31).
		MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 1)
	assert.Equal(t, []int64{21, 32}, out.Candidates[0].Enrollment.SectionIDs)
	require.Len(t, h.inserted, 2)
	assert.Equal(t, "advisor", h.inserted[0].ChangedBy)
	assert.Equal(t, enrolledAt, h.inserted[0].EnrolledAt)
	assert.Equal(t, sectioning.WaitlistChangedBy, h.inserted[1].ChangedBy)
	assert.Equal(t, testNow, h.inserted[1].EnrolledAt)
}

func TestCheckOfferings_NoRoomLeavesRequestUnassigned(t *testing.T) {
	h := newHarness(t, enrolled(1, 10, builder.SectionA), enrolled(2, 20, builder.SectionB)).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().WithCancelled(builder.SectionA).MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 1)
	c := out.Candidates[0]
	assert.Equal(t, auditlog.ResultNull, c.Result)
	assert.Nil(t, c.Enrollment)
	assert.Empty(t, h.inserted)
	assert.Equal(t, []waitlistWrite{{DemandID: 10, Waitlist: true}}, h.waitlist)
	assert.Equal(t, []int{1, 0}, availability(h.upserted[builder.OfferingID]))

	req := h.request(1, 10)
	assert.Nil(t, req.Enrollment())
	assert.True(t, req.Waitlist)
}

func TestCheckOfferings_AlternativeIsNotWaitlisted(t *testing.T) {
	h := newHarness(t,
		builder.NewStudentBuilder(1).WithRequests(
			builder.NewCourseRequest(10, 5, 50),
			builder.NewCourseRequest(11, builder.OfferingID, builder.CourseID).Alternative().Enrolled(builder.ConfigID, builder.SectionA),
		).Build(),
		enrolled(2, 20, builder.SectionB),
	).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().WithCancelled(builder.SectionA).MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 1)
	assert.Equal(t, auditlog.ResultNull, out.Candidates[0].Result)
	assert.Empty(t, h.waitlist)
	assert.False(t, h.request(1, 11).Waitlist)
}

func TestCheckOfferings_PersistenceFailureIsCompensated(t *testing.T) {
	h := newHarness(t, waitlisted(1, 10), waitlisted(2, 20))
	h.classes.EXPECT().DeleteForRequest(gomock.Any(), gomock.Any(), int64(1), int64(10), int64(0)).
		Return(nil, assert.AnError)
	h.classes.EXPECT().DeleteForRequest(gomock.Any(), gomock.Any(), int64(2), int64(20), int64(0)).
		Return(nil, nil)
	h.classes.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.demands.EXPECT().SetWaitlist(gomock.Any(), gomock.Any(), int64(20), false, testNow).Return(nil)
	h.spaces.EXPECT().Upsert(gomock.Any(), gomock.Any(), builder.OfferingID, gomock.Any(), testNow).Return(nil)
	h.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())

	out := checkOne(t, h.usecase(defaultOptions(), nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 2)
	assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
	assert.Nil(t, out.Candidates[0].Enrollment)
	assert.Equal(t, auditlog.ResultSuccess, out.Candidates[1].Result, "a failed candidate does not stop the pass")
	assert.Empty(t, out.Error)

	assert.Nil(t, h.request(1, 10).Enrollment())
	assert.True(t, h.request(1, 10).Waitlist)
	assert.Equal(t, []int64{builder.SectionA}, h.request(2, 20).Enrollment().SectionIDs, "the seat freed by the rollback goes to the next student")

	require.Len(t, h.sink.actions, 2)
	assert.True(t, h.sink.actions[0].HasMessage(auditlog.LevelFatal))
}

func TestCheckOfferings_InvalidProposalIsIgnored(t *testing.T) {
	cases := []struct {
		name     string
		proposal *student.Enrollment
	}{
		{name: "unknown section", proposal: student.NewEnrollment(0, 0, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{99})},
		{name: "other offering", proposal: student.NewEnrollment(0, 0, 2, builder.CourseID, builder.ConfigID, []int64{builder.SectionA})},
		{name: "cancelled section", proposal: student.NewEnrollment(0, 0, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{builder.SectionB})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, waitlisted(1, 10))
			h.srv.PutOffering(builder.NewOfferingBuilder().WithCancelled(builder.SectionB).MustBuild())
			oracle := sectioningmock.NewMockResectioner(h.ctrl)
			oracle.EXPECT().Resection(gomock.Any(), gomock.Any()).Return(tc.proposal, nil)

			out := checkOne(t, h.usecase(defaultOptions(), oracle), sectioning.CheckParams{})

			require.Len(t, out.Candidates, 1)
			assert.Equal(t, auditlog.ResultFalse, out.Candidates[0].Result)
			assert.Nil(t, h.request(1, 10).Enrollment())
			assert.True(t, h.sink.actions[0].HasMessage(auditlog.LevelWarn))
			assert.Zero(t, h.commits)
		})
	}
}

func TestCheckOfferings_OracleFailures(t *testing.T) {
	h := newHarness(t,
		builder.NewStudentBuilder(1).WithPriority(1).WithRequests(
			builder.NewCourseRequest(10, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
		builder.NewStudentBuilder(2).WithRequests(
			builder.NewCourseRequest(20, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
		builder.NewStudentBuilder(3).WithPriority(2).WithRequests(
			builder.NewCourseRequest(30, builder.OfferingID, builder.CourseID).Waitlisted(),
		).Build(),
	).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())

	ff := resection.NewFirstFit()
	oracle := sectioningmock.NewMockResectioner(h.ctrl)
	oracle.EXPECT().Resection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in sectioning.ResectionInput) (*student.Enrollment, error) {
			switch in.Student.ID {
			case 2:
				panic("boom")
			case 3:
				return nil, assert.AnError
			}
			return ff.Resection(ctx, in)
		}).Times(3)

	out := checkOne(t, h.usecase(defaultOptions(), oracle), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 3)
	assert.Equal(t, int64(2), out.Candidates[0].StudentID)
	assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
	assert.Equal(t, int64(1), out.Candidates[1].StudentID)
	assert.Equal(t, auditlog.ResultSuccess, out.Candidates[1].Result)
	assert.Equal(t, auditlog.ResultFailure, out.Candidates[2].Result)
	assert.Nil(t, h.request(2, 20).Enrollment())
}

func TestCheckOfferings_Provider(t *testing.T) {
	t.Run("replaces the proposal", func(t *testing.T) {
		h := newHarness(t, waitlisted(1, 10)).acceptWrites()
		h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
		provider := sectioningmock.NewMockEnrollmentProvider(h.ctrl)
		provider.EXPECT().Resection(gomock.Any(), h.srv, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sectioning.Server, c *sectioning.Candidate, proposed *student.Enrollment) (*student.Enrollment, error) {
				assert.Equal(t, []int64{builder.SectionA}, proposed.SectionIDs)
				assert.Equal(t, int64(1), c.Student.ID)
				return student.NewEnrollment(0, 0, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{builder.SectionB}), nil
			})

		out := checkOne(t, h.usecase(defaultOptions(), nil, sectioning.WithProvider(provider)), sectioning.CheckParams{})

		assert.Equal(t, auditlog.ResultSuccess, out.Candidates[0].Result)
		assert.Equal(t, []int64{builder.SectionB}, h.request(1, 10).Enrollment().SectionIDs)
	})

	invalid := []struct {
		name       string
		off        *offering.Offering
		enrollment *student.Enrollment
	}{
		{
			name:       "two sections of one subpart",
			off:        builder.NewOfferingBuilder().MustBuild(),
			enrollment: student.NewEnrollment(0, 0, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{builder.SectionA, builder.SectionB}),
		},
		{
			name:       "cancelled section",
			off:        builder.NewOfferingBuilder().WithCancelled(builder.SectionB).MustBuild(),
			enrollment: student.NewEnrollment(0, 0, builder.OfferingID, builder.CourseID, builder.ConfigID, []int64{builder.SectionB}),
		},
		{
			name:       "another offering",
			off:        builder.NewOfferingBuilder().MustBuild(),
			enrollment: student.NewEnrollment(0, 0, 2, builder.CourseID, builder.ConfigID, []int64{builder.SectionB}),
		},
	}
	for _, tc := range invalid {
		t.Run("rejects invalid enrollment: "+tc.name, func(t *testing.T) {
			h := newHarness(t, waitlisted(1, 10))
			h.srv.PutOffering(tc.off)
			provider := sectioningmock.NewMockEnrollmentProvider(h.ctrl)
			provider.EXPECT().Resection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.enrollment, nil)

			out := checkOne(t, h.usecase(defaultOptions(), nil, sectioning.WithProvider(provider)), sectioning.CheckParams{})

			require.Len(t, out.Candidates, 1)
			assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
			assert.Nil(t, h.request(1, 10).Enrollment())
			assert.True(t, h.request(1, 10).Waitlist)
			assert.Zero(t, h.commits)
			require.Len(t, h.sink.actions, 1)
			assert.True(t, h.sink.actions[0].HasMessage(auditlog.LevelWarn))
			assert.True(t, h.sink.actions[0].HasMessage(auditlog.LevelFatal))
		})
	}

	t.Run("error", func(t *testing.T) {
		h := newHarness(t, waitlisted(1, 10))
		h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
		provider := sectioningmock.NewMockEnrollmentProvider(h.ctrl)
		provider.EXPECT().Resection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		out := checkOne(t, h.usecase(defaultOptions(), nil, sectioning.WithProvider(provider)), sectioning.CheckParams{})

		assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
		assert.Nil(t, h.request(1, 10).Enrollment())
	})

	t.Run("panic", func(t *testing.T) {
		h := newHarness(t, waitlisted(1, 10))
		h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
		provider := sectioningmock.NewMockEnrollmentProvider(h.ctrl)
		provider.EXPECT().Resection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, sectioning.Server, *sectioning.Candidate, *student.Enrollment) (*student.Enrollment, error) {
				panic("provider exploded")
			})

		out := checkOne(t, h.usecase(defaultOptions(), nil, sectioning.WithProvider(provider)), sectioning.CheckParams{})

		assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
	})
}

func TestCheckOfferings_StudentFilters(t *testing.T) {
	cases := []struct {
		name   string
		params sectioning.CheckParams
		want   []int64
	}{
		{name: "everyone", want: []int64{1, 2}},
		{name: "skip", params: sectioning.CheckParams{SkipStudentIDs: []int64{1}}, want: []int64{2}},
		{name: "only", params: sectioning.CheckParams{StudentIDs: []int64{1}}, want: []int64{1}},
		{name: "skip wins over only", params: sectioning.CheckParams{StudentIDs: []int64{1}, SkipStudentIDs: []int64{1}}, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, waitlisted(1, 10), waitlisted(2, 20)).acceptWrites()
			h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())

			out := checkOne(t, h.usecase(defaultOptions(), nil), tc.params)

			var got []int64
			for _, c := range out.Candidates {
				got = append(got, c.StudentID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckOfferings_ReschedulingDisabledKeepsEnrollments(t *testing.T) {
	h := newHarness(t, enrolled(1, 10, builder.SectionA), waitlisted(2, 20)).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().WithCancelled(builder.SectionA).MustBuild())
	opts := defaultOptions()
	opts.ReschedulingEnabled = false

	out := checkOne(t, h.usecase(opts, nil), sectioning.CheckParams{})

	require.Len(t, out.Candidates, 1)
	assert.Equal(t, int64(2), out.Candidates[0].StudentID)
	assert.Equal(t, []int64{builder.SectionA}, h.request(1, 10).Enrollment().SectionIDs)
	assert.Equal(t, []int64{builder.SectionB}, h.request(2, 20).Enrollment().SectionIDs)
}

// faultyServer is a snapshot server that rejects assignments of one student
// and panics when the enrollments of one offering are read.
type faultyServer struct {
	*snapshot.Server
	rejectStudentID int64
	brokenOffering  int64
}

func (s *faultyServer) Assign(req *student.Request, e *student.Enrollment) *student.Request {
	if req.StudentID == s.rejectStudentID && e != nil {
		return nil
	}
	return s.Server.Assign(req, e)
}

func (s *faultyServer) Enrollments(offeringID int64) sectioning.EnrollmentsView {
	if offeringID == s.brokenOffering {
		panic("enrollments index corrupted")
	}
	return s.Server.Enrollments(offeringID)
}

func TestCheckOfferings_RejectedAssignmentDoesNotStopQueue(t *testing.T) {
	h := newHarness(t, waitlisted(1, 10), waitlisted(2, 20)).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
	server := &faultyServer{Server: h.srv, rejectStudentID: 1}

	u := sectioning.NewUsecase(defaultOptions(), server, h.uow, resection.NewFirstFit(), h.sink, h.clk, h.clk)
	out := checkOne(t, u, sectioning.CheckParams{})

	require.Len(t, out.Candidates, 2)
	assert.Equal(t, int64(1), out.Candidates[0].StudentID)
	assert.Equal(t, auditlog.ResultFailure, out.Candidates[0].Result)
	assert.Equal(t, int64(2), out.Candidates[1].StudentID)
	assert.Equal(t, auditlog.ResultSuccess, out.Candidates[1].Result)

	assert.Nil(t, h.request(1, 10).Enrollment())
	assert.NotNil(t, h.request(2, 20).Enrollment())
	assert.Equal(t, 1, h.commits)
	require.Len(t, h.sink.actions, 2)
	assert.True(t, h.sink.actions[0].HasMessage(auditlog.LevelError))
}

func TestCheckOfferings_FailedOfferingDoesNotStopOthers(t *testing.T) {
	other := builder.NewStudentBuilder(2).WithRequests(
		builder.NewCourseRequest(20, 2, builder.CourseID).Waitlisted(),
	).Build()
	h := newHarness(t, waitlisted(1, 10), other).acceptWrites()
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
	h.srv.PutOffering(builder.NewOfferingBuilder().WithID(2).MustBuild())
	server := &faultyServer{Server: h.srv, brokenOffering: builder.OfferingID}

	u := sectioning.NewUsecase(defaultOptions(), server, h.uow, resection.NewFirstFit(), h.sink, h.clk, h.clk)
	res, err := u.CheckOfferings(context.Background(), sectioning.CheckParams{OfferingIDs: []int64{builder.OfferingID, 2}})

	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	require.Len(t, res.Offerings, 2)
	assert.Contains(t, res.Offerings[0].Error, "enrollments index corrupted")
	assert.Empty(t, res.Offerings[0].Candidates)
	assert.False(t, h.srv.IsOfferingLocked(builder.OfferingID), "lock is released after a panic")

	assert.Empty(t, res.Offerings[1].Error)
	require.Len(t, res.Offerings[1].Candidates, 1)
	assert.Equal(t, int64(2), res.Offerings[1].Candidates[0].StudentID)
	assert.Equal(t, auditlog.ResultSuccess, res.Offerings[1].Candidates[0].Result)
	assert.Nil(t, h.request(1, 10).Enrollment())

	require.Len(t, h.sink.actions, 2)
	a := h.sink.actions[0]
	assert.Nil(t, a.Student)
	assert.Equal(t, auditlog.EntityOffering, a.Offering.Type)
	assert.Equal(t, builder.OfferingID, a.Offering.ID)
	assert.Equal(t, auditlog.ResultFailure, a.Result)
	assert.True(t, a.HasMessage(auditlog.LevelFatal))
	assert.Equal(t, auditlog.ResultSuccess, h.sink.actions[1].Result)
}

func TestCheckOfferings_ReaderKeepsOfferingFromBeingChecked(t *testing.T) {
	h := newHarness(t, waitlisted(1, 10))
	h.srv.PutOffering(builder.NewOfferingBuilder().MustBuild())
	reader, err := h.srv.LockShared(context.Background(), builder.OfferingID, "reader")
	require.NoError(t, err)
	defer reader.Release()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := h.usecase(defaultOptions(), nil).CheckOfferings(ctx, sectioning.CheckParams{OfferingIDs: []int64{builder.OfferingID}})

	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "the pass must not wait for the reader")
	assert.True(t, res.Succeeded)
	assert.True(t, res.Offerings[0].Skipped)
	assert.Equal(t, sectioning.ReasonOfferingLocked, res.Offerings[0].Reason)
	assert.Nil(t, h.request(1, 10).Enrollment())
}

func availability(spaces []domain.ExpectedSpace) []int {
	out := make([]int, len(spaces))
	for i, s := range spaces {
		out[i] = s.Available
	}
	return out
}
