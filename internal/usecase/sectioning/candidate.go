package sectioning

import (
	"cmp"
	"slices"

	"course-sectioning/internal/domain/offering"
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/usecase/auditlog"
)

// Candidate is one queued unit of resectioning work. Request is replaced once
// after the assignment attempt; everything else is fixed at queue time.
type Candidate struct {
	Offering *offering.Offering
	Student  *student.Student
	Request  *student.Request
	Priority int64
	Action   *auditlog.Action
	// Previous is the enrollment the request held when it was queued.
	Previous *student.Enrollment
}

func compareCandidates(a, b *Candidate) int {
	return cmp.Or(
		cmp.Compare(a.Priority, b.Priority),
		cmp.Compare(a.Request.ID, b.Request.ID),
		cmp.Compare(a.Student.ID, b.Student.ID),
	)
}

// DefaultPriority ranks by student priority, then by request priority with
// alternatives after primaries.
type DefaultPriority struct{}

func (DefaultPriority) Score(st *student.Student, req *student.Request) int64 {
	score := int64(st.Priority) * 1_000_000
	if req.Alternative {
		score += 100_000
	}
	return score + int64(req.Priority)
}

type queueFilter struct {
	skip    map[int64]struct{}
	include map[int64]struct{}
}

func newQueueFilter(skip, include []int64) queueFilter {
	f := queueFilter{}
	if len(skip) > 0 {
		f.skip = make(map[int64]struct{}, len(skip))
		for _, id := range skip {
			f.skip[id] = struct{}{}
		}
	}
	if len(include) > 0 {
		f.include = make(map[int64]struct{}, len(include))
		for _, id := range include {
			f.include[id] = struct{}{}
		}
	}
	return f
}

func (f queueFilter) allows(studentID int64) bool {
	if _, skipped := f.skip[studentID]; skipped {
		return false
	}
	if f.include == nil {
		return true
	}
	_, ok := f.include[studentID]
	return ok
}

// buildQueue selects the requests of the offering that need resectioning and
// orders them by (priority score, request id, student id).
func (u *Usecase) buildQueue(off *offering.Offering, filter queueFilter, checker *domain.Checker) []*Candidate {
	view := u.server.Enrollments(off.ID())
	type key struct{ studentID, requestID int64 }
	seen := make(map[key]struct{})
	var queue []*Candidate

	for _, r := range view.Requests() {
		k := key{r.StudentID, r.ID}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if !filter.allows(r.StudentID) {
			continue
		}
		st := u.server.Student(r.StudentID)
		if st == nil {
			continue
		}
		req, err := st.Request(r.ID)
		if err != nil || !req.IsCourseRequest() {
			continue
		}

		enrollment := req.Enrollment()
		if enrollment != nil && enrollment.OfferingID != off.ID() {
			continue
		}

		action := auditlog.NewAction(auditlog.OperationCheckOffering, u.clock.Now()).
			WithStudent(st).
			WithOffering(off.ID(), off.Name()).
			WithRequest(req)

		if enrollment == nil {
			if !st.CanAssign(req, student.WaitListModeWaitList) || !domain.IsWaitListed(st, req, off) {
				continue
			}
		} else {
			if checker.Check(off, st, enrollment, enrollment) {
				continue
			}
			action.AddEnrollment(auditlog.EnrollmentPrevious, enrollment)
		}

		queue = append(queue, &Candidate{
			Offering: off,
			Student:  st,
			Request:  req,
			Priority: u.priority.Score(st, req),
			Action:   action,
			Previous: enrollment,
		})
	}

	slices.SortFunc(queue, compareCandidates)
	return queue
}
