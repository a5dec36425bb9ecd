package snapshot

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"

	"course-sectioning/internal/domain/offering"
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/usecase/sectioning"

	"github.com/jinzhu/copier"
)

// Server is an id-indexed arena of offerings and students. Published values
// are never mutated in place: Assign and Waitlist store new copies, so a
// snapshot handed out earlier stays consistent.
type Server struct {
	mu         sync.RWMutex
	locks      *LockManager
	offerings  map[int64]*offering.Offering
	students   map[int64]*student.Student
	byOffering map[int64]map[int64]struct{}
	expected   map[int64][]domain.ExpectedSpace
}

var _ sectioning.Server = (*Server)(nil)

func NewServer(locks *LockManager) *Server {
	if locks == nil {
		locks = NewLockManager()
	}
	return &Server{
		locks:      locks,
		offerings:  make(map[int64]*offering.Offering),
		students:   make(map[int64]*student.Student),
		byOffering: make(map[int64]map[int64]struct{}),
		expected:   make(map[int64][]domain.ExpectedSpace),
	}
}

func (s *Server) PutOffering(off *offering.Offering) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offerings[off.ID()] = off
}

// PutStudent stores a copy of the student with back-references filled in and
// requests ordered by priority.
func (s *Server) PutStudent(st *student.Student) {
	c := cloneStudent(st)
	for _, r := range c.Requests {
		r.StudentID = c.ID
		if e := r.Enrollment(); e != nil {
			e.StudentID, e.RequestID = c.ID, r.ID
		}
	}
	c.SortRequests()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.unindex(s.students[c.ID])
	s.students[c.ID] = c
	s.index(c)
}

func (s *Server) OfferingIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.offerings))
	for id := range s.offerings {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Server) IsOfferingLocked(offeringID int64) bool {
	return s.locks.IsLocked(offeringID)
}

// LockOffering takes the exclusive lock without waiting; false means another
// pass or a reader holds the offering.
func (s *Server) LockOffering(offeringID int64, owner string) (sectioning.Lock, bool) {
	return s.locks.TryLock(offeringID, LockExclusive, owner)
}

func (s *Server) LockShared(ctx context.Context, offeringID int64, owner string) (sectioning.Lock, error) {
	return s.locks.Lock(ctx, offeringID, LockShared, owner)
}

func (s *Server) Offering(offeringID int64) *offering.Offering {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offerings[offeringID]
}

func (s *Server) Student(studentID int64) *student.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students[studentID]
}

func (s *Server) Enrollments(offeringID int64) sectioning.EnrollmentsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := newEnrollments()
	for studentID := range s.byOffering[offeringID] {
		st := s.students[studentID]
		if st == nil {
			continue
		}
		for _, r := range st.Requests {
			if !r.IsCourseRequest() {
				continue
			}
			if e := r.Enrollment(); e != nil {
				if e.OfferingID == offeringID {
					v.add(r, e)
				}
				continue
			}
			if r.Waitlist && r.HasOffering(offeringID) {
				v.add(r, nil)
			}
		}
	}
	slices.SortFunc(v.requests, func(a, b *student.Request) int {
		return cmp.Or(cmp.Compare(a.ID, b.ID), cmp.Compare(a.StudentID, b.StudentID))
	})
	return v
}

func (s *Server) Assign(req *student.Request, enrollment *student.Enrollment) *student.Request {
	if req == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, idx := s.lookup(req)
	if st == nil {
		return nil
	}
	current := st.Requests[idx]
	if !current.IsCourseRequest() {
		return nil
	}

	var stored *student.Enrollment
	if enrollment != nil {
		choice, ok := current.ChoiceFor(enrollment.OfferingID)
		if !ok || !s.fits(enrollment) {
			slog.Warn("rejected assignment", "student_id", st.ID, "request_id", current.ID, "offering_id", enrollment.OfferingID)
			return nil
		}
		stored = enrollment.Clone()
		stored.StudentID, stored.RequestID = st.ID, current.ID
		if stored.CourseID == 0 {
			stored.CourseID = choice.CourseID
		}
		if stored.CourseName == "" {
			stored.CourseName = choice.CourseName
		}
	}

	updated := current.Clone()
	updated.Course.Enrollment = stored
	s.replace(st, idx, updated)
	return updated
}

func (s *Server) Waitlist(req *student.Request, waitlist bool) *student.Request {
	if req == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	st, idx := s.lookup(req)
	if st == nil {
		return nil
	}
	updated := st.Requests[idx].Clone()
	updated.Waitlist = waitlist
	s.replace(st, idx, updated)
	return updated
}

func (s *Server) PersistExpectedSpaces(offeringID int64) {
	off := s.Offering(offeringID)
	if off == nil {
		return
	}
	spaces := domain.ComputeExpectedSpaces(off, s.Enrollments(offeringID))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expected[offeringID] = spaces
}

// ExpectedSpaces returns the projection last stored by PersistExpectedSpaces.
func (s *Server) ExpectedSpaces(offeringID int64) []domain.ExpectedSpace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.expected[offeringID])
}

func (s *Server) lookup(req *student.Request) (*student.Student, int) {
	st := s.students[req.StudentID]
	if st == nil {
		return nil, -1
	}
	idx := slices.IndexFunc(st.Requests, func(r *student.Request) bool { return r.ID == req.ID })
	if idx < 0 {
		return nil, -1
	}
	return st, idx
}

// fits reports whether the enrollment names a config and sections of a known offering.
func (s *Server) fits(e *student.Enrollment) bool {
	off := s.offerings[e.OfferingID]
	if off == nil || off.Config(e.ConfigID) == nil {
		return false
	}
	for _, id := range e.SectionIDs {
		if off.Section(id) == nil {
			return false
		}
	}
	return true
}

// replace publishes a new student version with one request swapped. Callers hold mu.
func (s *Server) replace(st *student.Student, idx int, req *student.Request) {
	next := cloneStudent(st)
	next.Requests[idx] = req
	s.unindex(st)
	s.students[next.ID] = next
	s.index(next)
}

func (s *Server) index(st *student.Student) {
	for _, id := range offeringsOf(st) {
		set, ok := s.byOffering[id]
		if !ok {
			set = make(map[int64]struct{})
			s.byOffering[id] = set
		}
		set[st.ID] = struct{}{}
	}
}

func (s *Server) unindex(st *student.Student) {
	if st == nil {
		return
	}
	for _, id := range offeringsOf(st) {
		delete(s.byOffering[id], st.ID)
	}
}

func offeringsOf(st *student.Student) []int64 {
	var ids []int64
	for _, r := range st.Requests {
		if !r.IsCourseRequest() {
			continue
		}
		for _, c := range r.Course.Choices {
			ids = append(ids, c.OfferingID)
		}
		if e := r.Enrollment(); e != nil {
			ids = append(ids, e.OfferingID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// cloneStudent deep copies a student. Published versions never share state.
func cloneStudent(src *student.Student) *student.Student {
	dst := &student.Student{}
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		slog.Warn("falling back to manual student copy", "student_id", src.ID, "error", err)
		c := *src
		c.Groups = slices.Clone(src.Groups)
		c.Requests = make([]*student.Request, len(src.Requests))
		for i, r := range src.Requests {
			c.Requests[i] = r.Clone()
		}
		return &c
	}
	return dst
}
