package resection

import (
	"context"

	"course-sectioning/internal/domain/offering"
	"course-sectioning/internal/domain/student"
	"course-sectioning/internal/usecase/sectioning"
)

// DefaultMaxCombinations bounds the assignments explored per request.
const DefaultMaxCombinations = 10_000

// FirstFit enumerates every complete assignment of the request's choices in
// the offering and keeps the best scoring one that has room and passes the
// checker. Equal scores keep the assignment found first.
type FirstFit struct {
	maxCombinations int
}

var _ sectioning.Resectioner = (*FirstFit)(nil)

func NewFirstFit() *FirstFit {
	return &FirstFit{maxCombinations: DefaultMaxCombinations}
}

type search struct {
	in       sectioning.ResectionInput
	previous *student.Enrollment
	budget   int
	best     *student.Enrollment
	score    float64
}

func (f *FirstFit) Resection(ctx context.Context, in sectioning.ResectionInput) (*student.Enrollment, error) {
	off, req := in.Offering, in.Request
	if off == nil || in.Student == nil || !req.IsCourseRequest() {
		return nil, nil
	}

	s := &search{in: in, previous: req.Enrollment(), budget: f.maxCombinations}
	for order, choice := range req.Course.Choices {
		if choice.OfferingID != off.ID() || choice.Override == student.OverrideRejected {
			continue
		}
		if course := off.Course(choice.CourseID); course != nil && !s.hasRoom(course.Limit, in.Enrollments.CountForCourse(course.ID), s.previousCourse(course.ID)) {
			continue
		}
		for _, cfg := range off.Configs() {
			if !s.hasRoom(cfg.Limit, in.Enrollments.CountForConfig(cfg.ID), s.previousConfig(cfg.ID)) {
				continue
			}
			chosen := make([]*offering.Section, 0, len(cfg.Subparts))
			if err := s.enumerate(ctx, choice, order, cfg, chosen); err != nil {
				return nil, err
			}
		}
	}
	return s.best, nil
}

func (s *search) enumerate(ctx context.Context, choice student.CourseChoice, order int, cfg *offering.Config, chosen []*offering.Section) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.budget <= 0 {
		return nil
	}
	if len(chosen) == len(cfg.Subparts) {
		s.budget--
		s.consider(choice, order, cfg, chosen)
		return nil
	}

	off := s.in.Offering
	for _, sec := range cfg.Subparts[len(chosen)].Sections {
		if !s.hasRoom(sec.Limit, s.in.Enrollments.CountForSection(sec.ID), s.previous.HasSection(sec.ID)) {
			continue
		}
		if sec.IsOverlappingAny(off.Distributions(), chosen) {
			continue
		}
		if err := s.enumerate(ctx, choice, order, cfg, append(chosen, sec)); err != nil {
			return err
		}
	}
	return nil
}

func (s *search) consider(choice student.CourseChoice, order int, cfg *offering.Config, chosen []*offering.Section) {
	ids := make([]int64, len(chosen))
	for i, sec := range chosen {
		ids[i] = sec.ID
	}
	e := student.NewEnrollment(s.in.Student.ID, s.in.Request.ID, s.in.Offering.ID(), choice.CourseID, cfg.ID, ids)
	e.CourseName = choice.CourseName

	if s.in.Checker != nil && !s.in.Checker.Check(s.in.Offering, s.in.Student, e, s.previous) {
		return
	}
	score := Score(s.in.Weights, s.previous, e, order)
	if s.best == nil || score > s.score {
		s.best, s.score = e, score
	}
}

// hasRoom reports whether one more student fits under limit. A seat the
// student already holds counts as free.
func (s *search) hasRoom(limit, count int, held bool) bool {
	if limit < 0 {
		return true
	}
	if held {
		count--
	}
	return count < limit
}

func (s *search) previousCourse(courseID int64) bool {
	return s.previous != nil && s.previous.CourseID == courseID
}

func (s *search) previousConfig(configID int64) bool {
	return s.previous != nil && s.previous.ConfigID == configID
}

// Score rewards keeping the previous sections and config and penalizes
// falling back to later course choices.
func Score(w sectioning.Weights, previous, e *student.Enrollment, choiceOrder int) float64 {
	score := -w.SelectionOrder * float64(choiceOrder)
	if previous == nil || e == nil {
		return score
	}
	for _, id := range e.SectionIDs {
		if previous.HasSection(id) {
			score += w.SameSection
		}
	}
	if previous.ConfigID == e.ConfigID {
		score += w.SameConfig
	}
	return score
}
