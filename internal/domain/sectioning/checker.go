package sectioning

import (
	"time"

	"course-sectioning/internal/domain/offering"
	"course-sectioning/internal/domain/student"
)

// OfferingLookup resolves the other offerings a student is enrolled in.
type OfferingLookup interface {
	Offering(id int64) *offering.Offering
}

type CheckOptions struct {
	ReschedulingEnabled   bool
	CanKeepCancelledClass bool
}

// Checker validates (offering, student, enrollment) triples. It has no side effects.
type Checker struct {
	opts      CheckOptions
	offerings OfferingLookup
	now       func() time.Time
}

func NewChecker(opts CheckOptions, offerings OfferingLookup, now func() time.Time) *Checker {
	if now == nil {
		now = time.Now
	}
	return &Checker{opts: opts, offerings: offerings, now: now}
}

func (c *Checker) Options() CheckOptions { return c.opts }

// Check reports whether enrollment is a legal assignment for the student.
// previous is the enrollment the request held before this attempt; pass the
// enrollment itself to validate an existing assignment.
func (c *Checker) Check(off *offering.Offering, st *student.Student, enrollment, previous *student.Enrollment) bool {
	if enrollment == nil || off == nil {
		return true
	}
	if enrollment.OfferingID != off.ID() {
		return true
	}

	// without rescheduling an existing enrollment may only be kept as is
	if !c.opts.ReschedulingEnabled && previous != nil {
		return enrollment.Equal(previous)
	}

	sections := off.SectionsOf(enrollment.SectionIDs)
	config := off.Config(enrollment.ConfigID)
	if config == nil || len(sections) != len(enrollment.SectionIDs) || len(sections) != len(config.Subparts) {
		return false
	}

	for i, s1 := range sections {
		for _, s2 := range sections[i+1:] {
			if s1.IsOverlapping(off.Distributions(), s2) {
				return false
			}
			if s1.SubpartID == s2.SubpartID {
				return false
			}
		}
		sp := off.Subpart(s1.SubpartID)
		if sp == nil || sp.ConfigID != config.ID {
			return false
		}
	}

	now := c.now()
	if st != nil && !off.IsAllowOverlap(st, enrollment.ConfigID, sections, now) {
		for _, r := range st.Requests {
			e := r.Enrollment()
			if e == nil || r.ID == enrollment.RequestID {
				continue
			}
			other := c.lookup(e.OfferingID)
			if other == nil {
				continue
			}
			assignment := other.SectionsOf(e.SectionIDs)
			if other.IsAllowOverlap(st, e.ConfigID, assignment, now) {
				continue
			}
			for _, s := range sections {
				if s.IsOverlappingAny(off.Distributions(), assignment) {
					return false
				}
			}
		}
	}

	if !c.opts.CanKeepCancelledClass {
		for _, s := range sections {
			if s.Cancelled {
				return false
			}
		}
	}
	return true
}

func (c *Checker) lookup(id int64) *offering.Offering {
	if c.offerings == nil {
		return nil
	}
	return c.offerings.Offering(id)
}
