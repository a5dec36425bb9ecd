package student

import (
	"errors"
	"slices"
	"time"
)

var ErrRequestNotFound = errors.New("request not found")

type WaitListMode int

const (
	WaitListModeNone WaitListMode = iota
	WaitListModeWaitList
	WaitListModeNoSubs
)

// Student is a snapshot of one student and the ordered list of requests.
// A nil LastChange means the request set is still system-authoritative.
type Student struct {
	ID         int64      `yaml:"id" json:"id"`
	ExternalID string     `yaml:"external_id" json:"external_id"`
	Name       string     `yaml:"name" json:"name"`
	Groups     []string   `yaml:"groups" json:"groups,omitempty"`
	Priority   int        `yaml:"priority" json:"priority"`
	LastChange *time.Time `yaml:"last_change" json:"last_change,omitempty"`
	Requests   []*Request `yaml:"requests" json:"requests"`
}

func (s *Student) StudentID() int64     { return s.ID }
func (s *Student) GroupCodes() []string { return s.Groups }

// SortRequests orders requests by priority; ties keep insertion order.
func (s *Student) SortRequests() {
	slices.SortStableFunc(s.Requests, func(a, b *Request) int {
		switch {
		case a.Alternative != b.Alternative:
			if a.Alternative {
				return 1
			}
			return -1
		case a.Priority < b.Priority:
			return -1
		case a.Priority > b.Priority:
			return 1
		default:
			return 0
		}
	})
}

func (s *Student) Request(requestID int64) (*Request, error) {
	for _, r := range s.Requests {
		if r.ID == requestID {
			return r, nil
		}
	}
	return nil, ErrRequestNotFound
}

// EnrollmentFor returns the student's current enrollment in the offering, if any.
func (s *Student) EnrollmentFor(offeringID int64) *Enrollment {
	if s == nil {
		return nil
	}
	for _, r := range s.Requests {
		if e := r.Enrollment(); e != nil && e.OfferingID == offeringID {
			return e
		}
	}
	return nil
}

// CanAssign reports whether the request may receive an enrollment without
// exceeding the number of courses the student asked for. Primary requests can
// always be assigned; an alternative only fills in for a primary course request
// that is neither enrolled nor, in wait-list mode, waiting on a wait-list.
func (s *Student) CanAssign(req *Request, mode WaitListMode) bool {
	if req.Enrollment() != nil {
		return true
	}
	if !req.Alternative {
		return true
	}
	open := 0
	for _, r := range s.Requests {
		if !r.IsCourseRequest() || r.Alternative {
			continue
		}
		if r.Enrollment() != nil {
			continue
		}
		if mode == WaitListModeWaitList && r.Waitlist {
			continue
		}
		open++
	}
	for _, r := range s.Requests {
		if r.IsCourseRequest() && r.Alternative && r.ID != req.ID && r.Enrollment() != nil {
			open--
		}
	}
	return open > 0
}
