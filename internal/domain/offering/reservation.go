package offering

import (
	"slices"
	"time"
)

type ReservationType string

const (
	ReservationIndividual ReservationType = "individual"
	ReservationGroup      ReservationType = "group"
	ReservationCourse     ReservationType = "course"
)

// StudentRef is the part of a student a reservation needs to decide applicability.
type StudentRef interface {
	StudentID() int64
	GroupCodes() []string
}

type Reservation struct {
	ID           int64           `yaml:"id"`
	Type         ReservationType `yaml:"type"`
	Override     bool            `yaml:"override"`
	AllowOverlap bool            `yaml:"allow_overlap"`
	ExpiresAt    *time.Time      `yaml:"expires_at"`
	Limit        int             `yaml:"limit"`
	StudentIDs   []int64         `yaml:"students"`
	GroupCodes   []string        `yaml:"groups"`
	ConfigIDs    []int64         `yaml:"configs"`
	SectionIDs   []int64         `yaml:"sections"`
}

func (r *Reservation) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}

func (r *Reservation) AppliesTo(s StudentRef) bool {
	if s == nil {
		return false
	}
	switch r.Type {
	case ReservationIndividual:
		return slices.Contains(r.StudentIDs, s.StudentID())
	case ReservationGroup:
		for _, g := range s.GroupCodes() {
			if slices.Contains(r.GroupCodes, g) {
				return true
			}
		}
		return false
	case ReservationCourse:
		return true
	default:
		return false
	}
}

// AllowsConfig reports whether the reservation covers the config; no restriction covers all.
func (r *Reservation) AllowsConfig(configID int64) bool {
	return len(r.ConfigIDs) == 0 || slices.Contains(r.ConfigIDs, configID)
}

func (r *Reservation) AllowsSection(sectionID int64) bool {
	return len(r.SectionIDs) == 0 || slices.Contains(r.SectionIDs, sectionID)
}
