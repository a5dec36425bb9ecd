package offering

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrDuplicateSection = errors.New("section belongs to more than one subpart")
	ErrDuplicateSubpart = errors.New("subpart belongs to more than one config")
	ErrDuplicateConfig  = errors.New("duplicate config")
	ErrInvalidOffering  = errors.New("invalid offering")
)

// Unlimited marks a section, config or course without a seat limit.
const Unlimited = -1

// Offering is an immutable snapshot of one schedulable course offering.
// Sections, subparts and configs are indexed by id on construction.
type Offering struct {
	id            int64
	name          string
	waitList      bool
	courses       []*Course
	configs       []*Config
	distributions []*Distribution
	reservations  []*Reservation

	courseByID  map[int64]*Course
	configByID  map[int64]*Config
	subpartByID map[int64]*Subpart
	sectionByID map[int64]*Section
}

type Course struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Limit int    `yaml:"limit"`
}

type Config struct {
	ID       int64      `yaml:"id"`
	Name     string     `yaml:"name"`
	Limit    int        `yaml:"limit"`
	Subparts []*Subpart `yaml:"subparts"`
}

type Subpart struct {
	ID       int64      `yaml:"id"`
	Name     string     `yaml:"name"`
	ConfigID int64      `yaml:"-"`
	Sections []*Section `yaml:"sections"`
}

type Section struct {
	ID        int64         `yaml:"id"`
	Name      string        `yaml:"name"`
	SubpartID int64         `yaml:"-"`
	Limit     int           `yaml:"limit"`
	Cancelled bool          `yaml:"cancelled"`
	Time      *TimeLocation `yaml:"time"`
}

func (s *Section) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("section-%d", s.ID)
}

// HasLimit reports whether the section caps enrollment.
func (s *Section) HasLimit() bool { return s.Limit >= 0 }

// IsOverlapping reports whether the two sections meet at the same time and no
// distribution constraint lets them overlap.
func (s *Section) IsOverlapping(distributions []*Distribution, other *Section) bool {
	if s == nil || other == nil || s.ID == other.ID {
		return false
	}
	if !s.Time.Overlaps(other.Time) {
		return false
	}
	for _, d := range distributions {
		if d.AllowsOverlap(s.ID, other.ID) {
			return false
		}
	}
	return true
}

// IsOverlappingAny reports whether the section overlaps any of the given sections.
func (s *Section) IsOverlappingAny(distributions []*Distribution, others []*Section) bool {
	for _, o := range others {
		if s.IsOverlapping(distributions, o) {
			return true
		}
	}
	return false
}

type Params struct {
	ID            int64
	Name          string
	WaitList      bool
	Courses       []*Course
	Configs       []*Config
	Distributions []*Distribution
	Reservations  []*Reservation
}

// NewOffering validates the config/subpart/section tree and builds the id indexes.
func NewOffering(n Params) (*Offering, error) {
	o := &Offering{
		id:            n.ID,
		name:          n.Name,
		waitList:      n.WaitList,
		courses:       n.Courses,
		configs:       n.Configs,
		distributions: n.Distributions,
		reservations:  n.Reservations,
		courseByID:    make(map[int64]*Course, len(n.Courses)),
		configByID:    make(map[int64]*Config, len(n.Configs)),
		subpartByID:   make(map[int64]*Subpart),
		sectionByID:   make(map[int64]*Section),
	}
	if n.ID == 0 {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidOffering)
	}

	for _, c := range n.Courses {
		o.courseByID[c.ID] = c
	}
	for _, cfg := range n.Configs {
		if _, dup := o.configByID[cfg.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateConfig, cfg.ID)
		}
		o.configByID[cfg.ID] = cfg
		for _, sp := range cfg.Subparts {
			if _, dup := o.subpartByID[sp.ID]; dup {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateSubpart, sp.ID)
			}
			sp.ConfigID = cfg.ID
			o.subpartByID[sp.ID] = sp
			for _, sec := range sp.Sections {
				if _, dup := o.sectionByID[sec.ID]; dup {
					return nil, fmt.Errorf("%w: %d", ErrDuplicateSection, sec.ID)
				}
				sec.SubpartID = sp.ID
				o.sectionByID[sec.ID] = sec
			}
		}
	}
	return o, nil
}

func (o *Offering) ID() int64                      { return o.id }
func (o *Offering) Name() string                   { return o.name }
func (o *Offering) IsWaitList() bool               { return o.waitList }
func (o *Offering) Courses() []*Course             { return o.courses }
func (o *Offering) Configs() []*Config             { return o.configs }
func (o *Offering) Distributions() []*Distribution { return o.distributions }
func (o *Offering) Reservations() []*Reservation   { return o.reservations }

func (o *Offering) Course(id int64) *Course   { return o.courseByID[id] }
func (o *Offering) Config(id int64) *Config   { return o.configByID[id] }
func (o *Offering) Subpart(id int64) *Subpart { return o.subpartByID[id] }
func (o *Offering) Section(id int64) *Section { return o.sectionByID[id] }

// Sections returns every section of the offering ordered by id.
func (o *Offering) Sections() []*Section {
	out := make([]*Section, 0, len(o.sectionByID))
	for _, s := range o.sectionByID {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *Section) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// SectionsOf resolves section ids, silently dropping ids unknown to the offering.
func (o *Offering) SectionsOf(sectionIDs []int64) []*Section {
	out := make([]*Section, 0, len(sectionIDs))
	for _, id := range sectionIDs {
		if s := o.sectionByID[id]; s != nil {
			out = append(out, s)
		}
	}
	return out
}

// HasReservations counts every reservation, including overrides and expired ones.
func (o *Offering) HasReservations() bool { return len(o.reservations) > 0 }

// HasActiveReservation reports whether any reservation is neither an override nor expired.
func (o *Offering) HasActiveReservation(now time.Time) bool {
	for _, r := range o.reservations {
		if r.Override || r.IsExpired(now) {
			continue
		}
		return true
	}
	return false
}

// IsAllowOverlap reports whether a reservation applicable to the student lets
// the given assignment overlap with other classes.
func (o *Offering) IsAllowOverlap(student StudentRef, configID int64, sections []*Section, now time.Time) bool {
	for _, r := range o.reservations {
		if !r.AllowOverlap || r.IsExpired(now) || !r.AppliesTo(student) {
			continue
		}
		if !r.AllowsConfig(configID) {
			continue
		}
		ok := true
		for _, s := range sections {
			if !r.AllowsSection(s.ID) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
