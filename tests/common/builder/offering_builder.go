//go:build unit || e2e

package builder

import (
	"course-sectioning/internal/domain/offering"
)

// Default ids of the offering built by NewOfferingBuilder.
const (
	OfferingID int64 = 1
	CourseID   int64 = 10
	ConfigID   int64 = 100
	SubpartID  int64 = 1000
	SectionA   int64 = 1
	SectionB   int64 = 2
)

type OfferingBuilder struct {
	ID            int64
	Name          string
	WaitList      bool
	Courses       []*offering.Course
	Configs       []*offering.Config
	Distributions []*offering.Distribution
	Reservations  []*offering.Reservation
}

// NewOfferingBuilder returns a wait-listed offering with one course, one
// config and two single-seat lecture sections that do not overlap.
func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		ID:       OfferingID,
		Name:     "MATH 101",
		WaitList: true,
		Courses: []*offering.Course{
			{ID: CourseID, Name: "MATH 101", Limit: offering.Unlimited},
		},
		Configs: []*offering.Config{
			{
				ID:    ConfigID,
				Name:  "Lecture",
				Limit: offering.Unlimited,
				Subparts: []*offering.Subpart{
					{
						ID:   SubpartID,
						Name: "Lec",
						Sections: []*offering.Section{
							Section(SectionA, 1, MWF(96, 12)),
							Section(SectionB, 1, TR(96, 18)),
						},
					},
				},
			},
		},
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

// WithID renumbers the offering only; course, config and section ids stay.
func (b *OfferingBuilder) WithID(id int64) *OfferingBuilder {
	b.ID = id
	return b
}

func (b *OfferingBuilder) WithWaitList(waitList bool) *OfferingBuilder {
	b.WaitList = waitList
	return b
}

// WithSectionLimit changes the limit of a section of any config.
func (b *OfferingBuilder) WithSectionLimit(sectionID int64, limit int) *OfferingBuilder {
	if s := b.section(sectionID); s != nil {
		s.Limit = limit
	}
	return b
}

func (b *OfferingBuilder) WithCancelled(sectionID int64) *OfferingBuilder {
	if s := b.section(sectionID); s != nil {
		s.Cancelled = true
	}
	return b
}

// WithSection appends a section to the given subpart.
func (b *OfferingBuilder) WithSection(subpartID int64, sec *offering.Section) *OfferingBuilder {
	for _, cfg := range b.Configs {
		for _, sp := range cfg.Subparts {
			if sp.ID == subpartID {
				sp.Sections = append(sp.Sections, sec)
			}
		}
	}
	return b
}

func (b *OfferingBuilder) WithConfig(cfg *offering.Config) *OfferingBuilder {
	b.Configs = append(b.Configs, cfg)
	return b
}

func (b *OfferingBuilder) WithReservation(r *offering.Reservation) *OfferingBuilder {
	b.Reservations = append(b.Reservations, r)
	return b
}

func (b *OfferingBuilder) WithDistribution(d *offering.Distribution) *OfferingBuilder {
	b.Distributions = append(b.Distributions, d)
	return b
}

func (b *OfferingBuilder) Build() (*offering.Offering, error) {
	return offering.NewOffering(offering.Params{
		ID:            b.ID,
		Name:          b.Name,
		WaitList:      b.WaitList,
		Courses:       b.Courses,
		Configs:       b.Configs,
		Distributions: b.Distributions,
		Reservations:  b.Reservations,
	})
}

// MustBuild panics on an invalid offering; builder defaults are always valid.
func (b *OfferingBuilder) MustBuild() *offering.Offering {
	off, err := b.Build()
	if err != nil {
		panic(err)
	}
	return off
}

func (b *OfferingBuilder) section(id int64) *offering.Section {
	for _, cfg := range b.Configs {
		for _, sp := range cfg.Subparts {
			for _, s := range sp.Sections {
				if s.ID == id {
					return s
				}
			}
		}
	}
	return nil
}

func Section(id int64, limit int, t *offering.TimeLocation) *offering.Section {
	return &offering.Section{ID: id, Limit: limit, Time: t}
}

// MWF meets Monday, Wednesday and Friday from slot start for length slots.
func MWF(start, length int) *offering.TimeLocation {
	return &offering.TimeLocation{Days: offering.Monday | offering.Wednesday | offering.Friday, StartSlot: start, Length: length}
}

// TR meets Tuesday and Thursday from slot start for length slots.
func TR(start, length int) *offering.TimeLocation {
	return &offering.TimeLocation{Days: offering.Tuesday | offering.Thursday, StartSlot: start, Length: length}
}
