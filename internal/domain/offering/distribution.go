package offering

import "slices"

type DistributionType string

const (
	// DistributionCanOverlap lets the listed sections meet at the same time.
	DistributionCanOverlap DistributionType = "can-overlap"
	// DistributionLinked ties the listed sections together; it does not relax overlaps.
	DistributionLinked DistributionType = "linked"
)

type Distribution struct {
	ID         int64            `yaml:"id"`
	Type       DistributionType `yaml:"type"`
	SectionIDs []int64          `yaml:"sections"`
}

// AllowsOverlap reports whether the constraint explicitly permits sections a and b to overlap.
func (d *Distribution) AllowsOverlap(a, b int64) bool {
	if d == nil || d.Type != DistributionCanOverlap {
		return false
	}
	return slices.Contains(d.SectionIDs, a) && slices.Contains(d.SectionIDs, b)
}
