package sectioning

import "course-sectioning/internal/domain/offering"

// ExpectedSpace is the projected number of free seats of one section.
// Available is offering.Unlimited for sections without a limit.
type ExpectedSpace struct {
	SectionID int64 `json:"section_id"`
	Available int   `json:"available"`
}

// ComputeExpectedSpaces projects free seats for every section of the offering
// from the live enrollment counts. Over-enrolled sections report zero.
func ComputeExpectedSpaces(off *offering.Offering, counts EnrollmentCounter) []ExpectedSpace {
	if off == nil {
		return nil
	}
	sections := off.Sections()
	out := make([]ExpectedSpace, 0, len(sections))
	for _, s := range sections {
		available := offering.Unlimited
		if s.HasLimit() {
			available = max(s.Limit-counts.CountForSection(s.ID), 0)
		}
		out = append(out, ExpectedSpace{SectionID: s.ID, Available: available})
	}
	return out
}
