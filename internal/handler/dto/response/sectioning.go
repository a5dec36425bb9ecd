package response

import (
	domain "course-sectioning/internal/domain/sectioning"
	"course-sectioning/internal/usecase/queries"
	"course-sectioning/internal/usecase/sectioning"
)

type CheckOfferingsResponse struct {
	Succeeded bool                        `json:"succeeded"`
	Skipped   string                      `json:"skipped,omitempty"`
	Offerings []sectioning.OfferingResult `json:"offerings"`
}

func FromCheckResult(r *sectioning.Result) *CheckOfferingsResponse {
	return &CheckOfferingsResponse{
		Succeeded: r.Succeeded,
		Skipped:   r.Skipped,
		Offerings: r.Offerings,
	}
}

type CheckNeededResponse struct {
	Needed bool   `json:"needed"`
	Reason string `json:"reason,omitempty"`
}

func FromTriggerDecision(d domain.TriggerDecision) *CheckNeededResponse {
	return &CheckNeededResponse{Needed: d.Needed, Reason: d.Reason}
}

type ExpectedSpacesResponse struct {
	OfferingID int64                       `json:"offering_id"`
	Sections   []queries.ExpectedSpaceView `json:"sections"`
}

func FromExpectedSpaces(offeringID int64, views []queries.ExpectedSpaceView) *ExpectedSpacesResponse {
	if views == nil {
		views = []queries.ExpectedSpaceView{}
	}
	return &ExpectedSpacesResponse{OfferingID: offeringID, Sections: views}
}
