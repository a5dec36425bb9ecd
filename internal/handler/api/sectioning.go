package api

import (
	"net/http"
	"strconv"

	domain "course-sectioning/internal/domain/sectioning"
	reqdto "course-sectioning/internal/handler/dto/request"
	resdto "course-sectioning/internal/handler/dto/response"
	"course-sectioning/internal/handler/httperr"
	"course-sectioning/internal/handler/middleware"
	"course-sectioning/internal/pkg/errs"
	"course-sectioning/internal/usecase/queries"
	"course-sectioning/internal/usecase/sectioning"

	"github.com/gin-gonic/gin"
)

type SectioningHandler struct {
	engine sectioning.Engine
	spaces queries.ExpectedSpaceQueries
}

func NewSectioningHandler(engine sectioning.Engine, spaces queries.ExpectedSpaceQueries) *SectioningHandler {
	return &SectioningHandler{engine: engine, spaces: spaces}
}

// @Summary Check offerings
// @Description Run one wait-list resectioning pass over the given offerings
// @Tags sectioning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckOfferingsRequest true "Offerings to check"
// @Success 200 {object} resdto.CheckOfferingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/sectioning/check-offerings [post]
func (h *SectioningHandler) CheckOfferings(c *gin.Context) {
	var req reqdto.CheckOfferingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	actor := ""
	if p, ok := middleware.GetPrincipal(c); ok {
		actor = p.ExternalID
	}

	result, err := h.engine.CheckOfferings(c.Request.Context(), req.ToParams(actor))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Check offerings failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckResult(result))
}

// @Summary Is check needed
// @Description Decide whether an enrollment change frees a seat worth resectioning for
// @Tags sectioning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckNeededRequest true "Old and new enrollment"
// @Success 200 {object} resdto.CheckNeededResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/sectioning/check-needed [post]
func (h *SectioningHandler) CheckNeeded(c *gin.Context) {
	var req reqdto.CheckNeededRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.New != nil && req.New.OfferingID != req.Old.OfferingID {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Enrollments must belong to the same offering", nil)
		return
	}

	var (
		decision domain.TriggerDecision
		err      error
	)
	if req.New == nil && req.LookupCurrent {
		decision, err = h.engine.IsCheckNeededForStudent(c.Request.Context(), req.Old.ToDomain())
	} else {
		decision, err = h.engine.IsCheckNeeded(c.Request.Context(), req.Old.ToDomain(), req.New.ToDomain())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Check failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTriggerDecision(decision))
}

// @Summary Expected spaces
// @Description Get the persisted free-seat projection of an offering
// @Tags sectioning
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offering ID"
// @Success 200 {object} resdto.ExpectedSpacesResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/sectioning/offerings/{id}/expected-spaces [get]
func (h *SectioningHandler) ExpectedSpaces(c *gin.Context) {
	offeringID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || offeringID <= 0 {
		if err == nil {
			err = errs.ErrDomainValidation
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	views, err := h.spaces.ListByOffering(c.Request.Context(), offeringID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load expected spaces", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExpectedSpaces(offeringID, views))
}
