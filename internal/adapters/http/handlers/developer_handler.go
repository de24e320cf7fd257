package handlers

import (
	"dmaker/internal/core/domain"
	"dmaker/internal/core/services"
	"dmaker/internal/pkg/pagination"
	"dmaker/internal/pkg/response"
	"dmaker/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// DeveloperHandler handles roster endpoints
type DeveloperHandler struct {
	developerService *services.DeveloperService
}

// NewDeveloperHandler creates a new developer handler
func NewDeveloperHandler(developerService *services.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{
		developerService: developerService,
	}
}

// CreateDeveloperRequest represents create developer request
type CreateDeveloperRequest struct {
	DeveloperLevel     domain.Level     `json:"developerLevel" validate:"required,oneof=JUNIOR JUNGLE SENIOR"`
	DeveloperSkillType domain.SkillType `json:"developerSkillType" validate:"required,oneof=FRONT_END BACK_END FULL_STACK DATA_ENGINEER"`
	ExperienceYears    *int             `json:"experienceYears" validate:"required,min=0,max=20"`
	MemberID           string           `json:"memberId" validate:"required,min=3,max=50"`
	Name               string           `json:"name" validate:"required,min=3,max=20"`
	Age                *int             `json:"age,omitempty" validate:"omitempty,min=18"`
}

// EditDeveloperRequest represents edit developer request
type EditDeveloperRequest struct {
	DeveloperLevel     domain.Level     `json:"developerLevel" validate:"required,oneof=JUNIOR JUNGLE SENIOR"`
	DeveloperSkillType domain.SkillType `json:"developerSkillType" validate:"required,oneof=FRONT_END BACK_END FULL_STACK DATA_ENGINEER"`
	ExperienceYears    *int             `json:"experienceYears" validate:"required,min=0,max=20"`
}

// parseBody decodes and validates a JSON body; any failure is INVALID_REQUEST
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewError(domain.CodeInvalidRequest, "invalid request body")
	}
	if err := validator.Struct(out); err != nil {
		return domain.NewError(domain.CodeInvalidRequest, err.Error())
	}
	return nil
}

// List lists employed developers
// @Summary List employed developers
// @Description Returns every developer whose status is EMPLOYED
// @Tags Developers
// @Produce json
// @Success 200 {array} services.DeveloperSummary
// @Failure 500 {object} response.ErrorResponse
// @Router /developers [get]
func (h *DeveloperHandler) List(c *fiber.Ctx) error {
	summaries, err := h.developerService.ListEmployed(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, summaries)
}

// Get gets a developer's full detail
// @Summary Get developer detail
// @Description Returns the full record of a developer, employed or retired
// @Tags Developers
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} services.DeveloperDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /developer/{memberId} [get]
func (h *DeveloperHandler) Get(c *fiber.Ctx) error {
	detail, err := h.developerService.GetDetail(c.Context(), c.Params("memberId"))
	if err != nil {
		return err
	}
	return response.Success(c, detail)
}

// Create creates a new developer
// @Summary Create developer
// @Description Registers a new EMPLOYED developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param body body CreateDeveloperRequest true "Developer data"
// @Success 201 {object} services.CreateDeveloperResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /create-developer [post]
func (h *DeveloperHandler) Create(c *fiber.Ctx) error {
	var req CreateDeveloperRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	input := &services.CreateDeveloperInput{
		Level:           req.DeveloperLevel,
		SkillType:       req.DeveloperSkillType,
		ExperienceYears: *req.ExperienceYears,
		MemberID:        req.MemberID,
		Name:            req.Name,
		Age:             req.Age,
	}

	created, err := h.developerService.CreateDeveloper(c.Context(), input)
	if err != nil {
		return err
	}
	return response.Created(c, created)
}

// Edit edits a developer's level, skill type and experience
// @Summary Edit developer
// @Description Replaces level, skill type and experience years of a developer
// @Tags Developers
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param body body EditDeveloperRequest true "New values"
// @Success 200 {object} services.DeveloperDetail
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /developer/{memberId} [put]
func (h *DeveloperHandler) Edit(c *fiber.Ctx) error {
	var req EditDeveloperRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	input := &services.EditDeveloperInput{
		Level:           req.DeveloperLevel,
		SkillType:       req.DeveloperSkillType,
		ExperienceYears: *req.ExperienceYears,
	}

	detail, err := h.developerService.EditDeveloper(c.Context(), c.Params("memberId"), input)
	if err != nil {
		return err
	}
	return response.Success(c, detail)
}

// Retire retires a developer
// @Summary Retire developer
// @Description Marks the developer RETIRED and archives it; the record is kept
// @Tags Developers
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} services.DeveloperDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /developer/{memberId} [delete]
func (h *DeveloperHandler) Retire(c *fiber.Ctx) error {
	detail, err := h.developerService.RetireDeveloper(c.Context(), c.Params("memberId"))
	if err != nil {
		return err
	}
	return response.Success(c, detail)
}

// ListRetired lists the retired archive
// @Summary List retired developers
// @Description Paginated archive of retirements, newest first
// @Tags Developers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} pagination.Response
// @Router /retired-developers [get]
func (h *DeveloperHandler) ListRetired(c *fiber.Ctx) error {
	page := pagination.FromQuery(c)

	out, err := h.developerService.ListRetired(c.Context(), page.Number, page.Limit)
	if err != nil {
		return err
	}
	return response.Success(c, out)
}
