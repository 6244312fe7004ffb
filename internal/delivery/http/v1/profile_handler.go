package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	// Public employer card for job listings.
	public.GET("/employers/:id", handler.GetPublicEmployer)

	jobSeeker := protected.Group("/jobseekers/profile")
	jobSeeker.Use(requireRole(domain.RoleJobSeeker))
	{
		jobSeeker.GET("", handler.GetJobSeekerProfile)
		jobSeeker.PUT("", handler.UpdateJobSeekerProfile)
	}

	employer := protected.Group("/employers/profile")
	employer.Use(requireRole(domain.RoleEmployer))
	{
		employer.GET("", handler.GetEmployerProfile)
		employer.PUT("", handler.UpdateEmployerProfile)
	}
}

type UpdateJobSeekerProfileRequest struct {
	Resume     string              `json:"resume"`
	Skills     []string            `json:"skills"`
	Education  []domain.Education  `json:"education"`
	Experience []domain.Experience `json:"experience"`
	Bio        *string             `json:"bio"`
	Location   *string             `json:"location"`
	Website    *string             `json:"website"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	Industry    string  `json:"industry" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Website     *string `json:"website"`
	Location    string  `json:"location" binding:"required"`
	CompanySize string  `json:"company_size" binding:"required"`
}

// GetJobSeekerProfile godoc
// @Summary      Get own job seeker profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobseekers/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetJobSeekerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetJobSeekerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job seeker profile", profile)
}

// UpdateJobSeekerProfile godoc
// @Summary      Update own job seeker profile
// @Description  The profile updated is always the caller's own; any ids in the body are ignored.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateJobSeekerProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobseekers/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateJobSeekerProfile(c *gin.Context) {
	var req UpdateJobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	profile := &domain.JobSeekerProfile{
		UserID:     c.GetString(string(domain.KeyUserID)),
		Resume:     req.Resume,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
		Bio:        req.Bio,
		Location:   req.Location,
		Website:    req.Website,
	}

	updated, err := h.profileUC.UpdateJobSeekerProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// GetEmployerProfile godoc
// @Summary      Get own employer profile
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employers/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetEmployerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// UpdateEmployerProfile godoc
// @Summary      Update own employer profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateEmployerProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /employers/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	var req UpdateEmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	profile := &domain.EmployerProfile{
		UserID:      c.GetString(string(domain.KeyUserID)),
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		CompanySize: req.CompanySize,
	}

	updated, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// GetPublicEmployer godoc
// @Summary      Public employer card
// @Description  Company details shown alongside job listings. No auth required.
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Employer profile ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [get]
func (h *ProfileHandler) GetPublicEmployer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid employer id"))
		return
	}

	profile, err := h.profileUC.GetPublicEmployer(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer", profile)
}
