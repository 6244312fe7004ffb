package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	seeker := protected.Group("")
	seeker.Use(requireRole(domain.RoleJobSeeker))
	{
		seeker.POST("/jobs/:id/applications", handler.Apply)
		seeker.GET("/applications", handler.ListMine)
		seeker.DELETE("/applications/:id", handler.Withdraw)
	}

	employer := protected.Group("")
	employer.Use(requireRole(domain.RoleEmployer))
	{
		employer.GET("/jobs/:id/applications", handler.ListForJob)
		employer.PUT("/applications/:id", handler.UpdateStatus)
	}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application for the caller's job seeker profile. Resume defaults to the profile resume when the body omits one.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      int               true  "Job ID"
// @Param        apply  body      domain.ApplyInput  true  "Application"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /jobs/{id}/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid job id"))
		return
	}

	var input domain.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), userID, jobID, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List own applications
// @Description  All applications made by the caller, newest first, with job and company names joined in.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Deletes the caller's own application. Applications owned by another seeker return 403.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid application id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.DeleteApplication(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Applications for one of the caller's own jobs. Jobs owned by another employer return 403.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Moves an application to a new status label and optionally attaches employer notes. Only the employer owning the job may update.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                       true  "Application ID"
// @Param        status  body      domain.StatusUpdateInput  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid application id"))
		return
	}

	var input domain.StatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
