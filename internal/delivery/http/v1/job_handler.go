package v1

import (
	"net/http"
	"strconv"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public listing and detail. Only open jobs unless the filter says
	// otherwise; there is nothing sensitive in a job row.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}
	public.GET("/employers/:id/jobs", handler.ListByEmployer)

	// Mutations are employer-only; ownership is enforced below the
	// handler from the caller's own profile.
	employerJobs := protected.Group("/jobs")
	employerJobs.Use(requireRole(domain.RoleEmployer))
	{
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
	}

	myJobs := protected.Group("/employers/jobs")
	myJobs.Use(requireRole(domain.RoleEmployer))
	{
		myJobs.GET("", handler.ListMine)
	}
}

type JobRequest struct {
	Title               string     `json:"title" binding:"required"`
	Description         string     `json:"description" binding:"required"`
	Location            string     `json:"location" binding:"required"`
	JobType             string     `json:"job_type" binding:"required,oneof=Full-time Part-time Contract Internship Temporary"`
	SalaryMin           *float64   `json:"salary_min"`
	SalaryMax           *float64   `json:"salary_max"`
	Skills              []string   `json:"skills"`
	Status              string     `json:"status" binding:"omitempty,oneof=open closed draft"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:               r.Title,
		Description:         r.Description,
		Location:            r.Location,
		JobType:             r.JobType,
		SalaryMin:           r.SalaryMin,
		SalaryMax:           r.SalaryMax,
		Skills:              r.Skills,
		Status:              r.Status,
		ApplicationDeadline: r.ApplicationDeadline,
	}
}

// List godoc
// @Summary      List jobs
// @Description  Public job listing with allow-listed filters combined by AND.
// @Tags         jobs
// @Produce      json
// @Param        status     query  string  false  "Job status"
// @Param        job_type   query  string  false  "Job type"
// @Param        location   query  string  false  "Location substring"
// @Param        skill      query  string  false  "Required skill"
// @Param        search     query  string  false  "Title/description search"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filter domain.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}
	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Job detail with the employer's public company card.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid job id"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Create godoc
// @Summary      Create a job
// @Description  Creates a job owned by the caller's employer profile. Any employer id in the body is ignored.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Full update of an owned job. Returns 404 for unknown ids and 403 for jobs owned by another employer.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid job id"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()
	job.ID = id

	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Deletes an owned job and, by cascade, its applications.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ListMine godoc
// @Summary      List own jobs
// @Description  All jobs owned by the caller's employer profile, any status.
// @Tags         jobs
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListMyJobs(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My jobs", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListByEmployer godoc
// @Summary      List an employer's open jobs
// @Description  Public listing of one employer's jobs.
// @Tags         jobs
// @Produce      json
// @Param        id         path   int  true   "Employer profile ID"
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /employers/{id}/jobs [get]
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	employerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid employer id"))
		return
	}
	page, pageSize := pagination(c)

	jobs, total, err := h.jobUC.ListEmployerJobs(c.Request.Context(), employerID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer jobs", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}
