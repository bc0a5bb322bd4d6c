package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, companyOnly *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	owner := companyOnly.Group("/jobs")
	{
		owner.POST("/create", handler.Create)
		owner.PUT("/:id", handler.Update)
	}

	// Public listings only ever return active jobs
	jobs := public.Group("/jobs")
	{
		jobs.GET("/list", handler.List)
		jobs.GET("/:id", handler.GetByID)
	}
}

type CreateJobRequest struct {
	Title            string `json:"title" form:"title" binding:"required,max=200,no_emoji"`
	Description      string `json:"description" form:"description" binding:"required,max=10000"`
	Category         string `json:"category" form:"category" binding:"required"`
	City             string `json:"city" form:"city" binding:"required,max=100"`
	Salary           string `json:"salary" form:"salary" binding:"omitempty,max=100"`
	Experience       string `json:"experience" form:"experience" binding:"omitempty,max=100"`
	Requirements     string `json:"requirements" form:"requirements" binding:"omitempty,max=10000"`
	Responsibilities string `json:"responsibilities" form:"responsibilities" binding:"omitempty,max=10000"`
}

// UpdateJobRequest is a partial update; omitted fields are unchanged.
type UpdateJobRequest struct {
	Title            *string `json:"title" form:"title" binding:"omitempty,max=200,no_emoji"`
	Description      *string `json:"description" form:"description" binding:"omitempty,max=10000"`
	Category         *string `json:"category" form:"category"`
	City             *string `json:"city" form:"city" binding:"omitempty,max=100"`
	Salary           *string `json:"salary" form:"salary" binding:"omitempty,max=100"`
	Experience       *string `json:"experience" form:"experience" binding:"omitempty,max=100"`
	Requirements     *string `json:"requirements" form:"requirements" binding:"omitempty,max=10000"`
	Responsibilities *string `json:"responsibilities" form:"responsibilities" binding:"omitempty,max=10000"`
	IsActive         *bool   `json:"isActive" form:"isActive"`
}

// Create godoc
// @Summary      Create a job
// @Description  JSON body, or multipart form with an optional pdf file (<=10MB)
// @Tags         jobs
// @Accept       json,mpfd
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/create [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bind(c, &req) {
		return
	}

	pdf, err := formFile(c, "pdf", security.PurposeJobPDF)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.Create(c.Request.Context(), identity(c).UserID, domain.JobInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		City:             req.City,
		Salary:           nonEmpty(req.Salary),
		Experience:       nonEmpty(req.Experience),
		Requirements:     nonEmpty(req.Requirements),
		Responsibilities: nonEmpty(req.Responsibilities),
		PDF:              pdf,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update own job
// @Description  Partial update; isActive=false closes the job to new applications
// @Tags         jobs
// @Accept       json,mpfd
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if !bind(c, &req) {
		return
	}

	pdf, err := formFile(c, "pdf", security.PurposeJobPDF)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), identity(c).UserID, c.Param("id"), domain.JobUpdate{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		City:             req.City,
		Salary:           req.Salary,
		Experience:       req.Experience,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		IsActive:         req.IsActive,
		PDF:              pdf,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// List godoc
// @Summary      List active jobs
// @Tags         jobs
// @Produce      json
// @Param        category  query  string  false  "Category"  Enums(IT, MARKETING, SALES, FINANCE, DESIGN, ENGINEERING, EDUCATION, HEALTHCARE, OTHER)
// @Param        city      query  string  false  "City (case-insensitive)"
// @Param        search    query  string  false  "Matches title, description or company name"
// @Param        limit     query  int     false  "Page size (default 50, max 100)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      400  {object}  response.Response
// @Router       /jobs/list [get]
func (h *JobHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.Error(err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.ListActive(c.Request.Context(), domain.JobFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", jobs)
}

// GetByID godoc
// @Summary      Job detail
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job", job)
}
