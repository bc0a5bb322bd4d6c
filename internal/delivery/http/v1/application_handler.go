package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the candidate side of applications
func NewApplicationHandler(candidateOnly *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := candidateOnly.Group("/applications")
	{
		applications.POST("/apply/:jobId", handler.Apply)
		applications.GET("/my-applications", handler.MyApplications)
		applications.GET("/count", handler.Count)
	}
}

type ApplyRequest struct {
	CoverLetter *string `json:"coverLetter" form:"coverLetter" binding:"omitempty,max=5000"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  The job must exist and be active; one application per job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      string        true   "Job ID"
// @Param        body   body      ApplyRequest  false  "Optional cover letter"
// @Success      201    {object}  response.Response{data=domain.Application}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /applications/apply/{jobId} [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	// The body is optional
	if c.Request.ContentLength != 0 && !bind(c, &req) {
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), identity(c).UserID, c.Param("jobId"), req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      Own applications
// @Description  Newest first, each with its job and company
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	apps, err := h.applicationUC.MyApplications(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications", apps)
}

// Count godoc
// @Summary      Count own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=CountResponse}
// @Router       /applications/count [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Count(c *gin.Context) {
	count, err := h.applicationUC.CountMine(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application count", CountResponse{Count: count})
}

type CountResponse struct {
	Count int `json:"count"`
}
