package v1

import (
	"fmt"
	"net/http"
	"time"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(companyOnly *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	company := companyOnly.Group("/company")
	{
		company.GET("/my-jobs", handler.MyJobs)
		company.GET("/applications", handler.Applications)
		company.GET("/applications/export", handler.Export)
		company.PATCH("/applications/:id/status", handler.UpdateStatus)
		company.GET("/stats", handler.Stats)
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func applicationFilter(c *gin.Context) domain.ApplicationFilter {
	return domain.ApplicationFilter{
		Status: c.Query("status"),
		JobID:  c.Query("jobId"),
	}
}

// MyJobs godoc
// @Summary      Own jobs with application counts
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /company/my-jobs [get]
// @Security     BearerAuth
func (h *DashboardHandler) MyJobs(c *gin.Context) {
	jobs, err := h.dashboardUC.MyJobs(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company jobs", jobs)
}

// Applications godoc
// @Summary      Applications to own jobs
// @Tags         company
// @Produce      json
// @Param        status  query  string  false  "pending, accepted or rejected"
// @Param        jobId   query  string  false  "Only this job"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      400  {object}  response.Response
// @Router       /company/applications [get]
// @Security     BearerAuth
func (h *DashboardHandler) Applications(c *gin.Context) {
	apps, err := h.dashboardUC.Applications(c.Request.Context(), identity(c).UserID, applicationFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company applications", apps)
}

// Export godoc
// @Summary      Export applications as XLSX
// @Tags         company
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "pending, accepted or rejected"
// @Param        jobId   query  string  false  "Only this job"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /company/applications/export [get]
// @Security     BearerAuth
func (h *DashboardHandler) Export(c *gin.Context) {
	data, err := h.dashboardUC.ExportApplications(c.Request.Context(), identity(c).UserID, applicationFilter(c))
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("applications-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// UpdateStatus godoc
// @Summary      Change an application's status
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "pending, accepted or rejected"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /company/applications/{id}/status [patch]
// @Security     BearerAuth
func (h *DashboardHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bind(c, &req) {
		return
	}

	app, err := h.dashboardUC.UpdateApplicationStatus(c.Request.Context(), identity(c).UserID, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Stats godoc
// @Summary      Dashboard counters
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyStats}
// @Router       /company/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.Stats(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company stats", stats)
}
