package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(candidateOnly *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := candidateOnly.Group("/saved-jobs")
	{
		saved.POST("/save/:jobId", handler.Save)
		saved.DELETE("/unsave/:jobId", handler.Unsave)
		saved.GET("/my-saved", handler.MySaved)
		saved.GET("/count", handler.Count)
		saved.GET("/check/:jobId", handler.Check)
	}
}

// Save godoc
// @Summary      Save a job
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      201    {object}  response.Response{data=domain.SavedJob}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /saved-jobs/save/{jobId} [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	saved, err := h.savedJobUC.Save(c.Request.Context(), identity(c).UserID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", saved)
}

// Unsave godoc
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /saved-jobs/unsave/{jobId} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	if err := h.savedJobUC.Unsave(c.Request.Context(), identity(c).UserID, c.Param("jobId")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved", nil)
}

// MySaved godoc
// @Summary      Own saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SavedJob}
// @Router       /saved-jobs/my-saved [get]
// @Security     BearerAuth
func (h *SavedJobHandler) MySaved(c *gin.Context) {
	saved, err := h.savedJobUC.MySaved(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", saved)
}

// Count godoc
// @Summary      Count own saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=CountResponse}
// @Router       /saved-jobs/count [get]
// @Security     BearerAuth
func (h *SavedJobHandler) Count(c *gin.Context) {
	count, err := h.savedJobUC.CountMine(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved job count", CountResponse{Count: count})
}

// Check godoc
// @Summary      Whether a job is saved
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  response.Response
// @Router       /saved-jobs/check/{jobId} [get]
// @Security     BearerAuth
func (h *SavedJobHandler) Check(c *gin.Context) {
	saved, err := h.savedJobUC.IsSaved(c.Request.Context(), identity(c).UserID, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved status", gin.H{"saved": saved})
}
