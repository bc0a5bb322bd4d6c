package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/middleware"
	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileViewHandler struct {
	viewUC domain.ProfileViewUsecase
}

// NewProfileViewHandler registers the view recorder on optional auth: a bad
// or missing token records an anonymous view instead of failing.
func NewProfileViewHandler(optional, candidateOnly *gin.RouterGroup, viewUC domain.ProfileViewUsecase) {
	handler := &ProfileViewHandler{viewUC: viewUC}

	optional.POST("/profile-views/view/:candidateId", handler.Record)
	candidateOnly.GET("/profile-views/count/:candidateId", handler.Count)
}

// Record godoc
// @Summary      Record a profile view
// @Description  Anonymous when no valid token is sent
// @Tags         profile-views
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      201          {object}  response.Response{data=domain.ProfileView}
// @Failure      404          {object}  response.Response
// @Router       /profile-views/view/{candidateId} [post]
func (h *ProfileViewHandler) Record(c *gin.Context) {
	view, err := h.viewUC.Record(c.Request.Context(), c.Param("candidateId"), middleware.OptionalIdentity(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile view recorded", view)
}

// Count godoc
// @Summary      Profile view count
// @Description  Only the candidate owning the profile may read it
// @Tags         profile-views
// @Produce      json
// @Param        candidateId  path      string  true  "Candidate ID"
// @Success      200          {object}  response.Response{data=CountResponse}
// @Failure      403          {object}  response.Response
// @Router       /profile-views/count/{candidateId} [get]
// @Security     BearerAuth
func (h *ProfileViewHandler) Count(c *gin.Context) {
	count, err := h.viewUC.Count(c.Request.Context(), identity(c).UserID, c.Param("candidateId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile view count", CountResponse{Count: count})
}
