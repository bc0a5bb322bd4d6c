package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/usecase"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

func NewUploadHandler(authed *gin.RouterGroup, uploadUC usecase.UploadUsecase) {
	handler := &UploadHandler{uploadUC: uploadUC}

	authed.POST("/video/upload", handler.UploadVideo)
	authed.POST("/cv/upload", handler.UploadCV)
}

type UploadResponse struct {
	URL string `json:"url"`
}

// UploadVideo godoc
// @Summary      Upload a video
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file (<=100MB)"
// @Success      200    {object}  response.Response{data=UploadResponse}
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /video/upload [post]
// @Security     BearerAuth
func (h *UploadHandler) UploadVideo(c *gin.Context) {
	h.upload(c, "video", security.PurposeVideo)
}

// UploadCV godoc
// @Summary      Upload a CV
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv   formData  file  true  "PDF file (<=10MB)"
// @Success      200  {object}  response.Response{data=UploadResponse}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cv/upload [post]
// @Security     BearerAuth
func (h *UploadHandler) UploadCV(c *gin.Context) {
	h.upload(c, "cv", security.PurposeCV)
}

func (h *UploadHandler) upload(c *gin.Context, field string, purpose security.UploadPurpose) {
	file, err := formFile(c, field, purpose)
	if err != nil {
		c.Error(err)
		return
	}
	if file == nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	url, err := h.uploadUC.Upload(c.Request.Context(), purpose, file)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File uploaded", UploadResponse{URL: url})
}
