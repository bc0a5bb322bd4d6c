package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public, candidateOnly *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	owner := candidateOnly.Group("/candidates")
	{
		owner.POST("/create", handler.Upsert)
		owner.GET("/me", handler.GetMine)
	}

	candidates := public.Group("/candidates")
	{
		candidates.GET("/list", handler.List)
		candidates.GET("/:id", handler.GetByID)
	}
}

type CandidateRequest struct {
	FirstName    string   `json:"firstName" form:"firstName" binding:"required,max=100,valid_name"`
	LastName     string   `json:"lastName" form:"lastName" binding:"required,max=100,valid_name"`
	Email        string   `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone        string   `json:"phone" form:"phone" binding:"omitempty,valid_phone"`
	City         string   `json:"city" form:"city" binding:"omitempty,max=100"`
	Profession   string   `json:"profession" form:"profession" binding:"omitempty,max=150,no_emoji"`
	Bio          string   `json:"bio" form:"bio" binding:"omitempty,max=5000"`
	Skills       []string `json:"skills" form:"skills" binding:"omitempty"`
	PortfolioURL string   `json:"portfolioUrl" form:"portfolioUrl" binding:"omitempty,url,max=500"`
}

// Upsert godoc
// @Summary      Create or update own candidate profile
// @Description  Multipart form with profile fields and optional video (<=100MB) and cv (PDF, <=10MB) files
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName     formData  string  true   "First name"
// @Param        lastName      formData  string  true   "Last name"
// @Param        email         formData  string  false  "Contact email (defaults to account email)"
// @Param        phone         formData  string  false  "Phone"
// @Param        city          formData  string  false  "City"
// @Param        profession    formData  string  false  "Profession"
// @Param        bio           formData  string  false  "Bio"
// @Param        skills        formData  string  false  "Skills (JSON array, comma list or repeated field)"
// @Param        portfolioUrl  formData  string  false  "Portfolio URL"
// @Param        video         formData  file    false  "Video CV"
// @Param        cv            formData  file    false  "PDF CV"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates/create [post]
// @Security     BearerAuth
func (h *CandidateHandler) Upsert(c *gin.Context) {
	var req CandidateRequest
	if !bind(c, &req) {
		return
	}

	video, err := formFile(c, "video", security.PurposeVideo)
	if err != nil {
		c.Error(err)
		return
	}
	cv, err := formFile(c, "cv", security.PurposeCV)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.Upsert(c.Request.Context(), identity(c), domain.CandidateInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Profession:   req.Profession,
		Bio:          req.Bio,
		Skills:       skillsField(req.Skills),
		PortfolioURL: nonEmpty(req.PortfolioURL),
		Video:        video,
		CV:           cv,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile saved", candidate)
}

// GetMine godoc
// @Summary      Own candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMine(c *gin.Context) {
	candidate, err := h.candidateUC.GetMine(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", candidate)
}

// List godoc
// @Summary      List candidates
// @Description  Newest first. city is an exact case-insensitive match, profession a substring, search matches names, profession or skills
// @Tags         candidates
// @Produce      json
// @Param        city        query  string  false  "City"
// @Param        profession  query  string  false  "Profession contains"
// @Param        search      query  string  false  "Search term"
// @Param        limit       query  int     false  "Maximum results"
// @Success      200  {object}  response.Response{data=[]domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/list [get]
func (h *CandidateHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.Error(err)
		return
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), domain.CandidateFilter{
		City:       c.Query("city"),
		Profession: c.Query("profession"),
		Search:     c.Query("search"),
		Limit:      limit,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates", candidates)
}

// GetByID godoc
// @Summary      Candidate detail
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	candidate, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate", candidate)
}
