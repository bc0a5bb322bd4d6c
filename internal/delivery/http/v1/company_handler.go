package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, companyOnly *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	owner := companyOnly.Group("/companies")
	{
		owner.POST("/create", handler.Upsert)
		owner.GET("/me", handler.GetMine)
	}

	companies := public.Group("/companies")
	{
		companies.GET("/list", handler.List)
		companies.GET("/:id", handler.GetByID)
	}
}

type CompanyRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200,no_emoji"`
	Description string `json:"description" form:"description" binding:"omitempty,max=5000"`
	Website     string `json:"website" form:"website" binding:"omitempty,url,max=500"`
	City        string `json:"city" form:"city" binding:"omitempty,max=100"`
	Phone       string `json:"phone" form:"phone" binding:"omitempty,valid_phone"`
	Email       string `json:"email" form:"email" binding:"omitempty,email,max=255"`
}

// Upsert godoc
// @Summary      Create or update own company profile
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Company name"
// @Param        description  formData  string  false  "Description"
// @Param        website      formData  string  false  "Website"
// @Param        city         formData  string  false  "City"
// @Param        phone        formData  string  false  "Phone"
// @Param        email        formData  string  false  "Email"
// @Param        logo         formData  file    false  "Logo image (<=5MB)"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /companies/create [post]
// @Security     BearerAuth
func (h *CompanyHandler) Upsert(c *gin.Context) {
	var req CompanyRequest
	if !bind(c, &req) {
		return
	}

	logo, err := formFile(c, "logo", security.PurposeLogo)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.Upsert(c.Request.Context(), identity(c), domain.CompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		City:        req.City,
		Phone:       req.Phone,
		Email:       req.Email,
		Logo:        logo,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile saved", company)
}

// GetMine godoc
// @Summary      Own company profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/me [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetMine(c *gin.Context) {
	company, err := h.companyUC.GetMine(c.Request.Context(), identity(c).UserID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Company}
// @Router       /companies/list [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies", companies)
}

// GetByID godoc
// @Summary      Company detail
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companyUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company", company)
}
