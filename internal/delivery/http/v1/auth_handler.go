package v1

import (
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=CANDIDATE COMPANY"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register
// @Description  Create a CANDIDATE or COMPANY account and return a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Registration details"
// @Success      201   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Failure      429   {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	security.DefaultLogger().LogRegistered(c.Request.Context(), result.User.ID, result.User.Role,
		c.ClientIP(), response.RequestID(c))
	response.Success(c, http.StatusCreated, "User registered successfully", result)
}

// Login godoc
// @Summary      Login
// @Description  Verify credentials and return a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  response.Response{data=domain.AuthResult}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, ok := apperror.As(err); ok && appErr.Code == http.StatusUnauthorized {
			security.DefaultLogger().LogLoginFailed(c.Request.Context(), req.Email, c.ClientIP(),
				c.GetHeader("User-Agent"), response.RequestID(c), "invalid_credentials")
		}
		c.Error(err)
		return
	}

	security.DefaultLogger().LogLoginSuccess(c.Request.Context(), result.User.ID, c.ClientIP(), response.RequestID(c))
	response.Success(c, http.StatusOK, "Login successful", result)
}
