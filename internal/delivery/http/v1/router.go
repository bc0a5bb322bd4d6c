package v1

import (
	"humancapital-api/config"
	"humancapital-api/internal/delivery/http/middleware"
	"humancapital-api/internal/domain"
	"humancapital-api/internal/usecase"
	"humancapital-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	SavedJobUC    domain.SavedJobUsecase
	DashboardUC   domain.DashboardUsecase
	ProfileViewUC domain.ProfileViewUsecase
	UploadUC      usecase.UploadUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        middleware.TokenParser
	Config        *config.Config
	// Served under /uploads when media is stored on local disk
	LocalUploadsDir string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	cfg := deps.Config
	window := cfg.RateLimitWindow()

	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURLs, cfg.IsProduction())) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	if deps.LocalUploadsDir != "" {
		r.Static("/uploads", deps.LocalUploadsDir)
	}

	api := r.Group("/api")

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	NewHealthHandler(api, deps.HealthUC)

	authRoutes := api.Group("", middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(cfg.RateLimitAuthThreshold, window)))
	NewAuthHandler(authRoutes, deps.AuthUC)

	authed := api.Group("", middleware.Authenticate(deps.Tokens))
	candidateOnly := authed.Group("", middleware.Authorize(domain.RoleCandidate))
	companyOnly := authed.Group("", middleware.Authorize(domain.RoleCompany))
	optional := api.Group("", middleware.OptionalAuth(deps.Tokens))
	uploads := authed.Group("", middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window)))

	NewUserHandler(authed, deps.UserUC)
	NewCandidateHandler(api, candidateOnly, deps.CandidateUC)
	NewCompanyHandler(api, companyOnly, deps.CompanyUC)
	NewJobHandler(api, companyOnly, deps.JobUC)
	NewApplicationHandler(candidateOnly, deps.ApplicationUC)
	NewSavedJobHandler(candidateOnly, deps.SavedJobUC)
	NewDashboardHandler(companyOnly, deps.DashboardUC)
	NewProfileViewHandler(optional, candidateOnly, deps.ProfileViewUC)
	NewUploadHandler(uploads, deps.UploadUC)

	return r
}
