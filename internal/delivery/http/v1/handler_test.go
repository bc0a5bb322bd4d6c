package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"humancapital-api/config"
	"humancapital-api/internal/delivery/http/response"
	v1 "humancapital-api/internal/delivery/http/v1"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/auth"
	"humancapital-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var tokens = auth.NewTokenManager("test-secret", time.Hour, "test")

func testConfig() *config.Config {
	return &config.Config{
		Environment:              "test",
		FrontendURLs:             []string{"http://localhost:3000"},
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 1000,
		RateLimitAuthThreshold:   1000,
		RateLimitUploadThreshold: 1000,
	}
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := tokens.Issue(userID, userID+"@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(r http.Handler, method, path, authHeader string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename, fileType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="` + fileField + `"; filename="` + filename + `"`}
		h["Content-Type"] = []string{fileType}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

// Stubs

type stubAuth struct {
	domain.AuthUsecase
	registered []string
}

func (s *stubAuth) Register(_ context.Context, email, _, role string) (*domain.AuthResult, error) {
	s.registered = append(s.registered, email+"/"+role)
	return &domain.AuthResult{Token: "t", User: &domain.User{ID: "u1", Email: email, Role: role}}, nil
}

type stubCandidates struct {
	domain.CandidateUsecase
	filter domain.CandidateFilter
	input  domain.CandidateInput
}

func (s *stubCandidates) List(_ context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	s.filter = f
	return []domain.Candidate{{ID: "c1", FirstName: "Aysel"}}, nil
}

func (s *stubCandidates) Upsert(_ context.Context, id domain.Identity, in domain.CandidateInput) (*domain.Candidate, error) {
	s.input = in
	return &domain.Candidate{ID: "c1", UserID: id.UserID, Skills: in.Skills}, nil
}

type stubJobs struct {
	domain.JobUsecase
	input domain.JobInput
}

func (s *stubJobs) Create(_ context.Context, _ string, in domain.JobInput) (*domain.Job, error) {
	s.input = in
	return &domain.Job{ID: "j1", Title: in.Title}, nil
}

type stubApplications struct {
	domain.ApplicationUsecase
}

func (stubApplications) Apply(_ context.Context, _, jobID string, _ *string) (*domain.Application, error) {
	if jobID == "closed" {
		return nil, apperror.BadRequest("This job is no longer active")
	}
	return &domain.Application{ID: "a1", JobID: jobID, Status: domain.ApplicationStatusPending}, nil
}

type stubDashboard struct {
	domain.DashboardUsecase
	filter domain.ApplicationFilter
}

func (s *stubDashboard) ExportApplications(_ context.Context, _ string, f domain.ApplicationFilter) ([]byte, error) {
	s.filter = f
	return []byte("PK-xlsx"), nil
}

func (s *stubDashboard) UpdateApplicationStatus(_ context.Context, _, _, status string) (*domain.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status")
	}
	return &domain.Application{ID: "a1", Status: status}, nil
}

type stubViews struct {
	domain.ProfileViewUsecase
	viewer *domain.Identity
}

func (s *stubViews) Record(_ context.Context, candidateID string, viewer *domain.Identity) (*domain.ProfileView, error) {
	s.viewer = viewer
	view := &domain.ProfileView{CandidateID: candidateID}
	if viewer != nil {
		view.ViewedBy = &viewer.UserID
	}
	return view, nil
}

type stubUploads struct {
	purpose security.UploadPurpose
	file    *domain.FileUpload
}

func (s *stubUploads) Upload(_ context.Context, purpose security.UploadPurpose, file *domain.FileUpload) (string, error) {
	s.purpose, s.file = purpose, file
	return "https://cdn.example/" + file.Filename, nil
}

type stubHealth struct{ healthy bool }

func (s stubHealth) Check(context.Context) (map[string]string, bool) {
	if s.healthy {
		return map[string]string{"status": "ok", "database": "up"}, true
	}
	return map[string]string{"status": "degraded", "database": "down"}, false
}

type fixture struct {
	router     *gin.Engine
	auth       *stubAuth
	candidates *stubCandidates
	jobs       *stubJobs
	dashboard  *stubDashboard
	views      *stubViews
	uploads    *stubUploads
}

func newFixture(healthy bool) *fixture {
	f := &fixture{
		auth:       &stubAuth{},
		candidates: &stubCandidates{},
		jobs:       &stubJobs{},
		dashboard:  &stubDashboard{},
		views:      &stubViews{},
		uploads:    &stubUploads{},
	}
	f.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:        f.auth,
		CandidateUC:   f.candidates,
		JobUC:         f.jobs,
		ApplicationUC: stubApplications{},
		DashboardUC:   f.dashboard,
		ProfileViewUC: f.views,
		UploadUC:      f.uploads,
		HealthUC:      stubHealth{healthy: healthy},
		Tokens:        tokens,
		Config:        testConfig(),
	})
	return f
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPost, "/api/auth/register", "",
		bytes.NewBufferString(`{"email":"ann@example.com","password":"123","role":"CANDIDATE"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Password must be at least 6 characters", envelope(t, w).Message)

	w = serve(f.router, http.MethodPost, "/api/auth/register", "",
		bytes.NewBufferString(`{"email":"ann@example.com","password":"secret1","role":"ADMIN"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Role must be one of: CANDIDATE, COMPANY", envelope(t, w).Message)

	w = serve(f.router, http.MethodPost, "/api/auth/register", "",
		bytes.NewBufferString(`{"email":"ann@example.com","password":"secret1","role":"COMPANY"}`), "application/json")
	assert.Equal(t, http.StatusCreated, w.Code)
	body := envelope(t, w)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, []string{"ann@example.com/COMPANY"}, f.auth.registered)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodGet, "/api/users/me", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization token required", envelope(t, w).Message)
}

func TestCandidateListQuery(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodGet, "/api/candidates/list?city=Bak%C4%B1&search=front&limit=5", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CandidateFilter{City: "Bakı", Search: "front", Limit: 5}, f.candidates.filter)

	w = serve(f.router, http.MethodGet, "/api/candidates/list?limit=abc", "", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCandidateCreateMultipart(t *testing.T) {
	f := newFixture(true)
	pdf := []byte("%PDF-1.4 body")

	body, ct := multipartBody(t, map[string]string{
		"firstName": "Aysel",
		"lastName":  "Quliyeva",
		"skills":    `["React","Node"]`,
	}, "cv", "cv.pdf", "application/pdf", pdf)

	w := serve(f.router, http.MethodPost, "/api/candidates/create", bearer(t, "u1", domain.RoleCandidate), body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"React", "Node"}, f.candidates.input.Skills)
	require.NotNil(t, f.candidates.input.CV)
	assert.Equal(t, pdf, f.candidates.input.CV.Data)
	assert.Nil(t, f.candidates.input.Video)

	// Companies cannot write candidate profiles
	body, ct = multipartBody(t, map[string]string{"firstName": "A", "lastName": "B"}, "", "", "", nil)
	w = serve(f.router, http.MethodPost, "/api/candidates/create", bearer(t, "u2", domain.RoleCompany), body, ct)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJobCreateWithPDF(t *testing.T) {
	f := newFixture(true)
	body, ct := multipartBody(t, map[string]string{
		"title":       "Go developer",
		"description": "Build APIs",
		"category":    "IT",
		"city":        "Bakı",
	}, "pdf", "job.pdf", "application/pdf", []byte("%PDF-1.7"))

	w := serve(f.router, http.MethodPost, "/api/jobs/create", bearer(t, "u2", domain.RoleCompany), body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Go developer", f.jobs.input.Title)
	require.NotNil(t, f.jobs.input.PDF)
	assert.Equal(t, "job.pdf", f.jobs.input.PDF.Filename)
	assert.Nil(t, f.jobs.input.Salary)
}

func TestJobCreateRejectsEmojiTitle(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPost, "/api/jobs/create", bearer(t, "u2", domain.RoleCompany),
		bytes.NewBufferString(`{"title":"Go developer 🚀","description":"Build APIs","category":"IT","city":"Baku"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title must not contain emoji or symbols", envelope(t, w).Message)
}

func TestApplyToInactiveJob(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPost, "/api/applications/apply/closed", bearer(t, "u1", domain.RoleCandidate), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This job is no longer active", envelope(t, w).Message)

	w = serve(f.router, http.MethodPost, "/api/applications/apply/j1", bearer(t, "u1", domain.RoleCandidate), nil, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateStatusInvalid(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPatch, "/api/company/applications/a1/status", bearer(t, "u2", domain.RoleCompany),
		bytes.NewBufferString(`{"status":"archived"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", envelope(t, w).Message)

	w = serve(f.router, http.MethodPatch, "/api/company/applications/a1/status", bearer(t, "u2", domain.RoleCompany),
		bytes.NewBufferString(`{}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status", envelope(t, w).Message)
}

func TestExportApplications(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodGet, "/api/company/applications/export?status=pending", bearer(t, "u2", domain.RoleCompany), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="applications-`))
	assert.Equal(t, "PK-xlsx", w.Body.String())
	assert.Equal(t, "pending", f.dashboard.filter.Status)
}

func TestProfileViewOptionalAuth(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPost, "/api/profile-views/view/c1", "", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, f.views.viewer)

	w = serve(f.router, http.MethodPost, "/api/profile-views/view/c1", "Bearer broken", nil, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, f.views.viewer)

	w = serve(f.router, http.MethodPost, "/api/profile-views/view/c1", bearer(t, "u7", domain.RoleCompany), nil, "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, f.views.viewer)
	assert.Equal(t, "u7", f.views.viewer.UserID)
}

func TestUploadCV(t *testing.T) {
	f := newFixture(true)

	w := serve(f.router, http.MethodPost, "/api/cv/upload", bearer(t, "u1", domain.RoleCandidate), nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", envelope(t, w).Message)

	body, ct := multipartBody(t, nil, "cv", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	w = serve(f.router, http.MethodPost, "/api/cv/upload", bearer(t, "u1", domain.RoleCandidate), body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, security.PurposeCV, f.uploads.purpose)
	assert.Contains(t, w.Body.String(), `"url":"https://cdn.example/resume.pdf"`)

	body, ct = multipartBody(t, nil, "cv", "empty.pdf", "application/pdf", []byte{})
	w = serve(f.router, http.MethodPost, "/api/cv/upload", bearer(t, "u1", domain.RoleCandidate), body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CV file is empty", envelope(t, w).Message)
}

func TestHealth(t *testing.T) {
	w := serve(newFixture(true).router, http.MethodGet, "/api/health", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newFixture(false).router, http.MethodGet, "/api/health", "", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, envelope(t, w).Success)
}
