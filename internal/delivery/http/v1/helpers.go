package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"humancapital-api/internal/delivery/http/middleware"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/security"
	"humancapital-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bind decodes JSON or form bodies by Content-Type and reports the first
// failing field as a 400.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		c.Error(apperror.BadRequest(validation.FirstMessage(err)))
		return false
	}
	return true
}

// identity is only called behind middleware.Authenticate.
func identity(c *gin.Context) domain.Identity {
	id, _ := middleware.IdentityFrom(c)
	return id
}

// formFile reads an optional multipart file. It returns nil, nil when the
// field is absent or the request is not multipart.
func formFile(c *gin.Context, field string, purpose security.UploadPurpose) (*domain.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperror.BadRequest("Invalid multipart form")
	}

	// Reject on the declared size before reading anything
	if err := security.CheckSize(purpose, header.Size); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	f, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, security.RuleFor(purpose).MaxBytes+1))
	if err != nil {
		return nil, apperror.BadRequest("Failed to read uploaded file")
	}

	return &domain.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// skillsField accepts repeated form values, a JSON array in one value,
// or a comma separated string.
func skillsField(values []string) []string {
	if len(values) != 1 {
		return values
	}
	raw := strings.TrimSpace(values[0])
	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return parsed
		}
	}
	return strings.Split(raw, ",")
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.BadRequest(key + " must be a non-negative integer")
	}
	return n, nil
}

func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
