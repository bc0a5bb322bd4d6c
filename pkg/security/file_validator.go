package security

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

const MB = 1 << 20

// UploadPurpose identifies which upload rule set applies.
type UploadPurpose string

const (
	PurposeCV     UploadPurpose = "cv"
	PurposeVideo  UploadPurpose = "video"
	PurposeLogo   UploadPurpose = "logo"
	PurposeJobPDF UploadPurpose = "job_pdf"
)

// UploadRule describes the limits for one upload purpose.
type UploadRule struct {
	MaxBytes int64
	Label    string
	// check returns a message when content or declared type is rejected
	check func(filename, declaredType string, data []byte) string
}

var uploadRules = map[UploadPurpose]UploadRule{
	PurposeCV:     {MaxBytes: 10 * MB, Label: "CV", check: checkPDF},
	PurposeVideo:  {MaxBytes: 100 * MB, Label: "Video", check: checkVideo},
	PurposeLogo:   {MaxBytes: 5 * MB, Label: "Image", check: checkImage},
	PurposeJobPDF: {MaxBytes: 10 * MB, Label: "PDF", check: checkPDF},
}

// FileValidationError is returned for rejected uploads; Message is client-safe.
type FileValidationError struct {
	Message string
}

func (e *FileValidationError) Error() string {
	return e.Message
}

// Magic byte signatures for sniffed formats
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}}, // %PDF
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
}

// RuleFor returns the rule for purpose; unknown purposes panic at startup use.
func RuleFor(purpose UploadPurpose) UploadRule {
	rule, ok := uploadRules[purpose]
	if !ok {
		panic(fmt.Sprintf("security: no upload rule for %q", purpose))
	}
	return rule
}

// CheckSize rejects files over the purpose limit before the body is read.
func CheckSize(purpose UploadPurpose, size int64) error {
	rule := RuleFor(purpose)
	if size > rule.MaxBytes {
		return &FileValidationError{Message: fmt.Sprintf("%s file is too large (max %dMB)", rule.Label, rule.MaxBytes/MB)}
	}
	if size <= 0 {
		return &FileValidationError{Message: fmt.Sprintf("%s file is empty", rule.Label)}
	}
	return nil
}

// ValidateUpload checks size, declared type and content. It returns the
// content type to store the asset with.
func ValidateUpload(purpose UploadPurpose, filename, declaredType string, data []byte) (string, error) {
	if err := CheckSize(purpose, int64(len(data))); err != nil {
		return "", err
	}
	rule := RuleFor(purpose)
	if msg := rule.check(filename, declaredType, data); msg != "" {
		return "", &FileValidationError{Message: msg}
	}

	switch purpose {
	case PurposeCV, PurposeJobPDF:
		return "application/pdf", nil
	case PurposeVideo:
		return baseMIME(declaredType), nil
	default:
		return http.DetectContentType(data), nil
	}
}

func checkPDF(filename, declaredType string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && ext != ".pdf" {
		return "Only PDF files are allowed"
	}
	if declaredType != "" && baseMIME(declaredType) != "application/pdf" && baseMIME(declaredType) != "application/octet-stream" {
		return "Only PDF files are allowed"
	}
	if !hasMagic(".pdf", data) {
		return "Only PDF files are allowed"
	}
	return ""
}

// Video containers vary too much to sniff reliably; the declared MIME decides.
func checkVideo(_ string, declaredType string, _ []byte) string {
	if !strings.HasPrefix(baseMIME(declaredType), "video/") {
		return "Only video files are allowed"
	}
	return ""
}

func checkImage(_ string, _ string, data []byte) string {
	detected := http.DetectContentType(data)
	if !strings.HasPrefix(detected, "image/") {
		return "Only image files are allowed"
	}
	for ext := range magicBytes {
		if ext != ".pdf" && hasMagic(ext, data) {
			return ""
		}
	}
	return "Only JPEG, PNG, GIF or WebP images are allowed"
}

func hasMagic(ext string, data []byte) bool {
	for _, sig := range magicBytes[ext] {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func baseMIME(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
