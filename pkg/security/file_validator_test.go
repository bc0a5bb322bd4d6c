package security

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfData = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj")
	pngData = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FileValidationError
	require.True(t, errors.As(err, &fe), "expected FileValidationError, got %v", err)
	return fe.Message
}

func TestCheckSize(t *testing.T) {
	assert.NoError(t, CheckSize(PurposeCV, 10*MB))
	assert.Equal(t, "CV file is too large (max 10MB)", messageOf(t, CheckSize(PurposeCV, 10*MB+1)))
	assert.Equal(t, "Video file is too large (max 100MB)", messageOf(t, CheckSize(PurposeVideo, 101*MB)))
	assert.Equal(t, "Image file is too large (max 5MB)", messageOf(t, CheckSize(PurposeLogo, 6*MB)))
	assert.Equal(t, "PDF file is empty", messageOf(t, CheckSize(PurposeJobPDF, 0)))
}

func TestValidateCV(t *testing.T) {
	ct, err := ValidateUpload(PurposeCV, "resume.pdf", "application/pdf", pdfData)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)

	_, err = ValidateUpload(PurposeCV, "resume.docx", "application/pdf", pdfData)
	assert.Equal(t, "Only PDF files are allowed", messageOf(t, err))

	// Renamed image
	_, err = ValidateUpload(PurposeCV, "resume.pdf", "application/pdf", pngData)
	assert.Equal(t, "Only PDF files are allowed", messageOf(t, err))

	_, err = ValidateUpload(PurposeCV, "resume.pdf", "image/png", pdfData)
	assert.Equal(t, "Only PDF files are allowed", messageOf(t, err))
}

func TestValidateVideo(t *testing.T) {
	ct, err := ValidateUpload(PurposeVideo, "intro.mp4", "video/mp4; codecs=avc1", []byte("....ftypmp42"))
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", ct)

	_, err = ValidateUpload(PurposeVideo, "intro.mp4", "application/octet-stream", []byte("data"))
	assert.Equal(t, "Only video files are allowed", messageOf(t, err))
}

func TestValidateImage(t *testing.T) {
	ct, err := ValidateUpload(PurposeLogo, "logo.png", "image/png", pngData)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	_, err = ValidateUpload(PurposeLogo, "logo.png", "image/png", pdfData)
	assert.Equal(t, "Only image files are allowed", messageOf(t, err))
}

func TestRuleForUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { RuleFor("avatar") })
}
