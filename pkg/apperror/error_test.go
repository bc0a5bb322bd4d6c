package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFindsWrappedAppError(t *testing.T) {
	err := fmt.Errorf("apply: %w", NotFound("Job not found"))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Job not found", appErr.Error())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestInternalKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("pool closed")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.ErrorIs(t, err, cause)

	upstream := Upstream("Media storage is not configured", cause)
	assert.Equal(t, "Media storage is not configured", upstream.Message)
	assert.ErrorIs(t, upstream, cause)
}
