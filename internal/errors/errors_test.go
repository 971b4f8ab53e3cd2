package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"voxform/internal/speech"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "validation error",
			err:            NewValidationError("percentage", "must be a number"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_FAILED",
		},
		{
			name:           "transcription error",
			err:            &speech.TranscriptionError{AudioPath: "missing.wav", Err: fmt.Errorf("no such file")},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "TRANSCRIPTION_FAILED",
		},
		{
			name:           "translation error",
			err:            &speech.TranslationError{TargetLanguage: "xx", Err: fmt.Errorf("unsupported language")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "TRANSLATION_FAILED",
		},
		{
			name:           "wrapped transcription error",
			err:            fmt.Errorf("process audio: %w", &speech.TranscriptionError{AudioPath: "a.wav", Err: fmt.Errorf("boom")}),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "TRANSCRIPTION_FAILED",
		},
		{
			name:           "duplicate email",
			err:            ErrDuplicateEmail,
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
		{
			name:           "user not found",
			err:            ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "USER_NOT_FOUND",
		},
		{
			name:           "invalid credentials",
			err:            ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "unknown error",
			err:            fmt.Errorf("something unexpected"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)

			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)

			resp := httpErr.ToErrorResponse()
			assert.Equal(t, httpErr.Message, resp.Error)
			assert.Equal(t, httpErr.Code, resp.Code)
		})
	}
}
