package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"voxform/internal/errors"
	"voxform/internal/speech"
	"voxform/internal/storage"
)

// SpeechHandler exposes the transcription pipeline over HTTP.
type SpeechHandler struct {
	pipeline *speech.Pipeline
	audio    *storage.AudioStore
}

// NewSpeechHandler creates a new speech handler. A nil pipeline disables
// the endpoint (no API key configured).
func NewSpeechHandler(pipeline *speech.Pipeline, audio *storage.AudioStore) *SpeechHandler {
	return &SpeechHandler{pipeline: pipeline, audio: audio}
}

// Transcribe accepts a multipart audio upload, runs it through the
// pipeline and returns the resulting text. The whole file is processed
// synchronously in one call; there are no partial results.
func (h *SpeechHandler) Transcribe(c echo.Context) error {
	if h.pipeline == nil {
		return c.JSON(http.StatusServiceUnavailable, errors.ErrorResponse{
			Error: "speech transcription is not configured",
			Code:  "SPEECH_DISABLED",
		})
	}

	file, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{
			Error: "audio file is required",
			Code:  "AUDIO_REQUIRED",
		})
	}

	targetLanguage := c.FormValue("target_language")
	if targetLanguage == "" {
		targetLanguage = speech.SourceLanguage
	}

	audioPath, err := h.audio.Save(file)
	if err != nil {
		log.Printf("save audio upload: %v", err)
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to store audio upload",
			Code:  "UPLOAD_FAILED",
		})
	}
	defer func() {
		if err := h.audio.Remove(audioPath); err != nil {
			log.Printf("remove audio upload %s: %v", audioPath, err)
		}
	}()

	text, err := h.pipeline.Process(c.Request().Context(), audioPath, targetLanguage)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			log.Printf("transcription pipeline: %v", err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"text":     text,
		"language": targetLanguage,
	})
}
