package speech

import "fmt"

// TranscriptionError is returned when the audio file cannot be read or the
// recognizer fails.
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed for %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// TranslationError is returned on translation service failure or an
// unsupported language code.
type TranslationError struct {
	TargetLanguage string
	Err            error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation to %q failed: %v", e.TargetLanguage, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}
