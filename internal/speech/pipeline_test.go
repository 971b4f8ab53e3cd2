package speech

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a mock implementation of Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

// MockTranslator is a mock implementation of Translator.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}

func TestPipeline_Process_EnglishSkipsTranslator(t *testing.T) {
	mockTranscriber := new(MockTranscriber)
	mockTranslator := new(MockTranslator)

	mockTranscriber.On("Transcribe", mock.Anything, "voice.wav").
		Return("contact me at example dot com", nil)

	p := NewPipeline(mockTranscriber, mockTranslator)
	out, err := p.Process(context.Background(), "voice.wav", "en")

	assert.NoError(t, err)
	assert.Equal(t, "contact me@example.com", out)
	mockTranscriber.AssertExpectations(t)
	mockTranslator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Process_EmptyLanguageMeansEnglish(t *testing.T) {
	mockTranscriber := new(MockTranscriber)
	mockTranslator := new(MockTranslator)

	mockTranscriber.On("Transcribe", mock.Anything, "voice.wav").
		Return("hello there", nil)

	p := NewPipeline(mockTranscriber, mockTranslator)
	out, err := p.Process(context.Background(), "voice.wav", "")

	assert.NoError(t, err)
	assert.Equal(t, "hello there", out)
	mockTranslator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Process_TranslatesNormalizedText(t *testing.T) {
	mockTranscriber := new(MockTranscriber)
	mockTranslator := new(MockTranslator)

	mockTranscriber.On("Transcribe", mock.Anything, "voice.wav").
		Return("write to me at example dot com", nil)
	// The translator must receive the normalized text, exactly once.
	mockTranslator.On("Translate", mock.Anything, "write to me@example.com", "fr").
		Return("écrivez-moi me@example.com", nil).Once()

	p := NewPipeline(mockTranscriber, mockTranslator)
	out, err := p.Process(context.Background(), "voice.wav", "fr")

	assert.NoError(t, err)
	assert.Equal(t, "écrivez-moi me@example.com", out)
	mockTranscriber.AssertExpectations(t)
	mockTranslator.AssertExpectations(t)
	mockTranslator.AssertNumberOfCalls(t, "Translate", 1)
}

func TestPipeline_Process_TranscriptionErrorPropagates(t *testing.T) {
	mockTranscriber := new(MockTranscriber)
	mockTranslator := new(MockTranslator)

	wantErr := &TranscriptionError{AudioPath: "missing.wav", Err: fmt.Errorf("open missing.wav: no such file")}
	mockTranscriber.On("Transcribe", mock.Anything, "missing.wav").Return("", wantErr)

	p := NewPipeline(mockTranscriber, mockTranslator)
	out, err := p.Process(context.Background(), "missing.wav", "fr")

	assert.Empty(t, out)
	assert.Equal(t, wantErr, err)
	// Fail fast: the translator is never reached.
	mockTranslator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Process_TranslationErrorPropagates(t *testing.T) {
	mockTranscriber := new(MockTranscriber)
	mockTranslator := new(MockTranslator)

	wantErr := &TranslationError{TargetLanguage: "xx", Err: fmt.Errorf("unsupported language")}
	mockTranscriber.On("Transcribe", mock.Anything, "voice.wav").Return("hello", nil)
	mockTranslator.On("Translate", mock.Anything, "hello", "xx").Return("", wantErr)

	p := NewPipeline(mockTranscriber, mockTranslator)
	out, err := p.Process(context.Background(), "voice.wav", "xx")

	assert.Empty(t, out)
	assert.Equal(t, wantErr, err)
}
