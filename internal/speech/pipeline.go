package speech

import "context"

// SourceLanguage is the language transcripts are assumed to arrive in;
// translation to it is a no-op and never reaches the translator.
const SourceLanguage = "en"

// Pipeline composes transcription, normalization and optional translation.
// Calls are synchronous and fail fast: any adapter error propagates to the
// caller unmodified, with no retry.
type Pipeline struct {
	transcriber Transcriber
	translator  Translator
}

// NewPipeline creates a pipeline over the given adapters.
func NewPipeline(transcriber Transcriber, translator Translator) *Pipeline {
	return &Pipeline{transcriber: transcriber, translator: translator}
}

// Process transcribes the audio file, normalizes spoken symbol words, and
// translates the result when targetLanguage differs from the source
// language. An empty targetLanguage means the source language.
func (p *Pipeline) Process(ctx context.Context, audioPath, targetLanguage string) (string, error) {
	rawText, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	normalized := Normalize(rawText)

	if targetLanguage == "" || targetLanguage == SourceLanguage {
		return normalized, nil
	}

	return p.translator.Translate(ctx, normalized, targetLanguage)
}
