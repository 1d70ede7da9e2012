package domain

import (
	"context"
	"errors"
)

// GenerationRequest is one prompt sent to the generative-text service.
type GenerationRequest struct {
	PromptText string
}

// GenerationOutcome is the result of one generation call: either Text is set
// and Err is nil, or Err describes why no text was produced.
type GenerationOutcome struct {
	Text string
	Err  error
}

// GenerationSucceeded returns a successful outcome carrying text.
func GenerationSucceeded(text string) GenerationOutcome {
	return GenerationOutcome{Text: text}
}

// GenerationFailed returns a failed outcome with the given reason.
func GenerationFailed(reason error) GenerationOutcome {
	if reason == nil {
		reason = errors.New("unknown failure")
	}
	return GenerationOutcome{Err: reason}
}

// OK reports whether the outcome carries generated text.
func (o GenerationOutcome) OK() bool {
	return o.Err == nil
}

// ContentGenerator wraps the external generative-text service. Generate never
// returns an error: every failure (transport, malformed response, empty text)
// is reported through the outcome.
type ContentGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) GenerationOutcome
}
