package analyzer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/genai"
)

// maxTranscriptChars bounds the transcript prefix sent to the model. The
// cutoff is lossy; nothing here summarizes past it.
const maxTranscriptChars = 8000

const analysisPrompt = `Analyze this video transcript:
"%s..."

Return a strict JSON object with these keys:
1. "description": A catchy YouTube description.
2. "thumbnail_prompt": A highly visual description for an image generator (robot, cyberpunk, etc).
3. "thumbnail_text_overlay": Short, punchy text to place on the thumbnail (max 5 words).
4. "viral_segment": { "start": int_seconds, "end": int_seconds } for the best 30s clip.`

// Analyze sends the transcript to Gemini and parses the structured reply.
// All failure modes normalize to an ErrUnavailable-wrapped error; retry
// policy beyond API-key rotation belongs to the caller.
func (a *implAnalyzer) Analyze(ctx context.Context, transcript string) (*Metadata, error) {
	if len(a.apiKeys) == 0 {
		return nil, fmt.Errorf("%w: no API key configured", ErrUnavailable)
	}

	prompt := buildPrompt(transcript)

	reply, err := a.callGemini(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	meta, err := parseMetadata(reply)
	if err != nil {
		return nil, err
	}

	a.logger.Debug(ctx, "Analysis complete: viral segment %d-%ds", meta.ViralSegment.Start, meta.ViralSegment.End)
	return meta, nil
}

func buildPrompt(transcript string) string {
	if len(transcript) > maxTranscriptChars {
		// Back off to a rune boundary so the cut never splits a
		// multibyte character.
		cut := maxTranscriptChars
		for cut > 0 && !utf8.RuneStart(transcript[cut]) {
			cut--
		}
		transcript = transcript[:cut]
	}
	return fmt.Sprintf(analysisPrompt, transcript)
}

// callGemini issues one generation request, rotating API keys on quota
// errors.
func (a *implAnalyzer) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(a.apiKeys)
	var lastErr error

	for range attempts {
		index, key := a.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			a.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				a.logger.Warn(ctx, "Key %d rate limited, rotating...", index+1)
				a.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (a *implAnalyzer) activeKey() (int, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentKey, a.apiKeys[a.currentKey]
}

func (a *implAnalyzer) rotateKey() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentKey = (a.currentKey + 1) % len(a.apiKeys)
}
