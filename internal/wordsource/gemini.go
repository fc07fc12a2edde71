package wordsource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/vk/wordsearchgo/internal/ctxlog"
)

const defaultModel = "gemini-2.0-flash"

const themePromptFmt = `Generate %d words for a word-search puzzle on the theme %q.

Rules:
- Single words only, no spaces or hyphens.
- Uppercase letters A-Z only.
- Between 3 and 12 letters each.
- Respond ONLY with a JSON array of strings, no commentary and no markdown.`

// Gemini is a Source that asks the Gemini API for a themed word list.
type Gemini struct {
	client    *genai.Client
	modelName string
	theme     string
	count     int
}

// NewGemini creates a themed word source. The API key is read from the
// GEMINI_API_KEY environment variable.
func NewGemini(ctx context.Context, theme string, count int) (*Gemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("wordsource: GEMINI_API_KEY not set, cannot resolve theme %q", theme)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client:    client,
		modelName: defaultModel,
		theme:     theme,
		count:     count,
	}, nil
}

// Words implements the Source interface by fetching and sanitizing a
// themed list from the model.
func (g *Gemini) Words(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Requesting themed word list.", "theme", g.theme, "count", g.count)

	prompt := fmt.Sprintf(themePromptFmt, g.count, g.theme)
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response for theme %q", g.theme)
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse word list JSON: %w\nraw response: %s", err, text)
	}

	words := Sanitize(raw)
	if len(words) == 0 {
		return nil, fmt.Errorf("gemini returned no usable words for theme %q", g.theme)
	}
	logger.Debug("Themed word list resolved.", "theme", g.theme, "words", len(words))
	return words, nil
}
