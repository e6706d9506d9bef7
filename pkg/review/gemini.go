package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/user/sitelog-check/pkg/engine"
)

type GeminiReviewer struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

func NewGeminiReviewer(ctx context.Context, apiKey string, modelName string) (*GeminiReviewer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)

	return &GeminiReviewer{client: client, model: model, modelName: modelName}, nil
}

func (g *GeminiReviewer) Name() string {
	return "gemini:" + g.modelName
}

func (g *GeminiReviewer) Review(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
	prompt := buildReviewPrompt(docType, text, report)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if chunk, ok := part.(genai.Text); ok {
			out += string(chunk)
		}
	}
	return ParsePayload(out)
}

func (g *GeminiReviewer) ListModels(ctx context.Context) ([]string, error) {
	iter := g.client.ListModels(ctx)
	var names []string
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.Contains(m.Name, "gemini") {
			// m.Name is like "models/gemini-1.5-flash", keep the short id
			names = append(names, strings.TrimPrefix(m.Name, "models/"))
		}
	}
	return names, nil
}

func (g *GeminiReviewer) Close() {
	g.client.Close()
}
