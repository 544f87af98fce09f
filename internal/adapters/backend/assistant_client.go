package backend

import (
	"context"
	"fmt"
	"net/http"

	"vetcare-pro/internal/domain/assistant"
	"vetcare-pro/internal/platform/httpclient"
)

type assistantClient struct {
	gw *httpclient.Client
}

func NewAssistantClient(gw *httpclient.Client) assistant.API {
	return &assistantClient{gw: gw}
}

func (c *assistantClient) Analyze(ctx context.Context, in assistant.CaseInput) (string, error) {
	body := map[string]any{
		"species":  in.Species,
		"breed":    in.Breed,
		"age":      in.Age,
		"symptoms": in.Symptoms,
		"history":  in.History,
	}

	var out struct {
		Analysis string `json:"analysis"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/ai/analyze", body, &out); err != nil {
		return "", fmt.Errorf("backend: ai analyze: %w", err)
	}
	return out.Analysis, nil
}

func (c *assistantClient) Chat(ctx context.Context, message string, history []string) (string, error) {
	body := map[string]any{
		"message":             message,
		"conversationHistory": history,
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/ai/chat", body, &out); err != nil {
		return "", fmt.Errorf("backend: ai chat: %w", err)
	}
	return out.Response, nil
}
