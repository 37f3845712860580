package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"assistec_os/internal/usecase/interfaces"
)

var ErrMissingMistralAPIKey = errors.New("missing MISTRAL_API_KEY")
var ErrEmptyCompletion = errors.New("empty completion from provider")

// MistralGateway calls the Mistral chat-completions API to produce issue
// summaries and preliminary diagnoses. Calls are single-attempt: the caller
// decides whether a failure is fatal or a degradation.
type MistralGateway struct {
	cfg      Config
	client   *http.Client
	mockMode bool
}

var _ interfaces.IDiagnosisGateway = (*MistralGateway)(nil)

func NewMistralGateway(cfg Config) (*MistralGateway, error) {
	if isDiagnosisGatewayMockEnabled() {
		log.Printf("[ai][gateway] mock mode enabled")
		return &MistralGateway{cfg: cfg, mockMode: true}, nil
	}

	if cfg.APIKey == "" {
		log.Printf("[ai][gateway] missing MISTRAL_API_KEY")
		return nil, ErrMissingMistralAPIKey
	}

	log.Printf("[ai][gateway] Mistral client initialized model=%s", cfg.Model)
	return &MistralGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (g *MistralGateway) Summarize(ctx context.Context, reportedIssue string) (string, error) {
	if g.mockMode {
		return fmt.Sprintf("Resumo técnico do problema relatado: %s", trimForLog(reportedIssue)), nil
	}

	prompt := fmt.Sprintf(
		"Resuma o seguinte problema relatado de forma concisa e técnica, focando nos pontos principais: %s",
		reportedIssue,
	)
	return g.complete(ctx, "summarize", prompt)
}

func (g *MistralGateway) PreDiagnose(ctx context.Context, deviceType, brandModel, reportedIssue string) (string, error) {
	if g.mockMode {
		return fmt.Sprintf("Pré-diagnóstico para %s %s: verificar alimentação e conectores.", deviceType, brandModel), nil
	}

	prompt := fmt.Sprintf(
		"Act as a senior computer and smartphone repair technician, focused on fast bench-level diagnosis.\n\n"+
			"Service context:\n"+
			"- Device: %s %s\n"+
			"- Reported issue: %s\n\n"+
			"Mandatory rules:\n"+
			"- DO NOT repeat the reported issue.\n"+
			"- DO NOT rewrite or summarize the context.\n"+
			"- Write in plain text only (no lists, no markdown, no symbols).\n"+
			"- Start by stating the main suspected cause.\n"+
			"- Use extremely concise, technical language.\n"+
			"- Limit the entire response to a maximum of 60 words.\n"+
			"- Avoid explanations, background, or theory.\n\n"+
			"Response language:\n"+
			"- The entire response MUST be written in Brazilian Portuguese.\n\n"+
			"Mandatory response format:\n"+
			"Paragraph 1: One short sentence stating the most likely cause.\n\n"+
			"Paragraph 2: One short sentence stating the first diagnostic check.\n\n"+
			"Insert exactly one blank line between paragraphs.\n\n"+
			"End with exactly:\n\n"+
			"Suspeitos principais:\n"+
			"1) <causa> – Testar: <teste direto>\n"+
			"2) <causa> – Testar: <teste direto>\n\n"+
			"Goal:\n"+
			"Deliver a minimal, actionable diagnosis for an experienced repair technician.",
		deviceType, brandModel, reportedIssue,
	)
	return g.complete(ctx, "pre-diagnose", prompt)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *MistralGateway) complete(ctx context.Context, op, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    g.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	log.Printf("[ai][gateway] %s start prompt_len=%d", op, len(prompt))
	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[ai][gateway] %s request failed err=%v", op, err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[ai][gateway] %s provider status=%d body=%s", op, resp.StatusCode, snippet)
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[ai][gateway] %s decode failed err=%v", op, err)
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	log.Printf("[ai][gateway] %s success content_len=%d", op, len(content))
	return content, nil
}

func trimForLog(s string) string {
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}

func isDiagnosisGatewayMockEnabled() bool {
	for _, key := range []string{"DIAGNOSIS_GATEWAY_MOCK", "MISTRAL_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
