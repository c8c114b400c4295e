package structured

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

const systemPrompt = `You are an invoice data extraction assistant.
Extract the following fields from the provided document text and return ONLY a valid JSON object with these keys:
{ "InvoiceNumber": string, "InvoiceDate": string, "VendorName": string, "CustomerName": string, "NetAmount": number, "TaxAmount": number, "GrossAmount": number }
Rules:
- Omit any key whose value is not present in the text. Never guess or invent values.
- Dates stay in the format found in the document.
- Amounts are plain numbers without currency symbols.
- If the text is not an invoice, return an empty JSON object {}.`

// CompletionExtractor extracts invoice fields by prompting an
// OpenAI-compatible chat-completion endpoint.
type CompletionExtractor struct {
	cfg    *Config
	client *http.Client
	logger Logger
}

func NewCompletionExtractor(cfg *Config, logger Logger) *CompletionExtractor {
	cfg = cfg.withDefaults()

	return &CompletionExtractor{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
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

// ExtractInvoice sends the document text to the completion service and parses
// the returned JSON. Text longer than the configured maximum is truncated
// before sending. A response that carries no parseable fields yields
// (nil, nil).
func (e *CompletionExtractor) ExtractInvoice(ctx context.Context, text string) (*document.InvoiceFields, error) {
	if e.cfg.Endpoint == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	text = truncate(text, e.cfg.MaxTextLength)

	body, err := json.Marshal(chatRequest{
		Model: e.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrRequestFailed, err)
	}

	url := strings.TrimSuffix(e.cfg.Endpoint, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.ApiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, string(payload))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrRequestFailed, err)
	}
	if len(completion.Choices) == 0 {
		e.logger.Warn("Completion response carried no choices", nil)
		return nil, nil
	}

	fields := parseInvoiceFields(completion.Choices[0].Message.Content)
	if fields == nil {
		e.logger.Debug("Completion content was not parseable as invoice fields", nil, map[string]interface{}{
			"model": e.cfg.Model,
		})
	}
	return fields, nil
}

// parseInvoiceFields tolerantly parses model output into invoice fields.
// Markdown code fences and surrounding prose are stripped. Output that still
// is not a JSON object, or parses to an object with no recognized fields,
// yields nil.
func parseInvoiceFields(content string) *document.InvoiceFields {
	content = stripCodeFences(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return nil
	}

	var fields document.InvoiceFields
	if err := json.Unmarshal([]byte(content[start:end+1]), &fields); err != nil {
		return nil
	}
	if fields.Empty() {
		return nil
	}
	return &fields
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
