package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"doc_ingest/internal/domain"
)

const systemPrompt = "You are a meticulous back-office assistant. You read financial documents " +
	"and return exactly the JSON object described by the response schema. " +
	"Never invent values: use null for anything the document does not state."

type Config struct {
	ProjectID       string
	Location        string
	Model           string
	CredentialsFile string
	Temperature     float32
}

// Engine extracts structured data from documents with a Gemini model on Vertex AI.
type Engine struct {
	client *genai.Client
	cfg    Config
	logger *slog.Logger
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Engine, error) {
	if cfg.ProjectID == "" || cfg.Location == "" {
		return nil, fmt.Errorf("extraction: project id and location cannot be empty")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location, opts...)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &Engine{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "extraction", "model", cfg.Model),
	}, nil
}

// Extract sends the document and prompt to the model and returns the JSON
// object it produced. The caller decodes it against its own schema.
func (e *Engine) Extract(ctx context.Context, data []byte, mimeType string, schema *domain.Schema, prompt string) (json.RawMessage, error) {
	model := e.client.GenerativeModel(e.cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(schema),
		Temperature:      genai.Ptr(e.cfg.Temperature),
	}

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("model returned an empty response")
	}
	if !json.Valid([]byte(text)) {
		e.logger.Warn("model returned invalid json", "response", truncate(text, 200))
		return nil, errors.New("model returned invalid json")
	}

	return json.RawMessage(text), nil
}

// Ready checks that the engine is configured with usable credentials without
// calling the model.
func (e *Engine) Ready(_ context.Context) error {
	return CheckCredentials(e.cfg)
}

func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// CheckCredentials validates the engine configuration: project, location and
// model must be set and an explicit credentials file must be readable. Without
// one, application default credentials must be discoverable.
func CheckCredentials(cfg Config) error {
	var errs []error
	if cfg.ProjectID == "" {
		errs = append(errs, errors.New("extraction project id is not set"))
	}
	if cfg.Location == "" {
		errs = append(errs, errors.New("extraction location is not set"))
	}
	if cfg.Model == "" {
		errs = append(errs, errors.New("extraction model is not set"))
	}

	credentials := cfg.CredentialsFile
	if credentials == "" {
		credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}
	if credentials != "" {
		if _, err := os.Stat(credentials); err != nil {
			errs = append(errs, fmt.Errorf("extraction credentials: %w", err))
		}
	}
	return errors.Join(errs...)
}

// responseText concatenates the text parts of the first candidate and strips
// markdown fences some models wrap around JSON.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return cleanJSON(sb.String())
}

func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
