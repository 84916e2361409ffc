package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/contacomigo/backend/internal/application/adapter"
)

const (
	defaultTipModel = "gemini-2.5-flash"

	// placeholderAPIKey is the value shipped in the sample env file.
	placeholderAPIKey = "SUA_CHAVE_GEMINI_AQUI"
)

// GeminiTipService implements adapter.TipService using Google Gemini.
type GeminiTipService struct {
	apiKey    string
	modelName string
}

// NewGeminiTipService creates a new Gemini tip service. An empty model uses the default.
func NewGeminiTipService(apiKey, modelName string) *GeminiTipService {
	if modelName == "" {
		modelName = defaultTipModel
	}
	return &GeminiTipService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

var _ adapter.TipService = (*GeminiTipService)(nil)

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiTipService) IsAvailable() bool {
	return s.apiKey != "" && s.apiKey != placeholderAPIKey
}

// GenerateTip asks Gemini for a short motivating tip. An empty string means
// the model answered without text.
func (s *GeminiTipService) GenerateTip(ctx context.Context, summary string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(500)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildTipPrompt(summary)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp), nil
}

// BuildTipPrompt wraps the user summary in the mentor instructions.
func BuildTipPrompt(summary string) string {
	var sb strings.Builder
	sb.WriteString("Você é um mentor financeiro positivo e motivador do app ContaComigo.\n\n")
	sb.WriteString("Contexto do usuário: ")
	sb.WriteString(summary)
	sb.WriteString("\n\nSua tarefa: Dê uma dica financeira curta (máximo 2 frases) que seja motivadora, prática e sem julgamentos. ")
	sb.WriteString("Responda APENAS com a dica, sem introduções ou explicações extras.")
	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
