package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
)

// Service implements interfaces.GenAI on top of a gollem LLM client
type Service struct {
	llmClient gollem.LLMClient
}

// New creates a new Gemini-backed GenAI service
func New(llmClient gollem.LLMClient) (*Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	return &Service{llmClient: llmClient}, nil
}

// Generate sends a single-turn prompt and returns the response text
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	session, err := s.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate content")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned an empty response")
	}

	return strings.Join(resp.Texts, "\n"), nil
}

// Chat replays the prior turns as conversation context and sends the new
// message. The replay is injected through the session system prompt so the
// model answers with the full document context the client accumulated.
func (s *Service) Chat(ctx context.Context, history []model.ChatTurn, message string) (string, error) {
	var opts []gollem.SessionOption
	if len(history) > 0 {
		opts = append(opts, gollem.WithSessionSystemPrompt(buildReplayPrompt(history)))
	}

	session, err := s.llmClient.NewSession(ctx, opts...)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create chat session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(message))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate chat response")
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("LLM returned an empty chat response")
	}

	return strings.Join(resp.Texts, "\n"), nil
}

func buildReplayPrompt(history []model.ChatTurn) string {
	var sb strings.Builder
	sb.WriteString("You are continuing an existing conversation about a legal document. ")
	sb.WriteString("The prior conversation is reproduced below. ")
	sb.WriteString("Answer the next user message consistently with it.\n\n")
	sb.WriteString("--- CONVERSATION SO FAR ---\n")
	for _, turn := range history {
		label := "User"
		if turn.Role == model.ChatRoleModel {
			label = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, turn.Text())
	}
	sb.WriteString("--- END CONVERSATION ---")
	return sb.String()
}
