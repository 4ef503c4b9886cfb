package interfaces

import (
	"context"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
)

// GenAI defines the interface for the generative AI collaborator
type GenAI interface {
	// Generate sends a single-turn prompt and returns the response text
	Generate(ctx context.Context, prompt string) (string, error)

	// Chat replays prior turns into a chat session, sends the message and
	// returns the reply text
	Chat(ctx context.Context, history []model.ChatTurn, message string) (string, error)
}
