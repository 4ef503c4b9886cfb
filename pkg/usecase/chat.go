package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
)

// Chat answers one follow-up question. The caller supplies the full history
// on every call; the last turn is the new question and the rest is replay
// context. Nothing is persisted server-side.
func (uc *UseCases) Chat(ctx context.Context, history model.ChatHistory, language string) (string, error) {
	if uc.genAI == nil {
		return "", goerr.Wrap(ErrGenAINotConfigured, "cannot answer chat")
	}

	if err := history.Validate(); err != nil {
		return "", goerr.Wrap(ErrInvalidChatHistory, err.Error())
	}

	if language == "" {
		language = DefaultLanguage
	}

	message := fmt.Sprintf(
		"Based on the document context I provided earlier, answer this question in %s: %s",
		language, history.Question(),
	)

	reply, err := uc.genAI.Chat(ctx, history.Context(), message)
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate chat response")
	}

	return reply, nil
}
