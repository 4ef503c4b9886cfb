package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Chat history bounds. The caller resubmits the full history on every request,
// so both the turn count and the total text size must be capped to keep prompt
// growth bounded.
const (
	MaxChatTurns       = 64
	MaxChatHistorySize = 256 * 1024
)

// Chat turn roles as sent by the client
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatPart is one text segment of a chat turn
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is one conversational turn, either from the user or the model
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// Text returns the concatenated text of all parts
func (t ChatTurn) Text() string {
	parts := make([]string, 0, len(t.Parts))
	for _, p := range t.Parts {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

// ChatHistory is the ordered sequence of prior turns supplied by the caller.
// The last turn is the new question, the rest is replay context.
type ChatHistory []ChatTurn

// Validate checks history shape and bounds
func (h ChatHistory) Validate() error {
	if len(h) == 0 {
		return goerr.New("chat history is empty")
	}
	if len(h) > MaxChatTurns {
		return goerr.New("chat history has too many turns",
			goerr.V("turns", len(h)),
			goerr.V("max", MaxChatTurns),
		)
	}

	var total int
	for i, turn := range h {
		if turn.Role != ChatRoleUser && turn.Role != ChatRoleModel {
			return goerr.New("invalid chat role",
				goerr.V("index", i),
				goerr.V("role", turn.Role),
			)
		}
		if len(turn.Parts) == 0 {
			return goerr.New("chat turn has no parts", goerr.V("index", i))
		}
		for _, p := range turn.Parts {
			total += len(p.Text)
		}
	}
	if total > MaxChatHistorySize {
		return goerr.New("chat history is too large",
			goerr.V("size", total),
			goerr.V("max", MaxChatHistorySize),
		)
	}

	return nil
}

// Question returns the text of the last turn
func (h ChatHistory) Question() string {
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1].Text()
}

// Context returns all turns except the last
func (h ChatHistory) Context() []ChatTurn {
	if len(h) <= 1 {
		return nil
	}
	return h[:len(h)-1]
}
