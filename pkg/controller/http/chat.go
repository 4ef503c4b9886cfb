package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
	"github.com/lexi-lab/lexiscan/pkg/usecase"
)

type chatRequest struct {
	History  model.ChatHistory `json:"history"`
	Language string            `json:"language"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(usecase.ErrInvalidChatHistory, "invalid JSON body"))
		return
	}

	reply, err := s.uc.Chat(ctx, req.History, req.Language)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, chatResponse{Response: reply})
}
