package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexi-lab/lexiscan/pkg/service/extract"
	"github.com/lexi-lab/lexiscan/pkg/usecase"
	"github.com/lexi-lab/lexiscan/pkg/utils/errutil"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.From(ctx).Error("failed to encode JSON response", "error", err.Error())
	}
}

// writeError maps the error to a response status and writes the JSON error
// body. Client-side problems become 400; everything else is a server error.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	errutil.HandleHTTP(ctx, w, err, statusFor(err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNoFile),
		errors.Is(err, usecase.ErrEmptyFilename),
		errors.Is(err, usecase.ErrNoExtractableText),
		errors.Is(err, usecase.ErrInvalidChatHistory),
		errors.Is(err, extract.ErrUnsupportedFileType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
