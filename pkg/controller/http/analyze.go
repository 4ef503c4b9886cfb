package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lexi-lab/lexiscan/pkg/usecase"
	"github.com/lexi-lab/lexiscan/pkg/utils/errutil"
	"github.com/lexi-lab/lexiscan/pkg/utils/safe"
)

type analyzeResponse struct {
	Analysis     string `json:"analysis"`
	DocumentText string `json:"documentText"`
	DocumentID   string `json:"documentId"`
	StoragePath  string `json:"storagePath,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)
	if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			tooLarge := goerr.New("file too large",
				goerr.V("max_bytes", s.maxUploadSize),
			)
			errutil.HandleHTTP(ctx, w, tooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		writeError(ctx, w, goerr.Wrap(usecase.ErrNoFile, "invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, goerr.Wrap(usecase.ErrNoFile, "missing file field"))
		return
	}
	defer safe.Close(ctx, file)

	if header.Filename == "" {
		writeError(ctx, w, goerr.Wrap(usecase.ErrEmptyFilename, "missing filename"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, goerr.Wrap(err, "failed to read uploaded file"))
		return
	}

	output, err := s.uc.Analyze(ctx, usecase.AnalyzeInput{
		Filename: header.Filename,
		Data:     data,
		Language: r.FormValue("language"),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, analyzeResponse{
		Analysis:     output.Analysis,
		DocumentText: output.DocumentText,
		DocumentID:   output.Document.ID.String(),
		StoragePath:  output.Document.StoragePath,
	})
}
