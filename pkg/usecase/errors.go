package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer. The HTTP controller maps these to
// response statuses with errors.Is.
var (
	ErrNoFile             = goerr.New("no file provided")
	ErrEmptyFilename      = goerr.New("no selected file")
	ErrNoExtractableText  = goerr.New("no extractable text in document")
	ErrInvalidChatHistory = goerr.New("invalid chat history")
	ErrGenAINotConfigured = goerr.New("generative AI is not configured")
)
