package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

//go:embed prompt/analysis.md
var analysisPromptTmpl string

var analysisPrompt = template.Must(template.New("analysis").Parse(analysisPromptTmpl))

// Prompt character budgets. Document and knowledge base text are truncated
// before being embedded in the prompt so that the assembled prompt stays
// within the model's input ceiling. Tunable constants, not a wire contract.
const (
	MaxDocumentChars  = 60_000
	MaxKnowledgeChars = 150_000
)

// DefaultLanguage is used when the client does not request an output language
const DefaultLanguage = "English"

// AnalyzeInput is one uploaded document with the requested output language
type AnalyzeInput struct {
	Filename string
	Data     []byte
	Language string
}

// AnalyzeOutput is the analysis deliverable. StoragePath is empty if the
// upload was not attempted or failed.
type AnalyzeOutput struct {
	Analysis     string
	DocumentText string
	Document     *model.Document
}

// PersistResult reports the outcome of the best-effort persistence steps.
// Failures are recorded here and logged, never propagated: a storage or
// analytics outage must not block the analysis deliverable.
type PersistResult struct {
	StorageAttempted  bool
	StoragePath       string
	StorageErr        error
	MetadataAttempted bool
	MetadataErr       error
}

// Analyze extracts the document text, persists the original best-effort, and
// produces the structured legal analysis.
func (uc *UseCases) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	if uc.genAI == nil {
		return nil, goerr.Wrap(ErrGenAINotConfigured, "cannot analyze document")
	}
	if input.Filename == "" {
		return nil, goerr.Wrap(ErrEmptyFilename, "cannot analyze document")
	}

	doc := model.NewDocument(input.Filename, int64(len(input.Data)))

	text, err := uc.extractor.Extract(ctx, input.Data, input.Filename)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract document text",
			goerr.V("document_id", doc.ID),
			goerr.V("filename", input.Filename),
		)
	}
	if strings.TrimSpace(text) == "" {
		return nil, goerr.Wrap(ErrNoExtractableText, "document produced no text",
			goerr.V("document_id", doc.ID),
			goerr.V("filename", input.Filename),
		)
	}

	language := input.Language
	if language == "" {
		language = DefaultLanguage
	}

	// Persistence does not feed the prompt, so it runs concurrently with the
	// analysis call. Its failures are logged inside persist.
	var analysis string
	var persisted *PersistResult

	eg := new(errgroup.Group)
	eg.Go(func() error {
		persisted = uc.persist(ctx, doc, input.Data)
		return nil
	})
	eg.Go(func() error {
		prompt, err := uc.buildAnalysisPrompt(text, language)
		if err != nil {
			return err
		}
		result, err := uc.genAI.Generate(ctx, prompt)
		if err != nil {
			return goerr.Wrap(err, "failed to generate analysis",
				goerr.V("document_id", doc.ID),
			)
		}
		analysis = result
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	doc.StoragePath = persisted.StoragePath

	return &AnalyzeOutput{
		Analysis:     analysis,
		DocumentText: text,
		Document:     doc,
	}, nil
}

// persist uploads the original bytes and logs the metadata row. Both steps
// are best-effort: any failure is recorded in the result and logged.
func (uc *UseCases) persist(ctx context.Context, doc *model.Document, data []byte) *PersistResult {
	logger := logging.From(ctx)
	result := &PersistResult{}

	if uc.storage != nil {
		result.StorageAttempted = true
		name := fmt.Sprintf("uploads/%s/%s", doc.ID, doc.Filename)
		contentType := mime.TypeByExtension(filepath.Ext(doc.Filename))

		locator, err := uc.storage.Put(ctx, name, data, contentType)
		if err != nil {
			result.StorageErr = err
			logger.Error("failed to upload document to object store",
				"document_id", doc.ID,
				"error", err.Error(),
			)
		} else {
			result.StoragePath = locator
			logger.Info("document uploaded",
				"document_id", doc.ID,
				"storage_path", locator,
			)
		}
	}

	if uc.metadata != nil {
		result.MetadataAttempted = true
		record := *doc
		record.StoragePath = result.StoragePath

		if err := uc.metadata.Insert(ctx, &record); err != nil {
			result.MetadataErr = err
			logger.Error("failed to log document metadata",
				"document_id", doc.ID,
				"error", err.Error(),
			)
		} else {
			logger.Info("document metadata logged", "document_id", doc.ID)
		}
	}

	return result
}

func (uc *UseCases) buildAnalysisPrompt(text, language string) (string, error) {
	kbText := ""
	if uc.kb != nil {
		kbText = uc.kb.Excerpt(MaxKnowledgeChars)
	}

	data := map[string]string{
		"Language":      language,
		"KnowledgeBase": kbText,
		"DocumentText":  truncate(text, MaxDocumentChars),
	}

	var buf bytes.Buffer
	if err := analysisPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute analysis prompt template")
	}
	return buf.String(), nil
}

// truncate cuts s to at most limit bytes at a rune boundary
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
