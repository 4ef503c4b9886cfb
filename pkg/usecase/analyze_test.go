package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
	"github.com/lexi-lab/lexiscan/pkg/service/extract"
	"github.com/lexi-lab/lexiscan/pkg/service/knowledge"
	"github.com/lexi-lab/lexiscan/pkg/usecase"
)

type mockGenAI struct {
	generateFn func(ctx context.Context, prompt string) (string, error)
	chatFn     func(ctx context.Context, history []model.ChatTurn, message string) (string, error)
}

func (m *mockGenAI) Generate(ctx context.Context, prompt string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, prompt)
	}
	return "analysis result", nil
}

func (m *mockGenAI) Chat(ctx context.Context, history []model.ChatTurn, message string) (string, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, history, message)
	}
	return "chat reply", nil
}

type mockStore struct {
	putFn func(ctx context.Context, name string, data []byte, contentType string) (string, error)
	calls int
}

func (m *mockStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	m.calls++
	if m.putFn != nil {
		return m.putFn(ctx, name, data, contentType)
	}
	return "gs://test-bucket/" + name, nil
}

type mockSink struct {
	insertFn func(ctx context.Context, doc *model.Document) error
	inserted []*model.Document
}

func (m *mockSink) Insert(ctx context.Context, doc *model.Document) error {
	m.inserted = append(m.inserted, doc)
	if m.insertFn != nil {
		return m.insertFn(ctx, doc)
	}
	return nil
}

func newTestUseCases(opts ...usecase.Option) *usecase.UseCases {
	kb := knowledge.NewFromText("--- TEST LAW ---\nArticle 1. Everything is fine.")
	return usecase.New(extract.New(), kb, opts...)
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns analysis and extracted text", func(t *testing.T) {
		var captured string
		genAI := &mockGenAI{
			generateFn: func(ctx context.Context, prompt string) (string, error) {
				captured = prompt
				return "## Document Summary\nA short note.", nil
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(genAI))

		out, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, out.Analysis).Equal("## Document Summary\nA short note.")
		gt.Value(t, out.DocumentText).Equal("Hello world")
		gt.NoError(t, out.Document.ID.Validate()).Required()

		gt.Bool(t, strings.Contains(captured, "Hello world")).True()
		gt.Bool(t, strings.Contains(captured, "Article 1. Everything is fine.")).True()
		gt.Bool(t, strings.Contains(captured, "English")).True()
	})

	t.Run("requested language reaches the prompt", func(t *testing.T) {
		var captured string
		genAI := &mockGenAI{
			generateFn: func(ctx context.Context, prompt string) (string, error) {
				captured = prompt
				return "ok", nil
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(genAI))

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
			Language: "Hindi",
		})
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(captured, "Hindi")).True()
	})

	t.Run("document text is truncated in the prompt", func(t *testing.T) {
		var captured string
		genAI := &mockGenAI{
			generateFn: func(ctx context.Context, prompt string) (string, error) {
				captured = prompt
				return "ok", nil
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(genAI))

		huge := strings.Repeat("a", usecase.MaxDocumentChars+1000)
		out, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "big.txt",
			Data:     []byte(huge),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, out.DocumentText).Equal(huge)
		gt.Bool(t, strings.Contains(captured, huge)).False()
		gt.Bool(t, strings.Contains(captured, strings.Repeat("a", usecase.MaxDocumentChars))).True()
	})

	t.Run("storage failure does not fail the analysis", func(t *testing.T) {
		store := &mockStore{
			putFn: func(ctx context.Context, name string, data []byte, contentType string) (string, error) {
				return "", errors.New("bucket unavailable")
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(&mockGenAI{}), usecase.WithObjectStore(store))

		out, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, out.Analysis).Equal("analysis result")
		gt.Value(t, out.Document.StoragePath).Equal("")
		gt.Value(t, store.calls).Equal(1)
	})

	t.Run("metadata sink receives the storage path", func(t *testing.T) {
		store := &mockStore{}
		sink := &mockSink{}
		uc := newTestUseCases(
			usecase.WithGenAI(&mockGenAI{}),
			usecase.WithObjectStore(store),
			usecase.WithMetadataSink(sink),
		)

		out, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.NoError(t, err).Required()

		gt.Array(t, sink.inserted).Length(1)
		record := sink.inserted[0]
		gt.Value(t, record.Filename).Equal("note.txt")
		gt.Value(t, record.StoragePath).Equal(out.Document.StoragePath)
		gt.Bool(t, strings.HasPrefix(record.StoragePath, "gs://test-bucket/uploads/")).True()
		gt.Bool(t, strings.HasSuffix(record.StoragePath, "/note.txt")).True()
	})

	t.Run("metadata failure does not fail the analysis", func(t *testing.T) {
		sink := &mockSink{
			insertFn: func(ctx context.Context, doc *model.Document) error {
				return errors.New("dataset not found")
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(&mockGenAI{}), usecase.WithMetadataSink(sink))

		out, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.NoError(t, err).Required()
		gt.Value(t, out.Analysis).Equal("analysis result")
	})

	t.Run("generation failure fails the analysis", func(t *testing.T) {
		genAI := &mockGenAI{
			generateFn: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("model overloaded")
			},
		}
		uc := newTestUseCases(usecase.WithGenAI(genAI))

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.Error(t, err)
	})

	t.Run("unconfigured AI is rejected", func(t *testing.T) {
		uc := newTestUseCases()

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "note.txt",
			Data:     []byte("Hello world"),
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrGenAINotConfigured)).True()
	})

	t.Run("empty filename is rejected", func(t *testing.T) {
		uc := newTestUseCases(usecase.WithGenAI(&mockGenAI{}))

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{Data: []byte("x")})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrEmptyFilename)).True()
	})

	t.Run("unsupported extension is rejected", func(t *testing.T) {
		uc := newTestUseCases(usecase.WithGenAI(&mockGenAI{}))

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "data.csv",
			Data:     []byte("a,b,c"),
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, extract.ErrUnsupportedFileType)).True()
	})

	t.Run("whitespace-only document is rejected", func(t *testing.T) {
		uc := newTestUseCases(usecase.WithGenAI(&mockGenAI{}))

		_, err := uc.Analyze(ctx, usecase.AnalyzeInput{
			Filename: "blank.txt",
			Data:     []byte("   \n\t  "),
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, usecase.ErrNoExtractableText)).True()
	})
}
