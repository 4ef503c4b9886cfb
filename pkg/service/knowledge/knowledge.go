package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// Source is one legal reference text listed in the manifest
type Source struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Validate checks if the source entry is complete
func (s *Source) Validate() error {
	if s.ID == "" {
		return goerr.New("knowledge source id is required")
	}
	if s.Name == "" {
		return goerr.New("knowledge source name is required", goerr.V("id", s.ID))
	}
	if s.Path == "" {
		return goerr.New("knowledge source path is required", goerr.V("id", s.ID))
	}
	return nil
}

type manifest struct {
	Sources []Source `toml:"source"`
}

// Base holds the concatenated knowledge base text. It is loaded once at
// process start and immutable afterwards, so it is safe for unsynchronized
// concurrent reads.
type Base struct {
	text    string
	sources []Source
}

const missingPlaceholder = "(reference text not available)"

// Load reads the TOML manifest and the source files it lists. A missing
// source file is logged and replaced with a placeholder section; legal
// connections in the analysis will just be less specific.
func Load(ctx context.Context, manifestPath string) (*Base, error) {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read knowledge manifest",
			goerr.V("path", manifestPath),
		)
	}

	var m manifest
	if err := toml.Unmarshal(raw, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to parse knowledge manifest",
			goerr.V("path", manifestPath),
		)
	}
	if len(m.Sources) == 0 {
		return nil, goerr.New("knowledge manifest lists no sources",
			goerr.V("path", manifestPath),
		)
	}

	baseDir := filepath.Dir(manifestPath)
	logger := logging.From(ctx)

	var sb strings.Builder
	for i := range m.Sources {
		src := &m.Sources[i]
		if err := src.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid knowledge manifest entry",
				goerr.V("index", i),
			)
		}

		path := src.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		text, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("knowledge source not found, using placeholder",
				"id", src.ID,
				"path", path,
			)
			text = []byte(missingPlaceholder)
		} else {
			logger.Info("knowledge source loaded",
				"id", src.ID,
				"name", src.Name,
				"size", len(text),
			)
		}

		fmt.Fprintf(&sb, "--- %s ---\n%s\n\n", strings.ToUpper(src.Name), strings.TrimSpace(string(text)))
	}

	return &Base{
		text:    strings.TrimSpace(sb.String()),
		sources: m.Sources,
	}, nil
}

// NewFromText creates a Base directly from text. Used for tests and for
// running without a manifest.
func NewFromText(text string) *Base {
	return &Base{text: text}
}

// Text returns the full concatenated knowledge base text
func (b *Base) Text() string {
	return b.text
}

// Excerpt returns at most limit bytes of the knowledge base text, cut at a
// rune boundary
func (b *Base) Excerpt(limit int) string {
	if limit <= 0 || len(b.text) <= limit {
		return b.text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(b.text[cut]) {
		cut--
	}
	return b.text[:cut]
}

// Sources returns the manifest entries the base was loaded from
func (b *Base) Sources() []Source {
	return b.sources
}
