package knowledge_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lexi-lab/lexiscan/pkg/service/knowledge"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("sections per source", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "bns.txt"), "Section 1. Short title.")
		writeFile(t, filepath.Join(dir, "constitution.txt"), "Article 21. Protection of life.")
		writeFile(t, filepath.Join(dir, "knowledge.toml"), `
[[source]]
id = "bns"
name = "Bharatiya Nyaya Sanhita"
path = "bns.txt"

[[source]]
id = "constitution"
name = "Constitution of India"
path = "constitution.txt"
`)

		base, err := knowledge.Load(ctx, filepath.Join(dir, "knowledge.toml"))
		gt.NoError(t, err).Required()

		text := base.Text()
		gt.Bool(t, strings.Contains(text, "--- BHARATIYA NYAYA SANHITA ---")).True()
		gt.Bool(t, strings.Contains(text, "Section 1. Short title.")).True()
		gt.Bool(t, strings.Contains(text, "--- CONSTITUTION OF INDIA ---")).True()
		gt.Bool(t, strings.Contains(text, "Article 21. Protection of life.")).True()
		gt.Array(t, base.Sources()).Length(2)
	})

	t.Run("missing source file becomes placeholder", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "knowledge.toml"), `
[[source]]
id = "bns"
name = "Bharatiya Nyaya Sanhita"
path = "does-not-exist.txt"
`)

		base, err := knowledge.Load(ctx, filepath.Join(dir, "knowledge.toml"))
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(base.Text(), "(reference text not available)")).True()
	})

	t.Run("missing manifest fails", func(t *testing.T) {
		_, err := knowledge.Load(ctx, filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err)
	})

	t.Run("empty manifest fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "knowledge.toml"), "")
		_, err := knowledge.Load(ctx, filepath.Join(dir, "knowledge.toml"))
		gt.Error(t, err)
	})

	t.Run("incomplete entry fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "knowledge.toml"), `
[[source]]
id = "bns"
name = ""
path = "bns.txt"
`)
		_, err := knowledge.Load(ctx, filepath.Join(dir, "knowledge.toml"))
		gt.Error(t, err)
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("short text is returned whole", func(t *testing.T) {
		base := knowledge.NewFromText("short")
		gt.Value(t, base.Excerpt(100)).Equal("short")
	})

	t.Run("long text is truncated", func(t *testing.T) {
		base := knowledge.NewFromText(strings.Repeat("a", 100))
		gt.Value(t, base.Excerpt(10)).Equal(strings.Repeat("a", 10))
	})

	t.Run("cut lands on a rune boundary", func(t *testing.T) {
		base := knowledge.NewFromText("ααααα")
		excerpt := base.Excerpt(3)
		gt.Value(t, excerpt).Equal("α")
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		base := knowledge.NewFromText("everything")
		gt.Value(t, base.Excerpt(0)).Equal("everything")
	})
}
