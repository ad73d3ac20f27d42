package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"art-portfolio/internal/domain/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContent = `name: Test Artist
artworks:
  - id: 1
    title: Ethereal Dreams
    medium: Digital Art
    year: "2024"
  - id: 2
    title: Ancient Wisdom
    medium: Oil on Canvas
    year: "2023"
  - id: 3
    title: Untitled Study
    medium: Charcoal
    year: "unknown"
`

func writeContent(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testContent), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	err := root.Execute()
	return buf.String(), err
}

func TestGalleryCommandTable(t *testing.T) {
	out, err := execute(t, "gallery", "--content", writeContent(t), "--order", "asc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SLUG")
	assert.Contains(t, lines[1], "untitled-study", "unparseable year sorts first ascending")
	assert.Contains(t, lines[2], "ancient-wisdom")
	assert.Contains(t, lines[3], "ethereal-dreams")
}

func TestGalleryCommandJSON(t *testing.T) {
	out, err := execute(t, "gallery", "--content", writeContent(t), "--order", "desc", "--category", "painting", "--json")
	require.NoError(t, err)

	var cards []site.Card
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "Ancient Wisdom", cards[0].Title)
	assert.Equal(t, "Painting", cards[0].Category)
}

func TestGalleryCommandRejectsBadFlags(t *testing.T) {
	path := writeContent(t)

	_, err := execute(t, "gallery", "--content", path, "--order", "newest")
	assert.Error(t, err)

	_, err = execute(t, "gallery", "--content", path, "--limit", "-2")
	assert.Error(t, err)

	_, err = execute(t, "gallery", "--content", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSlugifyCommand(t *testing.T) {
	out, err := execute(t, "slugify", "Hello", "World!")
	require.NoError(t, err)
	assert.Equal(t, "hello-world\n", out)

	_, err = execute(t, "slugify")
	assert.Error(t, err)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig("*")
	assert.True(t, all.AllowAllOrigins)
	assert.False(t, all.AllowCredentials)

	list := corsConfig("https://a.example, https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, list.AllowOrigins)
	assert.True(t, list.AllowCredentials)
	assert.NoError(t, list.Validate())
}
