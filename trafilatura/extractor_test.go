package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/siteaudit"
	"github.com/fwojciec/siteaudit/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Widget Maintenance Guide</title></head>
<body>
  <nav><a href="/">Home</a> <a href="/docs">Docs</a></nav>
  <article>
    <h1>Widget Maintenance Guide</h1>
    <p>Regular maintenance extends the service life of industrial widgets
    considerably. This guide covers the quarterly inspection routine that
    every operator should follow to keep widgets in working order.</p>
    <p>Start by checking the primary bearing assembly for signs of wear.
    Replace any component that shows visible corrosion or play beyond the
    manufacturer tolerance of half a millimeter.</p>
  </article>
  <footer>Copyright Acme Corp</footer>
</body>
</html>`

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	text, err := trafilatura.NewExtractor().ExtractText(articleHTML)

	require.NoError(t, err)
	assert.Contains(t, text, "Regular maintenance extends the service life")
	assert.Contains(t, text, "primary bearing assembly")
}

func TestExtractor_ExtractText_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor().ExtractText("")

	require.Error(t, err)
	assert.Equal(t, siteaudit.EINVALID, siteaudit.ErrorCode(err))
}

func TestExtractor_ExtractText_Trimmed(t *testing.T) {
	t.Parallel()

	text, err := trafilatura.NewExtractor().ExtractText(articleHTML)

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(text), text)
}
