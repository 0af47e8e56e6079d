package infrastructure_test

import (
	"bytes"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/birthday-invite/gaurav-dawande/internal/webserver/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoTranslator struct{}

func (echoTranslator) T(lang, key string, values ...any) string {
	return lang + ":" + fmt.Sprintf(key, values...)
}

func TestTemplateEngineFunctions(t *testing.T) {
	views := fstest.MapFS{
		"page.html": {Data: []byte(`{{t .Lang "Hi %s" .Name}}|{{uppercase .Lang}}|{{pad .N}}|{{with dict "a" 1}}{{.a}}{{end}}`)},
	}

	engine, err := infrastructure.TemplateEngine(views, echoTranslator{})
	require.NoError(t, err)
	require.NoError(t, engine.Load())

	var out bytes.Buffer
	err = engine.Render(&out, "page", map[string]any{"Lang": "es", "Name": "<Ada>", "N": 7})
	require.NoError(t, err)
	assert.Equal(t, "es:Hi &lt;Ada&gt;|ES|07|1", out.String())
}
