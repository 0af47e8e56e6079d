package infrastructure

import (
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/birthday-invite/gaurav-dawande/internal/i18n"
	"github.com/gofiber/template/html/v2"
)

func TemplateEngine(viewsFS fs.FS, translator i18n.Translator) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) string {
		return translator.T(lang, key, values...)
	})

	engine.AddFunc("dict", func(values ...any) (map[string]any, error) {
		if len(values)%2 != 0 {
			return nil, fmt.Errorf("invalid dict call")
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict keys must be strings")
			}
			dict[key] = values[i+1]
		}
		return dict, nil
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	engine.AddFunc("pad", func(value int) string {
		return fmt.Sprintf("%02d", value)
	})

	// asset appends the release version to static asset URLs so browsers pick up new builds
	engine.AddFunc("asset", func(path, version string) string {
		if version == "" || version == "unknown" {
			return path
		}
		return path + "?v=" + version
	})

	return engine, nil
}
