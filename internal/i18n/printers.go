package i18n

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Translator interface {
	T(lang, key string, values ...any) string
}

// Printers holds one message printer per supported language.
type Printers struct {
	printers  map[string]*message.Printer
	languages []string
	matcher   language.Matcher
}

// NewPrinters reads every yml file at the root of dir and builds a printer for
// each. Files must be named after the two-letter code of their language, e. g.
// "es.yml" for spanish. fallbackLang is used for unknown languages and keys.
func NewPrinters(dir fs.FS, fallbackLang string) (*Printers, error) {
	cat, languages, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	p := &Printers{
		printers:  make(map[string]*message.Printer, len(languages)),
		languages: languages,
	}
	tags := make([]language.Tag, len(languages))
	for i, lang := range languages {
		tags[i] = language.Make(lang)
		p.printers[lang] = message.NewPrinter(tags[i], message.Catalog(cat))
	}
	p.matcher = language.NewMatcher(tags)

	return p, nil
}

// NewCatalogFromFolder generates a translation catalog from the yml files in dir.
// The returned languages start with fallbackLang.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, []string, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, nil, err
	}

	translations := map[string]catalog.Dictionary{}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".yml" {
			continue
		}
		yamlFile, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, nil, err
		}
		dict, err := ParseYAMLDict(yamlFile)
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing %s: %w", file.Name(), err)
		}
		translations[strings.TrimSuffix(file.Name(), ".yml")] = dict
	}

	if _, ok := translations[fallbackLang]; !ok {
		return nil, nil, fmt.Errorf("no translation file found for fallback language '%s'", fallbackLang)
	}

	languages := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != fallbackLang {
			languages = append(languages, lang)
		}
	}
	sort.Strings(languages)
	languages = append([]string{fallbackLang}, languages...)

	cat, err := catalog.NewFromMap(translations, catalog.Fallback(language.MustParse(fallbackLang)))
	if err != nil {
		return nil, nil, err
	}
	return cat, languages, nil
}

func (p *Printers) T(lang, key string, values ...any) string {
	printer, ok := p.printers[lang]
	if !ok {
		printer = p.printers[p.languages[0]]
	}
	return printer.Sprintf(key, values...)
}

func (p *Printers) Languages() []string {
	return p.languages
}

func (p *Printers) Supports(lang string) bool {
	_, ok := p.printers[lang]
	return ok
}

// Match picks the best supported language for an Accept-Language header value.
func (p *Printers) Match(acceptLanguage string) string {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	tag, _, _ := p.matcher.Match(tags...)
	base, _ := tag.Base()
	if p.Supports(base.String()) {
		return base.String()
	}
	return p.languages[0]
}
