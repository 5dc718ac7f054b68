// Package i18n resolves message keys to display text.
//
// Lookup is a pure function of (language, key): the requested language is
// tried first, then FallbackLanguage, and when neither catalog has the key the
// key itself is returned.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
)

const (
	Chinese = "zh"
	English = "en"

	FallbackLanguage = Chinese
)

// SupportedLanguages is ordered by preference when negotiating.
var SupportedLanguages = []string{Chinese, English}

//go:embed locales/*.yaml
var locales embed.FS

type Translator struct {
	catalogs    map[string]*koanf.Koanf
	defaultLang string
	// order mirrors the matcher's tags; the default comes first.
	order   []string
	matcher language.Matcher
}

// New loads the embedded catalogs. defaultLang is used for requests that
// name no supported language.
func New(defaultLang string) (*Translator, error) {
	if !isSupported(defaultLang) {
		return nil, fmt.Errorf("unsupported default language: %s", defaultLang)
	}

	t := &Translator{
		catalogs:    make(map[string]*koanf.Koanf, len(SupportedLanguages)),
		defaultLang: defaultLang,
	}

	t.order = append(t.order, defaultLang)
	for _, lang := range SupportedLanguages {
		if lang != defaultLang {
			t.order = append(t.order, lang)
		}

		data, err := locales.ReadFile("locales/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s catalog: %w", lang, err)
		}
		raw, err := yaml.Parser().Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s catalog: %w", lang, err)
		}
		k := koanf.New(".")
		if err := k.Load(confmap.Provider(raw, ""), nil); err != nil {
			return nil, fmt.Errorf("failed to load %s catalog: %w", lang, err)
		}
		t.catalogs[lang] = k
	}
	tags := make([]language.Tag, len(t.order))
	for i, lang := range t.order {
		tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// Default returns the language used when a request does not pick one.
func (t *Translator) Default() string {
	return t.defaultLang
}

// Supported reports whether lang has a catalog.
func (t *Translator) Supported(lang string) bool {
	_, ok := t.catalogs[lang]
	return ok
}

// T returns the text for key in lang.
func (t *Translator) T(lang, key string) string {
	if text, ok := t.lookup(lang, key); ok {
		return text
	}
	if text, ok := t.lookup(FallbackLanguage, key); ok {
		return text
	}
	return key
}

// Format is T with {name} placeholders replaced from params.
func (t *Translator) Format(lang, key string, params map[string]string) string {
	text := t.T(lang, key)
	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Negotiate picks a supported language from an Accept-Language header value.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return t.defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.order[index]
}

// Resolve returns lang when it is supported and the default otherwise.
func (t *Translator) Resolve(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if t.Supported(lang) {
		return lang
	}
	return t.defaultLang
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	k, ok := t.catalogs[lang]
	if !ok {
		return "", false
	}
	text, ok := k.Get(key).(string)
	return text, ok
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
