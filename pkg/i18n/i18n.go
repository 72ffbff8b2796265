package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// Languages the embedded bundle ships, fallback first.
var Languages = []string{"en", "ru"}

type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

var (
	defaultBundle     *Bundle
	defaultBundleOnce sync.Once
)

// Default returns the bundle built from the embedded locales.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		b, err := Load(locales, "locales", Languages[0], Languages)
		if err != nil {
			panic(err)
		}
		defaultBundle = b
	})
	return defaultBundle
}

// Load reads <dir>/<lang>.json for every supported language. Only the
// fallback language is required to exist.
func Load(fsys fs.FS, dir string, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}

	// The fallback goes first so the matcher defaults to it.
	b.supported = append(b.supported, fallback)
	for _, l := range supported {
		if l != fallback {
			b.supported = append(b.supported, l)
		}
	}

	tags := make([]language.Tag, 0, len(b.supported))
	for _, l := range b.supported {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "invalid language %s", l)
		}
		tags = append(tags, tag)

		raw, err := fs.ReadFile(fsys, path.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, pkgerrors.Wrapf(err, "failed to load locale %s", l)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to unmarshal locale %s", l)
		}
		b.dict[l] = m
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

func (b *Bundle) Fallback() string { return b.fallback }

// T returns the translation of key in lang, falling back to the fallback
// language and finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Match returns the supported language closest to tag, e.g. "ru-RU" -> "ru".
func (b *Bundle) Match(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return b.fallback
	}
	_, idx, _ := b.matcher.Match(t)
	return b.supported[idx]
}

// Resolve chooses the best language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, _ := b.matcher.Match(tags...)
	return b.supported[idx]
}

// FromPath returns the language named by the first path segment, as in
// /ru/convert. ok is false when the segment is not a supported language.
func (b *Bundle) FromPath(p string) (lang string, ok bool) {
	seg, _, _ := strings.Cut(strings.TrimLeft(p, "/"), "/")
	for _, l := range b.supported {
		if seg == l {
			return l, true
		}
	}
	return "", false
}
