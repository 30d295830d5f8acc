// Package locale holds the UI strings and subject lists, backed by go-i18n
// message files embedded in the binary.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// SubjectCount is the number of subjects in each built-in list.
const SubjectCount = 10

// Direction is one generated research direction for a pairing.
type Direction struct {
	Title string
	Body  string
}

// Translator localizes message IDs into one language.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

// New loads the embedded messages and picks the closest supported language
// to lang. Unsupported languages fall back to English.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFS, "messages/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(messageFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, _ := matcher.Match(language.Make(lang))
	tag := bundle.LanguageTags()[idx]

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		lang:      tag,
	}, nil
}

// Language returns the language in use.
func (t *Translator) Language() language.Tag { return t.lang }

// Languages lists every language with a message file.
func (t *Translator) Languages() []language.Tag { return t.bundle.LanguageTags() }

// T localizes id, returning id itself when no message exists.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf localizes id with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		slog.Warn("missing translation", "id", id, "lang", t.lang.String(), "err", err)
		return id
	}
	return s
}

func (t *Translator) has(id string) bool {
	_, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	return err == nil
}

// SubjectsA returns the first wheel's subjects (natural sciences).
func (t *Translator) SubjectsA() []string { return t.subjects("SubjectA") }

// SubjectsB returns the second wheel's subjects (humanities).
func (t *Translator) SubjectsB() []string { return t.subjects("SubjectB") }

func (t *Translator) subjects(prefix string) []string {
	out := make([]string, SubjectCount)
	for i := range out {
		out[i] = t.T(fmt.Sprintf("%s%d", prefix, i))
	}
	return out
}

// Pair formats "left × right" for the status line.
func (t *Translator) Pair(left, right string) string {
	return t.Tf("CurrentSelection", map[string]any{"Left": left, "Right": right})
}

// Directions generates the research directions shown for a pairing.
func (t *Translator) Directions(left, right string) []Direction {
	data := map[string]any{"Left": left, "Right": right}
	return []Direction{
		{Title: t.T("FusionTitle"), Body: t.Tf("FusionBody", data)},
		{Title: t.T("MethodTitle"), Body: t.Tf("MethodBody", data)},
		{Title: t.T("TrendTitle"), Body: t.Tf("TrendBody", data)},
	}
}
