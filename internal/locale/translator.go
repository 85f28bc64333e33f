package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFiles embed.FS

type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator loads the embedded message catalog for every supported locale.
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, l := range Supported {
		name := fmt.Sprintf("messages/messages.%s.toml", l)
		if _, err := bundle.LoadMessageFileFS(messageFiles, name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

func (t *Translator) T(l Locale, messageID string) string {
	return t.localize(l, messageID, nil, nil)
}

func (t *Translator) With(l Locale, messageID string, data map[string]any) string {
	return t.localize(l, messageID, data, nil)
}

// Count translates with plural selection on n; data may be nil.
func (t *Translator) Count(l Locale, messageID string, data map[string]any, n int) string {
	return t.localize(l, messageID, data, n)
}

func (t *Translator) localize(l Locale, messageID string, data map[string]any, count any) string {
	localizer := i18n.NewLocalizer(t.bundle, string(l), string(Default))
	out, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID, Other: messageID},
		TemplateData:   data,
		PluralCount:    count,
	})
	if err != nil {
		log.Warn().Err(err).Str("message_id", messageID).Str("locale", string(l)).Msg("translation missing")
	}
	return out
}
