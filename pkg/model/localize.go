package model

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to the missing-translation handler when
// LocalizeForm runs without a Translator.
var ErrMissingTranslator = errors.New("model: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the text used when key cannot be
// translated. fallback is the untranslated text declared on the attribute.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// MapTranslator is an in-memory Translator keyed by locale, then message key.
type MapTranslator map[string]map[string]string

func (m MapTranslator) Translate(locale, key string, _ ...any) (string, error) {
	if msg, ok := m[locale][key]; ok {
		return msg, nil
	}
	return "", errors.New("model: missing translation " + locale + "/" + key)
}

// LocalizeForm returns a copy of form whose labels, hints and placeholders
// are translated through their message keys. Attributes without keys are
// copied unchanged. A nil onMissing keeps the declared text, or the key when
// there is none.
func LocalizeForm(form *Form, locale string, t Translator, onMissing MissingTranslationHandler) *Form {
	if form == nil {
		return nil
	}
	if onMissing == nil {
		onMissing = keepFallback
	}

	out := *form
	out.Attributes = make([]Attribute, len(form.Attributes))
	for idx, attr := range form.Attributes {
		attr.Errors = append([]string(nil), attr.Errors...)
		if attr.LabelKey != "" {
			fallback := attr.Label
			if fallback == "" {
				fallback = GenerateLabel(attr.Name)
			}
			attr.Label = translate(locale, attr.LabelKey, fallback, t, onMissing)
		}
		if attr.HintKey != "" {
			attr.Hint = translate(locale, attr.HintKey, attr.Hint, t, onMissing)
		}
		if attr.PlaceholderKey != "" {
			attr.Placeholder = translate(locale, attr.PlaceholderKey, attr.Placeholder, t, onMissing)
		}
		out.Attributes[idx] = attr
	}
	return &out
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, fallback, err)
}

func keepFallback(_, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
