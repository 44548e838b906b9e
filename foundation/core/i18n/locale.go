// File: locale.go
// Title: Locale Normalization and Detection
// Description: Normalizes, validates, splits and matches locale strings using
//              BCP 47 tags from golang.org/x/text/language.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-16 v0.2.0: Replaced hand-written parsing with language tags

package i18n

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
)

// parseTag accepts "_" as well as "-" between subtags
func parseTag(locale string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// NormalizeLocale returns the canonical form of locale, or "" if it is not a
// well-formed tag
func NormalizeLocale(locale string) string {
	tag, err := parseTag(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}

// ValidateLocale checks that locale is a well-formed, non-empty tag
func ValidateLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return mdwerrors.InputError(mdwerrors.ModuleI18n, "ValidateLocale", locale, "a non-empty locale")
	}
	if _, err := parseTag(locale); err != nil {
		return mdwerrors.FormatError(mdwerrors.ModuleI18n, locale, "BCP 47 tag, e.g. 'en' or 'de-DE'").
			WithOperation("i18n.ValidateLocale")
	}
	return nil
}

// SplitLocale returns the language and the explicit region of locale. The
// region is empty when the locale does not name one.
func SplitLocale(locale string) (lang, country string) {
	tag, err := parseTag(locale)
	if err != nil {
		return "", ""
	}
	base, _ := tag.Base()
	lang = base.String()
	if region, conf := tag.Region(); conf == language.Exact {
		country = region.String()
	}
	return lang, country
}

// DisplayName returns the name of the locale in its own language, or the
// input when the locale is unknown
func DisplayName(locale string) string {
	tag, err := parseTag(locale)
	if err != nil {
		return locale
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// DetectLocale picks the best entry of available for an Accept-Language
// style preference list. It returns fallback when nothing matches.
func DetectLocale(acceptLanguage string, available []string, fallback string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 || len(available) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, a := range available {
		if tag, err := parseTag(a); err == nil {
			tags = append(tags, tag)
			names = append(names, a)
		}
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return names[idx]
}

// ParseLocaleFromFilename extracts the locale from a file name such as
// "de_DE.toml"
func ParseLocaleFromFilename(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return NormalizeLocale(name)
}
