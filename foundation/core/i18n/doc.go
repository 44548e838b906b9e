// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n provides locale handling, locale-aware number
//              formatting and parsing, and message catalogs loaded from TOML
//              or YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Rebuilt on golang.org/x/text; number formats added,
//                      template manager and file watching removed

/*
Package i18n provides the locale layer that sits between the fixed-locale
numeric core and the people reading its results.

# Locales

Locale strings are parsed as BCP 47 tags with golang.org/x/text/language.
Underscores are accepted as separators, so "de_DE", "de-de" and "de-DE" all
normalize to "de-DE":

	i18n.NormalizeLocale("en_us")          // "en-US"
	i18n.SplitLocale("de-AT")              // "de", "AT"
	i18n.DisplayName("de")                 // "Deutsch"
	i18n.DetectLocale("de-CH,de;q=0.9", []string{"en", "de"}, "en") // "de"

# Number Formats

The strnum package parses numbers in the C locale only. NumberFormat adds
the locale's decimal and grouping separators on both directions:

	nf, _ := i18n.NewNumberFormat("de-DE")
	nf.Format(1234.5, 12)      // "1.234,5"
	v, _ := nf.Parse("1.234,5") // 1234.5

Values too large or too small for positional notation at the requested
number of fraction digits are written in scientific notation. NaN and the
infinities are written as "NaN", "+Inf" and "-Inf" in every locale.

# Message Catalogs

A Catalog maps keys to printf-style messages per locale. Files are named
after their locale (en.toml, de_DE.yaml) and nested tables flatten to dotted
keys:

	[tui]
	title = "numcore calculator"
	history = "%d entries"

	cat := i18n.DefaultCatalog()
	cat.T("de", "tui.history", 3) // "3 Einträge"

Lookups fall back to the catalog's fallback locale for missing keys and to
the key itself when no locale has it. All Catalog and NumberFormat methods
are safe for concurrent use.
*/
package i18n
