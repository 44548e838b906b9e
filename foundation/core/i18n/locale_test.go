package i18n

import (
	"testing"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"en_us", "en-US"},
		{"DE-de", "de-DE"},
		{" fr-CA ", "fr-CA"},
		{"", ""},
		{"not a locale", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLocale(tt.input); got != tt.want {
				t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateLocale(t *testing.T) {
	if err := ValidateLocale("de-AT"); err != nil {
		t.Errorf("ValidateLocale(de-AT) = %v", err)
	}

	err := ValidateLocale("  ")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("blank locale should be INVALID_INPUT, got %v", err)
	}

	err = ValidateLocale("en--US")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("malformed locale should be INVALID_FORMAT, got %v", err)
	}
}

func TestSplitLocale(t *testing.T) {
	tests := []struct {
		input       string
		wantLang    string
		wantCountry string
	}{
		{"de-AT", "de", "AT"},
		{"en_GB", "en", "GB"},
		{"de", "de", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		lang, country := SplitLocale(tt.input)
		if lang != tt.wantLang || country != tt.wantCountry {
			t.Errorf("SplitLocale(%q) = %q, %q; want %q, %q", tt.input, lang, country, tt.wantLang, tt.wantCountry)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("de"); got != "Deutsch" {
		t.Errorf("DisplayName(de) = %q", got)
	}
	if got := DisplayName("en"); got != "English" {
		t.Errorf("DisplayName(en) = %q", got)
	}
	if got := DisplayName("???"); got != "???" {
		t.Errorf("DisplayName should echo unparsable input, got %q", got)
	}
}

func TestDetectLocale(t *testing.T) {
	available := []string{"en", "de"}

	tests := []struct {
		header string
		want   string
	}{
		{"de-CH,de;q=0.9,en;q=0.8", "de"},
		{"en-US,en;q=0.9", "en"},
		{"fr-FR", "en-fallback"},
		{"", "en-fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := DetectLocale(tt.header, available, "en-fallback"); got != tt.want {
				t.Errorf("DetectLocale(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseLocaleFromFilename(t *testing.T) {
	if got := ParseLocaleFromFilename("locales/de_DE.toml"); got != "de-DE" {
		t.Errorf("ParseLocaleFromFilename = %q", got)
	}
}
