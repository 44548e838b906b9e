// File: catalog.go
// Title: Message Catalogs
// Description: Loads TOML and YAML message files into an x/text catalog and
//              resolves keys per locale with fallback.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Messages stored in golang.org/x/text/message/catalog,
//                      templates replaced by printf verbs

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwerrors "github.com/msto63/numcore/foundation/core/errors"
)

//go:embed locales/*.toml
var bundled embed.FS

// DefaultLocale is the fallback locale of the bundled catalog
const DefaultLocale = "en"

// Catalog holds messages for a set of locales
type Catalog struct {
	mu       sync.RWMutex
	fallback language.Tag
	builder  *catalog.Builder
	tags     []language.Tag
	keys     map[language.Tag]map[string]struct{}
}

// NewCatalog creates an empty catalog that falls back to the given locale
func NewCatalog(fallback string) (*Catalog, error) {
	if err := ValidateLocale(fallback); err != nil {
		return nil, err
	}
	tag, _ := parseTag(fallback)
	return &Catalog{
		fallback: tag,
		builder:  catalog.NewBuilder(catalog.Fallback(tag)),
		keys:     make(map[language.Tag]map[string]struct{}),
	}, nil
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// DefaultCatalog returns the catalog built from the bundled message files
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		cat, err := NewCatalog(DefaultLocale)
		if err != nil {
			panic(err)
		}
		if err := cat.Load(bundled, "locales"); err != nil {
			panic(fmt.Sprintf("i18n: bundled messages: %v", err))
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Load reads every .toml, .yaml and .yml file in dir. The file name without
// extension is the locale.
func (c *Catalog) Load(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read message directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.Load").
			WithDetail("directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		locale := ParseLocaleFromFilename(name)
		if locale == "" {
			return mdwerrors.FormatError(mdwerrors.ModuleI18n, name, "<locale>.toml").
				WithOperation("i18n.Load")
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return mdwerrors.OperationError(mdwerrors.ModuleI18n, "Load", err, map[string]interface{}{"file": name})
		}

		data := make(map[string]interface{})
		if ext == ".toml" {
			err = toml.Unmarshal(content, &data)
		} else {
			err = yaml.Unmarshal(content, &data)
		}
		if err != nil {
			return mdwerror.Wrap(err, "failed to parse message file").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.Load").
				WithDetail("file", name)
		}

		if err := c.AddMessages(locale, data); err != nil {
			return err
		}
	}
	return nil
}

// AddMessages registers nested message data for locale. Nested maps are
// flattened to dotted keys.
func (c *Catalog) AddMessages(locale string, data map[string]interface{}) error {
	if err := ValidateLocale(locale); err != nil {
		return err
	}
	tag, _ := parseTag(locale)

	flat := make(map[string]string)
	flatten("", data, flat)

	c.mu.Lock()
	defer c.mu.Unlock()

	keys, ok := c.keys[tag]
	if !ok {
		keys = make(map[string]struct{})
		c.keys[tag] = keys
		c.tags = append(c.tags, tag)
	}
	for key, msg := range flat {
		if err := c.builder.SetString(tag, key, msg); err != nil {
			return mdwerrors.OperationError(mdwerrors.ModuleI18n, "AddMessages", err, map[string]interface{}{"key": key})
		}
		keys[key] = struct{}{}
	}
	return nil
}

func flatten(prefix string, data map[string]interface{}, out map[string]string) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch value := v.(type) {
		case map[string]interface{}:
			flatten(key, value, out)
		default:
			out[key] = fmt.Sprint(value)
		}
	}
}

// match returns the loaded locale closest to locale, or the fallback
func (c *Catalog) match(locale string) language.Tag {
	tag, err := parseTag(locale)
	if err != nil || len(c.tags) == 0 {
		return c.fallback
	}
	_, idx, conf := language.NewMatcher(c.tags).Match(tag)
	if conf == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// Printer returns a printer resolving keys in the closest loaded locale
func (c *Catalog) Printer(locale string) *message.Printer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return message.NewPrinter(c.match(locale), message.Catalog(c.builder))
}

// T formats the message for key in locale. Keys missing in the locale are
// looked up in the fallback locale; unknown keys are returned as they are.
func (c *Catalog) T(locale, key string, args ...interface{}) string {
	c.mu.RLock()
	tag := c.match(locale)
	if _, ok := c.keys[tag][key]; !ok {
		tag = c.fallback
	}
	c.mu.RUnlock()

	return message.NewPrinter(tag, message.Catalog(c.builder)).Sprintf(key, args...)
}

// Has reports whether key is defined for locale or the fallback
func (c *Catalog) Has(locale, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.keys[c.match(locale)][key]; ok {
		return true
	}
	_, ok := c.keys[c.fallback][key]
	return ok
}

// Locales returns the loaded locales, sorted
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.tags))
	for _, tag := range c.tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Keys returns every key known in any locale, sorted
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, keys := range c.keys {
		for k := range keys {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
