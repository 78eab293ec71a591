package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
	"github.com/yungbote/neurobridge-tutorials/internal/types"
)

// NamePlaceholder is substituted with the display name in the prose fields of a lesson
// (title, description, usage). Syntax and code are served exactly as written.
const NamePlaceholder = "{name}"

const catalogVersion = 1

//go:embed data/*.yaml
var catalogFS embed.FS

type yamlCatalogFile struct {
	Catalog   string             `yaml:"catalog"`
	Version   int                `yaml:"version"`
	Providers []yamlProviderSpec `yaml:"providers"`
}

type yamlProviderSpec struct {
	Key     string              `yaml:"key"`
	Lessons []types.SectionSpec `yaml:"lessons"`
}

// Catalog is an immutable set of lesson lists keyed by provider.
type Catalog struct {
	providers map[types.ProviderKey][]types.SectionSpec
}

type defaultLoader struct {
	load     func() (*Catalog, error)
	once     sync.Once
	warnOnce sync.Once
	cat      *Catalog
	err      error
}

func (d *defaultLoader) get(log *logger.Logger) *Catalog {
	d.once.Do(func() {
		d.cat, d.err = d.load()
		if d.err != nil {
			d.cat = Fallback()
		}
	})
	if d.err != nil && log != nil {
		d.warnOnce.Do(func() {
			log.Warn("tutorial catalog load failed; using fallback", "error", d.err)
		})
	}
	return d.cat
}

var defaults = &defaultLoader{load: func() (*Catalog, error) { return Load("") }}

// Default loads the embedded catalog once. A catalog that fails to load is replaced by
// the compiled-in fallback so lookups never come back empty. Operator directories go
// through Load with the configured catalog_dir instead.
func Default(log *logger.Logger) *Catalog {
	return defaults.get(log)
}

// Load parses and validates the catalog. An empty dir selects the embedded files.
func Load(dir string) (*Catalog, error) {
	files, err := readCatalogFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no catalog files found")
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	providers := map[types.ProviderKey][]types.SectionSpec{}
	for _, name := range names {
		var file yamlCatalogFile
		if err := yaml.Unmarshal(files[name], &file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		if err := validateCatalogFile(&file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
		for _, p := range file.Providers {
			key := types.ProviderKey(strings.TrimSpace(p.Key))
			if _, exists := providers[key]; exists {
				return nil, fmt.Errorf("catalog %s: duplicate provider %s", name, key)
			}
			providers[key] = p.Lessons
		}
	}

	for _, key := range types.AllProviderKeys() {
		if _, ok := providers[key]; !ok {
			return nil, fmt.Errorf("missing provider %s", key)
		}
	}
	return &Catalog{providers: providers}, nil
}

func readCatalogFiles(dir string) (map[string][]byte, error) {
	var fsys fs.FS = catalogFS
	pattern := "data/*.yaml"
	if dir = strings.TrimSpace(dir); dir != "" {
		fsys = os.DirFS(dir)
		pattern = "*.yaml"
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", m, err)
		}
		out[filepath.Base(m)] = data
	}
	return out, nil
}

func validateCatalogFile(file *yamlCatalogFile) error {
	if file == nil {
		return errors.New("missing catalog")
	}
	category := types.Category(strings.TrimSpace(file.Catalog))
	if !category.Valid() {
		return fmt.Errorf("unknown catalog category %q", file.Catalog)
	}
	if file.Version != catalogVersion {
		return fmt.Errorf("unsupported version %d", file.Version)
	}
	if len(file.Providers) == 0 {
		return errors.New("no providers defined")
	}
	for _, p := range file.Providers {
		key := types.ProviderKey(strings.TrimSpace(p.Key))
		if !key.Valid() {
			return fmt.Errorf("unknown provider %q", p.Key)
		}
		if key.Category() != category {
			return fmt.Errorf("provider %s belongs to %s, not %s", key, key.Category(), category)
		}
		if len(p.Lessons) == 0 {
			return fmt.Errorf("provider %s: no lessons", key)
		}
		for i, lesson := range p.Lessons {
			if strings.TrimSpace(lesson.Title) == "" {
				return fmt.Errorf("provider %s: lesson %d has no title", key, i+1)
			}
		}
	}
	return nil
}

// Lessons returns a fresh copy of the provider's lessons with the display name filled in.
// Syntax and code are copied verbatim.
// Unknown keys resolve to the general provider.
func (c *Catalog) Lessons(key types.ProviderKey, displayName string) []types.SectionSpec {
	lessons, ok := c.providers[key]
	if !ok {
		lessons = c.providers[types.ProviderGeneral]
	}
	out := make([]types.SectionSpec, len(lessons))
	for i, l := range lessons {
		out[i] = types.SectionSpec{
			Title:       fillName(l.Title, displayName),
			Description: fillName(l.Description, displayName),
			Syntax:      l.Syntax,
			Usage:       fillName(l.Usage, displayName),
			Code:        l.Code,
		}
	}
	return out
}

// Count is the number of lessons the provider serves.
func (c *Catalog) Count(key types.ProviderKey) int {
	if lessons, ok := c.providers[key]; ok {
		return len(lessons)
	}
	return len(c.providers[types.ProviderGeneral])
}

// Keys lists the loaded providers in canonical order.
func (c *Catalog) Keys() []types.ProviderKey {
	out := make([]types.ProviderKey, 0, len(c.providers))
	for _, key := range types.AllProviderKeys() {
		if _, ok := c.providers[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

func fillName(s, displayName string) string {
	if !strings.Contains(s, NamePlaceholder) {
		return s
	}
	return strings.ReplaceAll(s, NamePlaceholder, displayName)
}
