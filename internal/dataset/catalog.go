package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TestSampleName is the catalog entry backed by the embedded sample dataset.
const TestSampleName = "TEST_SAMPLE"

//go:embed data/test_sample.json
var testSampleJSON []byte

var ErrUnknownDataset = errors.New("unknown dataset")

// CatalogEntry is a named dataset spec. When DataFile is set the dataset is
// loaded from that file instead of being generated.
type CatalogEntry struct {
	DatasetSpec `yaml:",inline"`
	DataFile    string `yaml:"data_file,omitempty"`

	embedded []byte
}

type catalogFile struct {
	Datasets []CatalogEntry `yaml:"datasets"`
}

type Catalog struct {
	entries map[string]CatalogEntry
}

// NewCatalog returns a catalog holding the built-in entries plus the given ones.
// Later entries replace earlier ones with the same name.
func NewCatalog(entries ...CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[string]CatalogEntry)}
	c.add(CatalogEntry{
		DatasetSpec: DatasetSpec{Name: TestSampleName},
		embedded:    testSampleJSON,
	})
	for _, e := range entries {
		c.add(e)
	}
	return c
}

func (c *Catalog) add(e CatalogEntry) {
	c.entries[catalogKey(e.Name)] = e
}

func catalogKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// LoadCatalog reads a YAML catalog. Relative data_file paths resolve against
// the catalog's directory.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	c, err := ReadCatalog(bytes.NewReader(b), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	return c, nil
}

func ReadCatalog(r io.Reader, baseDir string) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read catalog: decode yaml: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Datasets))
	for i := range f.Datasets {
		e := &f.Datasets[i]
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("read catalog: entry %d: name is required", i)
		}
		key := catalogKey(e.Name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("read catalog: duplicate dataset %q", e.Name)
		}
		seen[key] = struct{}{}

		if e.DataFile != "" {
			if !filepath.IsAbs(e.DataFile) && baseDir != "" {
				e.DataFile = filepath.Join(baseDir, e.DataFile)
			}
			continue
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("read catalog: dataset %q: %w", e.Name, err)
		}
	}

	return NewCatalog(f.Datasets...), nil
}

// Lookup finds an entry by name, ignoring case.
func (c *Catalog) Lookup(name string) (CatalogEntry, bool) {
	e, ok := c.entries[catalogKey(name)]
	return e, ok
}

func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

// Resolve produces the dataset for a named entry: embedded, loaded from its
// data file, or generated from its spec with gen.
func (c *Catalog) Resolve(name string, gen *Generator) (*SampleDataset, error) {
	e, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("resolve dataset %q (available: %s): %w",
			name, strings.Join(c.Names(), ", "), ErrUnknownDataset)
	}

	switch {
	case e.embedded != nil:
		ds, err := ReadSampleDataset(bytes.NewReader(e.embedded))
		if err != nil {
			return nil, fmt.Errorf("resolve dataset %q: %w", e.Name, err)
		}
		return ds, nil
	case e.DataFile != "":
		return LoadSampleDataset(e.DataFile)
	default:
		if gen == nil {
			return nil, fmt.Errorf("resolve dataset %q: generator is required", e.Name)
		}
		ds, err := gen.Generate(e.DatasetSpec)
		if err != nil {
			return nil, fmt.Errorf("resolve dataset %q: %w", e.Name, err)
		}
		return ds, nil
	}
}
