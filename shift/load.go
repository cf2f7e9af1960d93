package shift

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// LoadCatalog reads a catalog from YAML of the form
//
//	am:
//	  fill: "#bd3e75"
//	  text: M
//	  text_fill: "#000000"  # optional
//
// Tokens may not contain KeySeparator and every entry needs a fill.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var entries map[string]Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, errors.Wrap(err, "decoding catalog")
	}
	if len(entries) == 0 {
		return nil, errors.New("catalog is empty")
	}
	for token, e := range entries {
		switch {
		case token == "":
			return nil, errors.New("catalog has an empty token")
		case strings.Contains(token, KeySeparator):
			return nil, errors.Newf("catalog token %q contains %q", token, KeySeparator)
		case e.Fill == "":
			return nil, errors.Newf("catalog token %q has no fill", token)
		}
	}
	return NewCatalog(entries), nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening catalog")
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}
