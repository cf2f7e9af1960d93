// Package shift turns shift keys such as "am_pm_leave" into pie icons: one
// equal slice per shift category, each filled with the category color and
// labelled with a short glyph.
package shift

import (
	"sort"
	"strings"

	"github.com/vodvud/shift-svg/logger"
)

// DefaultLabelFill is the label color used when an entry does not set one.
const DefaultLabelFill = "#ffffff"

// KeySeparator separates category tokens inside a key.
const KeySeparator = "_"

// Entry is what a category token resolves to.
type Entry struct {
	Fill      string `yaml:"fill"`
	Label     string `yaml:"text"`
	LabelFill string `yaml:"text_fill,omitempty"`
}

// LabelColor returns the label fill, falling back to DefaultLabelFill.
func (e Entry) LabelColor() string {
	if e.LabelFill == "" {
		return DefaultLabelFill
	}
	return e.LabelFill
}

// Catalog maps category tokens to entries. It is read-only once built and
// safe for concurrent use.
type Catalog struct {
	entries map[string]Entry
}

// NewCatalog copies entries into a new catalog.
func NewCatalog(entries map[string]Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for token, e := range entries {
		c.entries[token] = e
	}
	return c
}

// Default is the built-in catalog of shift categories.
var Default = NewCatalog(map[string]Entry{
	"empty": {Fill: "#e6e6e6"},
	"am":    {Fill: "#bd3e75", Label: "M"},
	"pm":    {Fill: "#ee6b2e", Label: "A"},
	"night": {Fill: "#00c0ee", Label: "N"},
	"en":    {Fill: "#128b2a", Label: "EN"},
	"day":   {Fill: "#df9f04", Label: "D"},
	"leave": {Fill: "#797979", Label: "L"},
	"lt":    {Fill: "#ff001b", Label: "LT"},
	"er":    {Fill: "#b70000", Label: "ER"},
	"h":     {Fill: "#8d8d00", Label: "H"},
	"off":   {Fill: "#37434d", Label: "O"},
})

// Lookup returns the entry for token.
func (c *Catalog) Lookup(token string) (Entry, bool) {
	e, ok := c.entries[token]
	return e, ok
}

// Len returns the number of tokens in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Tokens returns all tokens in lexical order.
func (c *Catalog) Tokens() []string {
	tokens := make([]string, 0, len(c.entries))
	for token := range c.entries {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Resolve splits key on KeySeparator and looks every token up, keeping the
// key's order and any repeats. Unknown tokens are dropped.
func (c *Catalog) Resolve(key string) []Entry {
	var entries []Entry
	for _, token := range strings.Split(key, KeySeparator) {
		e, ok := c.entries[token]
		if !ok {
			logger.Logger.Debugw("Dropping unknown shift token", "token", token, "key", key)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
