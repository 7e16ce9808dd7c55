package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed pages.yaml
var manifest []byte

// Page is one entry of the playground: a route, its sidebar title and the
// template that renders it.
type Page struct {
	Route    string `yaml:"route"`
	Title    string `yaml:"title"`
	Template string `yaml:"template"`
	Group    string `yaml:"group"`
}

// Slug is the route without the leading slash, used for element ids.
func (p Page) Slug() string {
	return strings.TrimPrefix(p.Route, "/")
}

// Catalog is the ordered list of widget pages driving the sidebar and
// breadcrumb.
type Catalog struct {
	Pages []Page `yaml:"pages"`
}

// Load parses the embedded page manifest.
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(manifest, c); err != nil {
		return nil, fmt.Errorf("parse page manifest: %w", err)
	}
	if len(c.Pages) == 0 {
		return nil, fmt.Errorf("page manifest is empty")
	}
	return c, nil
}

// ByRoute finds a page by its route.
func (c *Catalog) ByRoute(route string) (Page, bool) {
	for _, p := range c.Pages {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}

// Sidebar returns the pages of a nav group, in manifest order.
func (c *Catalog) Sidebar(group string) []Page {
	var out []Page
	for _, p := range c.Pages {
		if p.Group == group {
			out = append(out, p)
		}
	}
	return out
}

// Breadcrumb resolves a route to its display title, falling back to the
// route itself for unknown paths.
func (c *Catalog) Breadcrumb(route string) string {
	if p, ok := c.ByRoute(route); ok {
		return p.Title
	}
	return route
}
