// Package content loads the portfolio from its YAML file and keeps an
// up-to-date copy in memory.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"art-portfolio/internal/domain/site"
	"art-portfolio/internal/logger"

	"gopkg.in/yaml.v3"
)

// Parse decodes and validates portfolio YAML. Unknown keys are rejected so
// typos in the content file surface at load time.
func Parse(data []byte) (site.Portfolio, error) {
	var p site.Portfolio

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return site.Portfolio{}, errors.New("content file is empty")
		}
		return site.Portfolio{}, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return site.Portfolio{}, fmt.Errorf("invalid content: %w", err)
	}
	return p, nil
}

// Load reads and parses the file at path.
func Load(path string) (site.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return site.Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Catalog serves the last successfully loaded portfolio.
type Catalog struct {
	path string
	log  *logger.Logger

	mu       sync.RWMutex
	current  site.Portfolio
	loadedAt time.Time
}

// NewCatalog loads path once; a broken file at startup is an error.
func NewCatalog(path string, log *logger.Logger) (*Catalog, error) {
	c := &Catalog{path: path, log: log.WithFields(map[string]any{"component": "content", "path": path})}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewStaticCatalog serves p without any backing file.
func NewStaticCatalog(p site.Portfolio) *Catalog {
	return &Catalog{current: p, loadedAt: time.Now()}
}

// Reload re-reads the file. On failure the previous content stays live.
func (c *Catalog) Reload() error {
	p, err := Load(c.path)
	if err != nil {
		c.log.Error(err, "content reload failed, keeping previous version")
		return err
	}

	c.mu.Lock()
	c.current = p
	c.loadedAt = time.Now()
	c.mu.Unlock()

	c.log.WithFields(map[string]any{"artworks": len(p.Artworks)}).Info("content loaded")
	return nil
}

// Portfolio returns a copy safe to modify.
func (c *Catalog) Portfolio() site.Portfolio {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.current
	p.Socials = slices.Clone(p.Socials)
	p.Artworks = slices.Clone(p.Artworks)
	return p
}

func (c *Catalog) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}
