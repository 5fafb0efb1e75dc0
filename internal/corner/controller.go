// Package corner applies zone metadata to the indicator strip: a readable
// document lights the corner colour, anything else holds the strip in its
// blue fallback.
package corner

import (
	"fmt"
	"sync"

	"zonelight/refactor/internal/indicator"
	"zonelight/refactor/internal/logger"
	"zonelight/refactor/internal/pkg/id"
	"zonelight/refactor/internal/zone"
)

type Controller struct {
	strip *indicator.Strip
	file  *zone.File

	mu      sync.RWMutex
	meta    zone.Metadata
	valid   bool
	lastErr error
	applyID string
}

func New(strip *indicator.Strip, file *zone.File) *Controller {
	return &Controller{strip: strip, file: file}
}

func (c *Controller) Strip() *indicator.Strip { return c.strip }

func (c *Controller) File() *zone.File { return c.file }

// LoadFile reads the zone file and applies it. Any failure, whatever its
// kind, puts the strip into fallback and is returned for logging.
func (c *Controller) LoadFile() error {
	m, err := c.file.Load()
	if err == nil {
		err = c.Apply(m)
	}
	if err != nil {
		c.fail(fmt.Errorf("load %s: %w", c.file.Path, err))
		return c.Err()
	}
	return nil
}

// Apply lights the corner for m. On error the strip is left untouched.
func (c *Controller) Apply(m zone.Metadata) error {
	if err := c.strip.SetCorner(m.Zone, m.Arena); err != nil {
		return err
	}

	c.mu.Lock()
	c.meta = m
	c.valid = true
	c.lastErr = nil
	c.applyID = id.ApplyID()
	applyID := c.applyID
	c.mu.Unlock()

	logger.Info("corner %d applied (arena %q) [%s]", m.Zone, m.Arena, applyID)
	return nil
}

// Update decodes a metadata document, persists it to the zone file and
// applies it. Nothing is written or changed unless the document is valid.
func (c *Controller) Update(data []byte) (zone.Metadata, error) {
	logger.Document("zone update", data)

	m, err := c.file.Decode(data)
	if err != nil {
		return zone.Metadata{}, err
	}
	if err := indicator.CheckZone(m.Zone); err != nil {
		return zone.Metadata{}, err
	}
	if err := c.file.Save(m); err != nil {
		return zone.Metadata{}, fmt.Errorf("save %s: %w", c.file.Path, err)
	}
	if err := c.Apply(m); err != nil {
		return zone.Metadata{}, err
	}
	return m, nil
}

// Current returns the applied metadata; ok is false while in fallback.
func (c *Controller) Current() (m zone.Metadata, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.meta, c.valid
}

// Err is the failure that caused the current fallback, if any.
func (c *Controller) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.valid = false
	c.lastErr = err
	c.mu.Unlock()

	logger.Error("%v", err)
	c.strip.Fallback()
}
