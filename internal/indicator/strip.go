// Package indicator models the four-pixel status strip of a corner
// indicator. Pixel 0 carries the heartbeat; pixels 1 and 2 show the corner
// colour for arena A and arena B respectively. Nothing here touches
// hardware: a Strip only holds the colours a driver would push out.
package indicator

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Color is a 24-bit 0xRRGGBB value.
type Color uint32

func RGB(r, g, b uint8) Color { return Color(r)<<16 | Color(g)<<8 | Color(b) }

func (c Color) RGB() (r, g, b uint8) { return uint8(c >> 16), uint8(c >> 8), uint8(c) }

func (c Color) Hex() string { return fmt.Sprintf("#%06x", uint32(c)&0xffffff) }

const (
	PixelCount = 4

	HeartbeatPixel = 0
	ArenaAPixel    = 1
	ArenaBPixel    = 2

	// Brightness is the driver-side scale factor; the LEDs are very bright.
	Brightness = 0.02
)

const (
	Off  Color = 0x000000
	Blue Color = 0x0000ff
)

// Corners holds the colour of each zone. Orange is pushed towards red to
// keep it distinct from yellow.
var Corners = [...]Color{0x00ff00, 0xff3300, 0xff00ff, 0xffff00}

var ErrZoneRange = errors.New("indicator: zone out of range")

// CheckZone reports whether zone has a corner colour.
func CheckZone(zone int) error {
	if zone < 0 || zone >= len(Corners) {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrZoneRange, zone, len(Corners)-1)
	}
	return nil
}

type Strip struct {
	mu       sync.RWMutex
	pixels   [PixelCount]Color
	corner   int
	arena    string
	fallback bool
	updated  time.Time
}

func NewStrip() *Strip {
	return &Strip{corner: -1, updated: time.Now()}
}

// SetCorner lights the arena pixel(s) in the zone's colour. Arena "A" uses
// pixel 1, "B" pixel 2, anything else both; the unused arena pixel is
// switched off. It clears a previous fallback.
func (s *Strip) SetCorner(zone int, arena string) error {
	if err := CheckZone(zone); err != nil {
		return err
	}
	c := Corners[zone]

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fallback {
		s.pixels = [PixelCount]Color{}
		s.fallback = false
	}
	s.pixels[ArenaAPixel] = Off
	s.pixels[ArenaBPixel] = Off
	switch arena {
	case "A":
		s.pixels[ArenaAPixel] = c
	case "B":
		s.pixels[ArenaBPixel] = c
	default:
		s.pixels[ArenaAPixel] = c
		s.pixels[ArenaBPixel] = c
	}
	s.corner = zone
	s.arena = arena
	s.updated = time.Now()
	return nil
}

// Fallback holds every pixel blue, the visible state for an unreadable
// zone file. The heartbeat pauses until the next SetCorner.
func (s *Strip) Fallback() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pixels {
		s.pixels[i] = Blue
	}
	s.fallback = true
	s.corner = -1
	s.arena = ""
	s.updated = time.Now()
}

// Set changes one pixel. Out-of-range indexes are ignored.
func (s *Strip) Set(i int, c Color) {
	if i < 0 || i >= PixelCount {
		return
	}
	s.mu.Lock()
	s.pixels[i] = c
	s.mu.Unlock()
}

// State is a point-in-time copy of the strip.
type State struct {
	Pixels   [PixelCount]Color
	Corner   int // -1 when no corner is set
	Arena    string
	Fallback bool
	Updated  time.Time
}

func (s *Strip) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Pixels:   s.pixels,
		Corner:   s.corner,
		Arena:    s.arena,
		Fallback: s.fallback,
		Updated:  s.updated,
	}
}

func (s *Strip) InFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}
