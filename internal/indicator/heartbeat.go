package indicator

import (
	"context"
	"time"

	"zonelight/refactor/internal/logger"
)

// HeartbeatLevels returns one full fade cycle of blue intensities: up from
// 50 in steps of 25, then back down.
func HeartbeatLevels() []uint8 {
	var up []uint8
	for i := 50; i < 255; i += 25 {
		up = append(up, uint8(i))
	}
	levels := make([]uint8, 0, 2*len(up))
	levels = append(levels, up...)
	for i := len(up) - 1; i >= 0; i-- {
		levels = append(levels, up[i])
	}
	return levels
}

// RunHeartbeat fades the heartbeat pixel once per step until ctx is done.
// While the strip is in fallback the pixel is left alone.
func RunHeartbeat(ctx context.Context, s *Strip, step time.Duration) {
	levels := HeartbeatLevels()
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	logger.Debug("heartbeat started, step %s, cycle %s", step, step*time.Duration(len(levels)))

	for i := 0; ; i = (i + 1) % len(levels) {
		select {
		case <-ctx.Done():
			logger.Debug("heartbeat stopped")
			return
		case <-ticker.C:
		}
		if s.InFallback() {
			continue
		}
		s.Set(HeartbeatPixel, RGB(0, 0, levels[i]))
	}
}
