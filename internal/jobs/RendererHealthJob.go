package jobs

import (
	"Listline/internal/services/rendering"
	"context"
	"fmt"
)

// RendererHealthJob pings the browser so a lost connection is noticed and
// re-established before the next render request.
func RendererHealthJob(renderer rendering.Renderer) JobFn {
	return func(ctx context.Context) error {
		err := renderer.Ping(ctx)
		if err != nil {
			return fmt.Errorf("pinging renderer: %w", err)
		}
		return nil
	}
}
