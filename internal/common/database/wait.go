// internal/common/database/wait.go
package database

import (
	"context"
	"fmt"
	"time"

	"career-workers/internal/common/logger"
)

// Pinger is satisfied by PostgresClient and RedisClient.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitFor pings p until it answers, doubling the delay between attempts. It gives
// up after maxAttempts or when ctx ends.
func WaitFor(ctx context.Context, name string, p Pinger, maxAttempts int, delay time.Duration, log logger.Logger) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = p.Ping(pingCtx)
		cancel()
		if err == nil {
			log.Info(name+" connected", map[string]interface{}{"attempt": attempt})
			return nil
		}
		if attempt == maxAttempts {
			break
		}

		log.Warn(name+" not ready, retrying", map[string]interface{}{
			"attempt":     attempt,
			"maxAttempts": maxAttempts,
			"nextRetryIn": delay.String(),
			"error":       err.Error(),
		})
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", name, ctx.Err())
		}
		delay *= 2
	}
	return fmt.Errorf("%s unreachable after %d attempts: %w", name, maxAttempts, err)
}
