package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	// Session устанавливает access token в API клиент
	auth, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not paired or session expired: %w", err)
	}

	result, err := c.runner.Run(ctx, auth.ServerDeviceID)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Skipped {
		c.io.Println("Sync skipped: another cycle is in progress or the peer is offline.")
		return nil
	}

	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.io.Printf("Pushed to server:   %d events\n", result.EventsPushed)
	c.io.Printf("Pulled from server: %d events\n", result.EventsPulled)

	if len(result.Conflicts) > 0 {
		c.io.Println()
		c.io.Printf("⚠️  %d concurrent change(s) need resolution:\n", len(result.Conflicts))
		for _, conflict := range result.Conflicts {
			c.io.Printf("  task %s: local %s vs remote %s\n",
				conflict.AggregateID,
				conflict.Local.Clock.String(),
				conflict.Remote.Clock.String())
		}
	}

	return nil
}

func (c *Cli) runWatch(ctx context.Context) error {
	// Session устанавливает access token в API клиент
	if _, err := c.authService.Session(ctx); err != nil {
		return fmt.Errorf("not paired or session expired: %w", err)
	}

	c.io.Println("Watching for changes, press Ctrl+C to stop...")

	if err := c.scheduler.Run(ctx); err != nil && err != context.Canceled {
		return fmt.Errorf("watch stopped: %w", err)
	}
	return nil
}
