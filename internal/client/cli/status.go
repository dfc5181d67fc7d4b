package cli

import (
	"context"
	"fmt"
	"time"
)

// staleThreshold порог устаревания для вывода в status
const staleThreshold = time.Hour

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	paired, err := c.authService.IsPaired(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pairing: %w", err)
	}

	if !paired {
		c.io.Println("Status: Not paired")
		c.io.Println()
		c.io.Println("Run 'scopekeeper pair' to connect this device to a hub server.")
		return nil
	}

	auth, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Println("Status: Paired")
	c.io.Printf("Device:  %s (%s)\n", auth.DeviceName, auth.LocalDeviceID)
	c.io.Printf("Server:  %s (%s)\n", auth.ServerURL, auth.ServerDeviceID)

	expiresAt := time.Unix(auth.ExpiresAt, 0)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	states, err := c.states.ListSyncStates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sync states: %w", err)
	}

	now := time.Now()
	for _, state := range states {
		c.io.Println()
		c.io.Printf("Peer %s: %s\n", state.DeviceID, state.Status)

		if since := state.TimeSinceLastSync(now); since != nil {
			c.io.Printf("  Last synced %s ago\n", since.Round(time.Second))
		} else {
			c.io.Println("  Never synced")
		}

		c.io.Printf("  Pending changes: %d\n", state.PendingChanges)
		if state.IsStale(staleThreshold, now) {
			c.io.Println("  ⚠️  Sync state is stale")
		}
		if state.LastError != "" {
			c.io.Printf("  Last error: %s\n", state.LastError)
		}
	}

	return nil
}
