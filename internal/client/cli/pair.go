package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runPair(ctx context.Context) error {
	c.io.Println("=== Pair Device ===")
	c.io.Println()

	paired, err := c.authService.IsPaired(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pairing: %w", err)
	}
	if paired {
		c.io.Println("This device is already paired.")
		c.io.Println("Run 'scopekeeper unpair' first to pair with another server.")
		return nil
	}

	deviceName, err := c.io.ReadInput("Device name: ")
	if err != nil {
		return fmt.Errorf("failed to read device name: %w", err)
	}

	// Код не отображаем: он одноразовый, но светить им в терминале незачем
	pairingCode, err := c.io.ReadPassword("Pairing code: ")
	if err != nil {
		return fmt.Errorf("failed to read pairing code: %w", err)
	}

	result, err := c.authService.Pair(ctx, c.serverURL, deviceName, pairingCode)
	if err != nil {
		return fmt.Errorf("pairing failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Device paired successfully!")
	c.io.Printf("Device ID: %s\n", result.DeviceID)
	c.io.Printf("Server:    %s (%s)\n", c.serverURL, result.ServerDeviceID)
	c.io.Println()
	c.io.Println("Run 'scopekeeper sync' to synchronize tasks.")

	return nil
}

func (c *Cli) runUnpair(ctx context.Context) error {
	if err := c.authService.Unpair(ctx); err != nil {
		return fmt.Errorf("unpair failed: %w", err)
	}

	c.io.Println("✓ Device unpaired. Local tasks are kept.")
	return nil
}
