package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/scopekeeper/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task title. Usage: scopekeeper add [scope] <title>")
	}

	// Первый аргумент — scope, если он валиден и аргументов больше одного
	scope := ""
	title := strings.Join(args, " ")
	if len(args) > 1 {
		if err := validation.ValidateScope(args[0]); err == nil {
			scope = args[0]
			title = strings.Join(args[1:], " ")
		}
	}

	task, err := c.dataService.AddTask(ctx, title, scope)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	c.io.Printf("✓ Added [%s] %s\n", task.Scope, task.Title)
	c.io.Printf("  ID: %s\n", task.ID)
	return nil
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	scope := ""
	if len(args) > 0 {
		scope = args[0]
		if err := validation.ValidateScope(scope); err != nil {
			return fmt.Errorf("invalid scope: %w", err)
		}
	}

	tasks, err := c.dataService.ListTasks(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		c.io.Println("No tasks found.")
		c.io.Println()
		c.io.Println("Use 'scopekeeper add <title>' to add your first task.")
		return nil
	}

	c.io.Printf("Found %d task(s):\n", len(tasks))
	c.io.Println()

	for i, task := range tasks {
		mark := " "
		if task.Done {
			mark = "x"
		}
		c.io.Printf("%d. [%s] [%s] %s\n", i+1, mark, task.Scope, task.Title)
		c.io.Printf("   ID: %s\n", task.ID)
	}

	return nil
}

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: scopekeeper done <id>")
	}

	if err := c.dataService.CompleteTask(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	c.io.Println("✓ Task completed")
	return nil
}

func (c *Cli) runReopen(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: scopekeeper reopen <id>")
	}

	if err := c.dataService.ReopenTask(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to reopen task: %w", err)
	}

	c.io.Println("✓ Task reopened")
	return nil
}

func (c *Cli) runMove(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: scopekeeper move <id> <scope>")
	}

	if err := validation.ValidateScope(args[1]); err != nil {
		return fmt.Errorf("invalid scope: %w", err)
	}

	if err := c.dataService.MoveTask(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	c.io.Printf("✓ Task moved to [%s]\n", args[1])
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: scopekeeper rm <id>")
	}

	if err := c.dataService.DeleteTask(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Println("✓ Task deleted")
	return nil
}
