package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/scopekeeper/internal/client/auth"
	"github.com/iudanet/scopekeeper/internal/client/data"
	"github.com/iudanet/scopekeeper/internal/client/iocli"
	"github.com/iudanet/scopekeeper/internal/client/storage"
	"github.com/iudanet/scopekeeper/internal/client/sync"
)

// Cli связывает команды пользователя с сервисами клиента
type Cli struct {
	io          iocli.IO
	serverURL   string
	authService *auth.Service
	dataService data.Service
	states      storage.SyncStateStorage
	runner      sync.Runner
	scheduler   *sync.Scheduler
}

// New создает CLI поверх собранных сервисов
func New(
	io iocli.IO,
	serverURL string,
	authService *auth.Service,
	dataService data.Service,
	states storage.SyncStateStorage,
	runner sync.Runner,
	scheduler *sync.Scheduler,
) *Cli {
	return &Cli{
		io:          io,
		serverURL:   serverURL,
		authService: authService,
		dataService: dataService,
		states:      states,
		runner:      runner,
		scheduler:   scheduler,
	}
}

// Run выполняет одну команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "pair":
		return c.runPair(ctx)
	case "unpair":
		return c.runUnpair(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "done":
		return c.runDone(ctx, args)
	case "reopen":
		return c.runReopen(ctx, args)
	case "move":
		return c.runMove(ctx, args)
	case "rm":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("ScopeKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  scopekeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: scopekeeper.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  pair                    Pair this device with a hub server")
	fmt.Println("  unpair                  Remove pairing with the hub server")
	fmt.Println("  status                  Show pairing and sync status")
	fmt.Println("  add [scope] <title>     Add a task (default scope: inbox)")
	fmt.Println("  list [scope]            List tasks, optionally in one scope")
	fmt.Println("  done <id>               Mark task as done")
	fmt.Println("  reopen <id>             Reopen a completed task")
	fmt.Println("  move <id> <scope>       Move task to another scope")
	fmt.Println("  rm <id>                 Delete task")
	fmt.Println("  sync                    Run one sync cycle with the server")
	fmt.Println("  watch                   Sync periodically until interrupted")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  scopekeeper pair")
	fmt.Println("  scopekeeper add work 'write the quarterly report'")
	fmt.Println("  scopekeeper list work")
	fmt.Println("  scopekeeper done b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  scopekeeper --server https://hub.example.com sync")
}
