// Package cli maps the ordertool command line onto the order service. It is
// the only layer that knows about exit codes.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/config"
	"github.com/andreasstove999/ecommerce-system/ordertool/internal/logging"
	"github.com/andreasstove999/ecommerce-system/ordertool/internal/order"
)

const (
	ExitOK      = 0
	ExitFailure = 1

	progName = "ordertool"
)

// Run executes one command with the default configuration.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return RunWithConfig(ctx, config.Default(), args, stdout, stderr)
}

func RunWithConfig(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	logger := logging.New(stderr, cfg.LogLevel)
	ctx = logging.WithInvocationID(ctx, uuid.NewString())

	svc, err := order.NewService(cfg.Pricing)
	if err != nil {
		logger.ErrorContext(ctx, "invalid pricing configuration", "error", err.Error())
		return ExitFailure
	}

	router := NewRouter(svc, logger)

	if len(args) == 0 {
		fmt.Fprintf(stderr, "Usage: %s <command> <json_string>\n", progName)
		fmt.Fprintf(stderr, "Commands: %v\n", router.Commands())
		return ExitFailure
	}

	cmd := args[0]
	if !router.Has(cmd) {
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		fmt.Fprintf(stderr, "Usage: %s <command> <json_string>\n", progName)
		return ExitFailure
	}
	if len(args) < 2 {
		fmt.Fprintf(stderr, "Usage: %s %s <json_string>\n", progName, cmd)
		return ExitFailure
	}

	if err := router.Dispatch(ctx, cmd, []byte(args[1]), stdout); err != nil {
		return ExitFailure
	}
	return ExitOK
}
