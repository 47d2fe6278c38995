package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/andreasstove999/ecommerce-system/ordertool/internal/order"
)

// HandlerFunc runs one command against the raw payload argument and returns
// the success response to print.
type HandlerFunc func(ctx context.Context, input []byte) (any, error)

var errUnknownCommand = errors.New("unknown command")

type Router struct {
	handlers map[string]HandlerFunc
	logger   *slog.Logger
}

func NewRouter(svc *order.Service, logger *slog.Logger) *Router {
	r := &Router{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}

	h := NewOrderHandler(svc)

	r.Handle("calculate", h.Calculate)
	r.Handle("validate", h.Validate)

	return r
}

func (r *Router) Handle(name string, fn HandlerFunc) {
	r.handlers[name] = fn
}

func (r *Router) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command and writes its result object to w. A
// command failure is written as an ErrorResponse and also returned.
func (r *Router) Dispatch(ctx context.Context, name string, input []byte, w io.Writer) error {
	fn, ok := r.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}

	resp, err := fn(ctx, input)
	if err != nil {
		r.logger.WarnContext(ctx, "command failed",
			"command", name,
			"kind", string(order.KindOf(err)),
			"error", err.Error(),
		)
		if werr := writeError(w, err.Error()); werr != nil {
			return errors.Join(err, werr)
		}
		return err
	}

	r.logger.InfoContext(ctx, "command succeeded", "command", name)
	return writeJSON(w, resp)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func writeError(w io.Writer, msg string) error {
	return writeJSON(w, ErrorResponse{Success: false, Error: msg})
}
