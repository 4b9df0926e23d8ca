package lsp

import (
	"fmt"
	"runtime/debug"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/lsp/methods/workspace"
	"bennypowers.dev/sasseval/lsp/types"
	"github.com/tliron/glsp"
)

// recoverPanic turns a handler panic into an error and reports it to the client
func recoverPanic(ctx *glsp.Context, methodName string, err *error) {
	if r := recover(); r != nil {
		log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
		workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
		*err = fmt.Errorf("internal error in %s", methodName)
	}
}

// finish logs the outcome of a handler and wraps its error with the method name
func finish(ctx *glsp.Context, methodName string, req *types.RequestContext, err error) error {
	if err != nil {
		log.Error("%s error: %v", methodName, err)
		workspace.LogError(ctx, "%s: %v", methodName, err)
		return fmt.Errorf("%s: %w", methodName, err)
	}
	if req != nil {
		for _, w := range req.Warnings() {
			log.Warn("%s: %v", methodName, w)
		}
	}
	log.Debug("%s completed", methodName)
	return nil
}

// method wraps an LSP request handler with panic recovery and logging.
// Returns the underlying function type so it's compatible with protocol.Handler field types
func method[P, R any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) (R, error),
) func(*glsp.Context, P) (R, error) {
	return func(ctx *glsp.Context, params P) (result R, err error) {
		defer func() {
			if err != nil {
				var zero R
				result = zero
			}
		}()
		defer recoverPanic(ctx, methodName, &err)

		log.Debug("%s started", methodName)
		req := types.NewRequestContext(s, ctx)
		result, err = handler(req, params)
		return result, finish(ctx, methodName, req, err)
	}
}

// notify wraps an LSP notification handler that returns only error
func notify[P any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) error,
) func(*glsp.Context, P) error {
	return func(ctx *glsp.Context, params P) (err error) {
		defer recoverPanic(ctx, methodName, &err)

		log.Debug("%s started", methodName)
		req := types.NewRequestContext(s, ctx)
		return finish(ctx, methodName, req, handler(req, params))
	}
}

// noParam wraps an LSP handler that takes no params (like Shutdown)
func noParam(
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext) error,
) func(*glsp.Context) error {
	return func(ctx *glsp.Context) (err error) {
		defer recoverPanic(ctx, methodName, &err)

		log.Debug("%s started", methodName)
		req := types.NewRequestContext(s, ctx)
		return finish(ctx, methodName, req, handler(req))
	}
}
