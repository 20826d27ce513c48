package parley

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Middleware wraps a command handler. Registered middleware applies to every
// dispatched command, first registered outermost.
type Middleware func(HandlerFunc) HandlerFunc

// Use registers application-wide middleware. Order matters: the first
// registered middleware sees the invocation first.
func (a *App) Use(mw ...Middleware) *App {
	a.middleware = append(a.middleware, mw...)
	return a
}

// chain applies the registered middleware around a handler.
func chain(handler HandlerFunc, mw []Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// Recovery converts handler panics into errors so one bad command cannot
// take down an interactive session.
func Recovery(log *zap.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(inv *Invocation) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("handler panicked",
						zap.String("command", inv.Command.Name()),
						zap.Any("panic", r))
					err = fmt.Errorf("command %s panicked: %v", inv.Command.Name(), r)
				}
			}()
			return next(inv)
		}
	}
}

// Logging records every dispatched command with its outcome and duration.
func Logging(log *zap.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(inv *Invocation) error {
			start := time.Now()
			err := next(inv)
			log.Info("command finished",
				zap.String("command", inv.Command.Name()),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
			return err
		}
	}
}

// Timeout bounds handler execution. The handler's context is cancelled at
// the deadline; a handler that ignores its context keeps running in the
// background, but the command returns.
func Timeout(limit time.Duration) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(inv *Invocation) error {
			ctx, cancel := context.WithTimeout(inv.Ctx, limit)
			defer cancel()
			inv.Ctx = ctx

			done := make(chan error, 1)
			go func() { done <- next(inv) }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return fmt.Errorf("command %s timed out after %s", inv.Command.Name(), limit)
			}
		}
	}
}
