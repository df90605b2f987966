package main

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"dawbridge/internal/dispatch"
)

// runDebugConsole serves the websocket debug console on its own address,
// separate from the health/status HTTP surface, so it can be enabled
// independently during development (spec §4.8 ambient extension).
func runDebugConsole(ctx context.Context, dispatcher *dispatch.Dispatcher, addr string) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	dispatch.NewWSDebugHandler(dispatcher).Register(e)

	go func() {
		<-ctx.Done()
		e.Close()
	}()

	slog.Info("dawbridge: debug websocket console listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		slog.Warn("debugconsole: server stopped", "error", err)
	}
}
