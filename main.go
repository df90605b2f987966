package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"dawbridge/internal/config"
	"dawbridge/internal/dispatch"
	"dawbridge/internal/httpapi"
	"dawbridge/internal/usecase"
)

// Version is the current bridge version. Set at build time via -ldflags.
var Version = "0.1.0-dev"

func main() {
	// Check for CLI subcommands before parsing flags.
	if len(os.Args) > 1 {
		if RunCLI(os.Args[1:]) {
			return
		}
	}

	fs := flag.NewFlagSet("dawbridge", flag.ExitOnError)
	cfg := config.Load(fs)
	fs.Parse(os.Args[1:])

	configureLogging(cfg)

	conn := usecase.NewConnection(cfg.OSCHost, cfg.OSCSendPort, "0.0.0.0", cfg.OSCReceivePort, cfg.RequestTimeout)
	dispatcher := dispatch.New(conn, cfg.ProbeTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		slog.Info("dawbridge: shutting down")
		cancel()
	}()

	if cfg.HTTPAddr != "" {
		httpSrv := httpapi.New(conn)
		go func() {
			if err := httpSrv.Start(cfg.HTTPAddr); err != nil {
				slog.Warn("httpapi: server stopped", "error", err)
			}
		}()
		go func() {
			<-ctx.Done()
			httpSrv.Shutdown()
		}()
		slog.Info("dawbridge: http surface listening", "addr", cfg.HTTPAddr)
	}

	if cfg.DebugWSAddr != "" {
		go runDebugConsole(ctx, dispatcher, cfg.DebugWSAddr)
	}

	slog.Info("dawbridge: serving tool calls on stdio",
		"osc_host", cfg.OSCHost, "send_port", cfg.OSCSendPort, "receive_port", cfg.OSCReceivePort)

	if err := dispatcher.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("dawbridge: serve: %v", err)
	}
}

func configureLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("dawbridge: open log file: %v", err)
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
}
