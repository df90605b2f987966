package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"dawbridge/internal/config"
	"dawbridge/internal/usecase"
)

// RunCLI handles subcommand execution. Returns true if a subcommand was handled.
func RunCLI(args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "version":
		fmt.Printf("dawbridge %s\n", Version)
		return true
	case "probe":
		return cliProbe(args[1:])
	default:
		return false
	}
}

// cliProbe opens a throwaway connection, attempts the same /test liveness
// probe connect_ableton runs, and reports the outcome — useful for checking
// the remote script is reachable before wiring the bridge into an assistant.
func cliProbe(args []string) bool {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	cfg := config.Load(fs)
	fs.Parse(args)

	conn := usecase.NewConnection(cfg.OSCHost, cfg.OSCSendPort, "0.0.0.0", cfg.OSCReceivePort, cfg.RequestTimeout)
	defer usecase.DisconnectAbleton(conn)

	result := usecase.ConnectAbleton(context.Background(), conn, cfg.ProbeTimeout)
	if !result.Success {
		fmt.Fprintf(os.Stderr, "probe failed: [%s] %s\n", result.ErrorCode, result.Message)
		os.Exit(1)
	}
	fmt.Printf("probe ok: %s\n", result.Message)
	return true
}
