package main

import (
	"log/slog"
	"os"

	"github.com/es-debug/log-analyzer/internal/application/parser"
)

func main() {
	if err := parser.Start(); err != nil {
		slog.Error("parser.Start()", "error", err)
		os.Exit(1)
	}
}
