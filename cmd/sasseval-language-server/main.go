package main

import (
	"flag"
	"fmt"
	"os"

	"bennypowers.dev/sasseval/internal/log"
	"bennypowers.dev/sasseval/internal/version"
	"bennypowers.dev/sasseval/lsp"
)

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Error("%v", err)
		os.Exit(2)
	}
	log.SetLevel(level)

	server, err := lsp.NewServer()
	if err != nil {
		log.Error("Failed to create LSP server: %v", err)
		os.Exit(1)
	}
	defer func() { _ = server.Close() }()

	// Run with stdio transport (for VSCode and other editors)
	if err := server.RunStdio(); err != nil {
		log.Error("Server error: %v", err)
		os.Exit(1)
	}
}
