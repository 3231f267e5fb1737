// greeter - environment-driven HTTP greeting service
// Copyright (C) 2026  greeter contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/jredh-dev/greeter/config"
	"github.com/jredh-dev/greeter/internal/handlers"
	"github.com/jredh-dev/greeter/internal/server"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("greeter %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg := config.Load()

	srv := server.New()
	h := handlers.New(cfg.Name)
	srv.Router.Get("/", h.Greet)

	// The platform runs multiple identical instances; the ID keeps
	// their log streams distinguishable.
	instance := uuid.NewString()

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("greeter %s starting on %s (instance %s)", version, addr, instance)

	if err := srv.ListenAndServe(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
