package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/ashgrove/server/core"
)

func main() {
	opts, err := core.LoadOptions()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	flag.StringVar(&opts.Level, "level", opts.Level, "TMX level file (empty = built-in arena)")
	flag.StringVar(&opts.Tuning, "tuning", opts.Tuning, "YAML tuning file")
	flag.IntVar(&opts.TickRate, "tickrate", opts.TickRate, "Simulation tick rate (updates per second)")
	flag.IntVar(&opts.MaxTicks, "maxticks", opts.MaxTicks, "Stop after this many ticks (0 = until decided)")
	flag.StringVar(&opts.BotName, "name", opts.BotName, "Bot player name")
	flag.Parse()

	server, err := core.NewServer(opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
	}()

	log.Printf("Starting Ashgrove headless run (tick rate: %d/s, max ticks: %d)", opts.TickRate, opts.MaxTicks)
	res := server.Run()
	log.Printf("Result: %s, player %.0f%%, %d enemies left, %.1fs simulated",
		res.Reason, res.PlayerHealth*100, res.EnemiesRemaining, res.Elapsed)
}
