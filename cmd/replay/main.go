// Command replay runs a scripted key sequence against the controller and the
// stand-in chassis, headless, and prints one JSON document with every tick.
//
// Usage:
//
//	replay -script shared/replay/testdata/double-jump.yaml [-config jumpcar.yaml] [-pretty]
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/automoto/jumpcar/shared/logging"
	"github.com/automoto/jumpcar/shared/replay"
	"github.com/automoto/jumpcar/shared/tuning"
	"go.uber.org/zap"
)

func main() {
	scriptPath := flag.String("script", "", "Replay script (YAML)")
	configPath := flag.String("config", "", "Optional YAML file overriding the vehicle constants")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pretty := flag.Bool("pretty", false, "Indent the JSON output")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	set := tuning.Default()
	if *configPath != "" {
		if err := tuning.LoadFile(*configPath, &set); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Logs go to stderr; stdout carries only the JSON result.
	opts := set.Logging
	opts.Level = *logLevel
	opts.Console = true
	opts.Output = os.Stderr
	logger, err := logging.Init(opts)
	if err != nil {
		log.Fatalf("Failed to initialise logging: %v", err)
	}
	defer logging.Sync()

	script, err := replay.LoadFile(*scriptPath)
	if err != nil {
		logger.Fatal("load script", zap.Error(err))
	}

	res := replay.Run(script, set, logger)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		logger.Fatal("write result", zap.Error(err))
	}
	logger.Info("replay done", zap.String("script", script.Name), zap.Int("frames", len(res.Frames)), zap.Int("jumps", res.Jumps()))
}
