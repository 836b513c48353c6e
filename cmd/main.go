package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/brettbedarf/ysh/config"
	"github.com/brettbedarf/ysh/filesystem"
	"github.com/brettbedarf/ysh/internal/util"
	"github.com/brettbedarf/ysh/requests"
	"github.com/brettbedarf/ysh/server"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		verbose    int
		nodesDef   string
		prompt     string
		echo       string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (.yaml, .yml, .json or .env)")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&nodesDef, "nodes", "", "Path to nodes def file loaded before the first command")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.IntVar(&verbose, "verbose", 0, "Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flag.IntVar(&verbose, "v", 0, "--verbose (shorthand)")
	flag.StringVar(&prompt, "prompt", "", "Initial prompt")
	flag.StringVar(&echo, "echo", "", "Echo input lines: auto, always or never")
	flag.Parse()

	// Flags win over the config file, which wins over defaults
	override := &config.ConfigOverride{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose", "v":
			override.LogLvl = &verbose
		case "nodes", "n":
			override.SeedPath = &nodesDef
		case "prompt":
			override.Prompt = &prompt
		case "echo":
			override.Echo = &echo
		}
	})

	var (
		cfg    *config.Config
		cfgErr error
	)
	if configPath != "" {
		cfg, cfgErr = config.NewConfigFromFile(configPath, override)
	} else {
		cfg = config.NewConfig(override)
		cfgErr = cfg.Validate()
	}

	// Initialize logger; stdout carries shell output so logs go to stderr
	logLvl := config.DefaultLogLvl
	if cfg != nil {
		logLvl = cfg.LogLvl
	}
	util.InitializeLogger(logLvl, os.Stderr)
	logger := util.GetLogger("main")
	if cfgErr != nil {
		logger.Fatal().Err(cfgErr).Str("config", configPath).Msg("Invalid configuration")
	}
	logger.Info().Int("verbose", verbose).Str("config", configPath).Str("nodes", cfg.SeedPath).Msg("ysh initializing")

	tree := filesystem.NewTree()

	// Load nodes
	if cfg.SeedPath != "" {
		defs, err := requests.LoadNodeDefsFile(cfg.SeedPath)
		if err != nil {
			logger.Fatal().Err(err).Str("nodes", cfg.SeedPath).Msg("Failed to load nodes file")
		}
		logger.Debug().
			Int("files", len(defs.Files)).
			Int("directories", len(defs.Dirs)).
			Msg("Successfully loaded node requests")
		defs.Apply(tree)
	}

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ysh := server.New(cfg, tree, os.Stdout, os.Stderr)
	status := ysh.Serve(ctx, os.Stdin)

	stop()
	os.Exit(status)
}
