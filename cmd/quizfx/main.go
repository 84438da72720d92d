package main

import (
	"context"
	"flag"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"quizfx/internal/config"
	"quizfx/internal/game"
	"quizfx/internal/logger"
	"quizfx/internal/quizdata"
)

// glfw must run on the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	configPath := flag.String("config", "", "path to a config file (default ./config/config.yaml)")
	flag.Parse()

	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Logger = logger.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	bank, err := quizdata.Load(ctx, quizdata.Source{
		Kind:  cfg.Questions.Source,
		Path:  cfg.Questions.Path,
		Table: cfg.Questions.Table,
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Questions.Source).Msg("failed to load questions")
	}
	if bank.Count() == 0 {
		log.Warn().Msg("question bank is empty")
	}

	if err := game.Run(cfg, bank, log.Logger.With().Str("component", "game").Logger()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
