package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	_ "froggy/internal/command/core"
	_ "froggy/internal/command/fun"

	"froggy/internal/ai"
	"froggy/internal/command"
	"froggy/internal/compose"
	"froggy/internal/config"
	"froggy/internal/discord"
	"froggy/internal/mind"
	"froggy/internal/moderation"
	"froggy/internal/persona"
	"froggy/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		// Logging isn't configured yet; report plainly and exit non-zero
		// before any network connection is attempted.
		lg := zerolog.New(os.Stderr)
		lg.Error().Err(err).Msg("missing required configuration")
		os.Exit(1)
	}

	setupLogging(cfg)
	log.Info().Str("version", version.Version).Msgf("starting %s", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := command.NewDeps(rand.New(rand.NewSource(time.Now().UnixNano())))
	deps.Store = mind.NewStore(cfg.MemoryDepth)
	deps.Cooldowns = mind.NewCooldowns()
	deps.Reports = moderation.NewReports()
	deps.Shutdown = cancel

	provider := ai.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
	limiter := rate.NewLimiter(rate.Every(2*time.Second), 5)
	composer := compose.New(provider, persona.Prompt, limiter)
	filter := moderation.NewFilter(cfg.BannedWords, cfg.HostileWords)

	bot := discord.NewBot(cfg, deps, filter, composer)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("bot error")
			os.Exit(1)
		}
	case <-ctx.Done():
		<-errCh
	}

	log.Info().Msg("exited cleanly")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: 3,
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, rotating)
	}

	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}
