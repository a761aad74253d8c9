package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/werdle/internal/config"
	"github.com/robalobadob/werdle/internal/game"
	"github.com/robalobadob/werdle/internal/httpserver"
	"github.com/robalobadob/werdle/internal/store"
	"github.com/robalobadob/werdle/internal/words"
)

const pruneEvery = 5 * time.Minute

func newServeCommand() *cobra.Command {
	var port, wordsFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("words") {
				cfg.WordsFile = wordsFile
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&wordsFile, "words", "", "word list file (overrides WORDS_FILE)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}

	engine, err := game.NewEngine(dict, randomSource(cfg.Seed), game.WithScoring(cfg.Scoring))
	if err != nil {
		return err
	}

	sessions := store.NewMemoryStore()
	srv := httpserver.New(engine, sessions, httpserver.Options{
		JWTSecret:        cfg.JWTSecret,
		SessionTTL:       cfg.SessionTTL,
		ClientOrigin:     cfg.ClientOrigin,
		DailySalt:        cfg.DailySalt,
		AllowFixedSecret: cfg.AllowFixedSecret,
		Secure:           cfg.SecureCookies,
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go prune(ctx, sessions, cfg.SessionTTL)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	log.Info().
		Str("port", cfg.Port).
		Int("words", dict.Len()).
		Str("scoring", cfg.Scoring.String()).
		Msg("starting werdle")

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}

// randomSource seeds from seed, or randomly when seed is 0.
func randomSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}

// prune drops idle sessions until ctx is done.
func prune(ctx context.Context, st store.Store, idle time.Duration) {
	t := time.NewTicker(pruneEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Prune(ctx, idle); n > 0 {
				log.Debug().Int("removed", n).Int("live", st.Len()).Msg("pruned sessions")
			}
		}
	}
}
