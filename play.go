package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/ui"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

// play runs one session. Word list and history problems are reported before
// the terminal is taken over.
func play(ctx context.Context, cfg *config.Config, out io.Writer) error {
	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	wl, err := words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	g, dailyDate, err := newGame(ctx, cfg, wl, st)
	if err != nil {
		return err
	}
	if g == nil {
		fmt.Fprintf(out, "The word of the day for %s has already been played.\n", dailyDate)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := ui.OpenScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	title := "WORDLE"
	if dailyDate != "" {
		title += " " + dailyDate
	}
	app := ui.New(g, screen, ui.DefaultTheme(), ui.Options{
		Title:       title,
		RevealDelay: cfg.RevealDelay,
		BlinkDelay:  cfg.BlinkDelay,
		EndDelay:    cfg.EndDelay,
	})
	res, runErr := app.Run(ctx, screen.Events(ctx))
	screen.Close()

	record(st, g, res, dailyDate)
	if runErr != nil {
		return fmt.Errorf("render: %w", runErr)
	}
	fmt.Fprintln(out, res.Message())
	return nil
}

// newGame picks the secret word. In daily mode it returns a nil game when
// today's word was already finished.
func newGame(ctx context.Context, cfg *config.Config, wl *words.List, st store.Store) (*game.Game, string, error) {
	opts := game.Options{Rules: cfg.GameRules()}
	if cfg.Strict {
		opts.Dictionary = wl
	}

	var (
		secret    string
		dailyDate string
		err       error
	)
	if cfg.Daily {
		now := time.Now()
		dailyDate = daily.DateKey(now)
		played, err := st.PlayedDaily(ctx, dailyDate)
		if err != nil {
			return nil, dailyDate, fmt.Errorf("check daily history: %w", err)
		}
		if played {
			return nil, dailyDate, nil
		}
		secret, _ = wl.Daily(now, cfg.DailySalt)
	} else {
		secret, err = wl.Random()
		if err != nil {
			return nil, "", err
		}
	}

	g, err := game.New(secret, opts)
	if err != nil {
		return nil, dailyDate, err
	}
	log.Info().Str("game", g.ID).Str("rules", string(g.Rules())).Bool("daily", cfg.Daily).Msg("game started")
	return g, dailyDate, nil
}

// record stores the finished session. Failures are logged, never fatal.
func record(st store.Store, g *game.Game, res ui.Outcome, dailyDate string) {
	outcome := store.OutcomeAbandoned
	switch res.State {
	case game.Won:
		outcome = store.OutcomeWon
	case game.Lost:
		outcome = store.OutcomeLost
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r := store.Record{
		ID:         g.ID,
		Secret:     g.Secret(),
		Outcome:    outcome,
		Guesses:    res.Guesses,
		Rules:      string(g.Rules()),
		DailyDate:  dailyDate,
		StartedAt:  g.StartedAt,
		FinishedAt: time.Now().UTC(),
	}
	if err := st.Save(ctx, r); err != nil {
		log.Warn().Err(err).Str("game", g.ID).Msg("save session")
		return
	}
	log.Info().Str("game", g.ID).Str("outcome", outcome).Int("guesses", res.Guesses).Msg("game recorded")
}
