package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-tui/internal/config"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
	"github.com/robalobadob/wordle/apps/go-tui/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-tui/internal/store"
	"github.com/robalobadob/wordle/apps/go-tui/internal/words"
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "wordle",
		Short:   "Guess the five-letter word in five tries, right in the terminal.",
		Args:    cobra.NoArgs,
		Version: releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.ApplyEnv(cmd.Flags())
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	config.RegisterFlags(cmd.PersistentFlags(), cfg)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "play",
			Short: "Play a game (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return play(cmd.Context(), cfg, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Print statistics from the session history (needs --db)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printStats(cmd.Context(), cfg, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the session history as read-only JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), cfg)
			},
		},
	)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordle v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// openStore returns the sqlite history when --db is set, else an in-memory one.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DB == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", cfg.DB, err)
	}
	return st, nil
}

func printStats(ctx context.Context, cfg *config.Config, out io.Writer) error {
	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := st.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	writeStats(out, s)
	return nil
}

// writeStats prints a summary plus a guess distribution bar chart.
func writeStats(out io.Writer, s store.Stats) {
	pct := 0
	if s.Played > 0 {
		pct = s.Wins * 100 / s.Played
	}
	fmt.Fprintf(out, "Played:         %d\n", s.Played)
	fmt.Fprintf(out, "Win %%:          %d\n", pct)
	fmt.Fprintf(out, "Current streak: %d\n", s.Streak)
	fmt.Fprintf(out, "Max streak:     %d\n", s.MaxStreak)
	fmt.Fprintln(out, "Guess distribution:")
	for n := 1; n <= game.Rows; n++ {
		c := s.Distribution[n]
		fmt.Fprintf(out, "  %d | %s %d\n", n, strings.Repeat("#", c), c)
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile, os.Stderr)
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

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", cfg.Addr()).Int("words", wl.Len()).Msg("starting stats server")
	return httpserver.New(st, wl).Start(ctx, cfg.Addr())
}
