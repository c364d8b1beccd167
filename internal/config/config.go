// internal/config/config.go
//
// Runtime configuration.
// Every flag can also be set through the environment as WORDLE_<FLAG>, with
// dashes replaced by underscores (e.g. WORDLE_REVEAL_DELAY=0s). A .env file in
// the working directory is loaded first by main.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WORDLE"

type Config struct {
	WordsFile   string
	Rules       string
	Strict      bool
	Daily       bool
	DailySalt   string
	DB          string
	RevealDelay time.Duration
	BlinkDelay  time.Duration
	EndDelay    time.Duration
	LogLevel    string
	LogFile     string
	Bind        string
	Port        int
}

// Validate checks values that flag parsing cannot.
func (c *Config) Validate() error {
	if _, err := game.ParseRules(c.Rules); err != nil {
		return err
	}
	if c.RevealDelay < 0 || c.BlinkDelay < 0 || c.EndDelay < 0 {
		return errors.New("delays must not be negative")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	return nil
}

// GameRules returns the validated rule set.
func (c *Config) GameRules() game.Rules {
	r, _ := game.ParseRules(c.Rules)
	return r
}

// Addr is the listen address for the stats server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// RegisterFlags defines every option on fs, writing into c.
func RegisterFlags(fs *pflag.FlagSet, c *Config) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&c.WordsFile, "words", "w", "", "word list file, one five-letter word per line; empty uses the built-in list (env: WORDLE_WORDS)")
	fs.StringVar(&c.Rules, "rules", string(game.RulesReference), "scoring rules: reference or standard (env: WORDLE_RULES)")
	fs.BoolVar(&c.Strict, "strict", false, "reject guesses that are not in the word list (env: WORDLE_STRICT)")
	fs.BoolVarP(&c.Daily, "daily", "d", false, "play the word of the day (env: WORDLE_DAILY)")
	fs.StringVar(&c.DailySalt, "daily-salt", daily.DefaultSalt, "salt for daily word selection (env: WORDLE_DAILY_SALT)")
	fs.StringVar(&c.DB, "db", "", "sqlite file for session history; empty keeps history in memory (env: WORDLE_DB)")
	fs.DurationVar(&c.RevealDelay, "reveal-delay", 200*time.Millisecond, "delay between revealing tiles (env: WORDLE_REVEAL_DELAY)")
	fs.DurationVar(&c.BlinkDelay, "blink-delay", 50*time.Millisecond, "how long a typed key is highlighted (env: WORDLE_BLINK_DELAY)")
	fs.DurationVar(&c.EndDelay, "end-delay", 5*time.Second, "pause on the final board before exiting (env: WORDLE_END_DELAY)")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level (env: WORDLE_LOG_LEVEL)")
	fs.StringVar(&c.LogFile, "log-file", "", "log file; empty discards logs while the board is shown (env: WORDLE_LOG_FILE)")
	fs.StringVarP(&c.Bind, "bind", "b", "127.0.0.1", "address the stats server binds to (env: WORDLE_BIND)")
	fs.IntVarP(&c.Port, "port", "p", 5175, "port the stats server listens on (env: WORDLE_PORT)")
}

// ApplyEnv fills every flag not set on the command line from the environment.
func ApplyEnv(fs *pflag.FlagSet) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}
