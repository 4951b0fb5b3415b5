package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordl/internal/config"
	"github.com/robalobadob/wordl/internal/daily"
	"github.com/robalobadob/wordl/internal/game"
	"github.com/robalobadob/wordl/internal/httpserver"
	"github.com/robalobadob/wordl/internal/metrics"
	"github.com/robalobadob/wordl/internal/store"
	"github.com/robalobadob/wordl/internal/words"
)

const usage = `usage: wordl [command] [flags]

commands:
  serve    run the HTTP game server (default)
  play     play in the terminal
  import   copy the bundled word lists into DICTIONARY_DB (or -db)
`

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	setupLogging(cfg)

	cmd, args := "serve", os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(cfg)
	case "play":
		err = runPlay(cfg, args)
	case "import":
		err = runImport(cfg, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("wordl failed")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func serve(cfg config.Config) error {
	ctx := context.Background()

	dict, err := loadDictionary(ctx, cfg.DictionaryDB)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	sel := words.New(dict, words.WithMetrics(m))
	if sel.Eligible(cfg.WordLength) == 0 {
		return fmt.Errorf("WORD_LENGTH=%d: %w", cfg.WordLength, words.ErrInvalidLength)
	}

	var st store.Store = store.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := store.Dial(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		st = store.NewRedis(client, cfg.SessionTTL)
		log.Info().Dur("ttl", cfg.SessionTTL).Msg("using redis game store")
	}

	srv := httpserver.New(httpserver.Options{
		Store:        st,
		Selector:     sel,
		Metrics:      m,
		Gatherer:     reg,
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		WordLength:   cfg.WordLength,
		MaxGuesses:   cfg.MaxGuesses,
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting wordl server")
	return srv.Start(":" + cfg.Port)
}

func runPlay(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	length := fs.Int("length", cfg.WordLength, "letters per word")
	guesses := fs.Int("guesses", cfg.MaxGuesses, "number of guesses")
	today := fs.Bool("daily", false, "play today's shared word")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *guesses > game.MaxGuessesLimit {
		return fmt.Errorf("-guesses %d: %w", *guesses, game.ErrGuessLimit)
	}

	dict, err := loadDictionary(context.Background(), cfg.DictionaryDB)
	if err != nil {
		return err
	}
	sel := words.New(dict)

	var target string
	if *today {
		target, err = sel.WordFrom(*length, daily.NewSource(time.Now(), cfg.DailySalt))
	} else {
		target, err = sel.RandomWord(*length)
	}
	if errors.Is(err, words.ErrInvalidLength) {
		return fmt.Errorf("no %d-letter words available: %w", *length, err)
	}
	if err != nil {
		return err
	}
	g, err := game.Start(target, *guesses)
	if err != nil {
		return err
	}
	return play(os.Stdin, os.Stdout, g, sel)
}

func runImport(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	dsn := fs.String("db", cfg.DictionaryDB, "SQLite database file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dsn == "" {
		return errors.New("import: set DICTIONARY_DB or pass -db")
	}
	n, err := importDictionary(context.Background(), *dsn)
	if err != nil {
		return err
	}
	log.Info().Str("db", *dsn).Int("words", n).Msg("dictionary imported")
	return nil
}
