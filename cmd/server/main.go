// Command server exposes the Irish mutation engine and noun lexicon as a
// JSON REST API.
//
// Endpoints:
//
//	GET  /api/mutate?word=<w>&kind=eclipse|lenite
//	GET  /api/article?word=<w>&gender=<nm1>&case=<genitive singular>
//	GET  /api/possessive?word=<w>&particle=mo|do
//	GET  /api/gender?word=<w>&gender=<nf2>
//	GET  /api/noun?word=<w>
//	POST /api/nouns          body: {"words":["...", ...]}
//	GET  /api/adjective?word=<w>
//	GET  /api/lookup?form=<mutated form>
//	GET  /api/health
//
// Every GET except lookup and health accepts format=plain|html|terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/phuslu/log"
	"github.com/ternarybob/banner"

	irish "github.com/cuplamilefocal/lookup-irish"
	"github.com/cuplamilefocal/lookup-irish/internal/config"
	"github.com/cuplamilefocal/lookup-irish/internal/logging"
)

type server struct {
	cfg    *config.Config
	lex    *irish.Lexicon
	logger *log.Logger
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mutate", s.handleMutate)
	mux.HandleFunc("/api/article", s.handleArticle)
	mux.HandleFunc("/api/possessive", s.handlePossessive)
	mux.HandleFunc("/api/gender", s.handleGender)
	mux.HandleFunc("/api/noun", s.handleNoun)
	mux.HandleFunc("/api/nouns", s.handleNounBatch)
	mux.HandleFunc("/api/adjective", s.handleAdjective)
	mux.HandleFunc("/api/lookup", s.handleLookup)
	mux.HandleFunc("/api/health", s.handleHealth)

	return chain(mux,
		recoveryMiddleware(s.logger),
		correlationIDMiddleware,
		loggingMiddleware(s.logger),
		corsMiddleware(s.cfg.CORS),
	)
}

func exampleNouns(c config.ExamplesConfig) irish.ExampleNouns {
	return irish.ExampleNouns{
		Neutral:             c.Neutral,
		StrongPlural:        c.StrongPlural,
		PluralWeakConsonant: c.PluralWeakConsonant,
		Masculine:           c.Masculine,
		Feminine:            c.Feminine,
	}
}

func printBanner(cfg *config.Config, logger *log.Logger, nouns, adjectives int) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 50) + banner.ColorReset

	fmt.Fprintf(os.Stderr, "\n%s\n", hr)
	fmt.Fprintf(os.Stderr, "%s  lookup-irish: séimhiú, urú agus an t-alt%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	for _, kv := range [][2]string{
		{"Listen", cfg.Server.Addr()},
		{"Data", cfg.Data.Dir},
		{"Nouns", fmt.Sprint(nouns)},
		{"Adjectives", fmt.Sprint(adjectives)},
	} {
		fmt.Fprintf(os.Stderr, "%s  %-12s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "%s\n\n", hr)

	logger.Info().Str("addr", cfg.Server.Addr()).Str("data", cfg.Data.Dir).Msg("server starting")
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config file")
	dataDir := flag.String("data", "", "path to the lexicon data directory (overrides config)")
	addr := flag.String("addr", "", "listen address host:port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	lex, err := irish.New(cfg.Data.Dir,
		irish.WithLogger(logger),
		irish.WithExampleNouns(exampleNouns(cfg.Examples)),
		irish.WithWorkers(cfg.Server.Workers),
	)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Data.Dir).Msg("failed to load data")
	}

	listen := cfg.Server.Addr()
	if *addr != "" {
		listen = *addr
	}
	s := &server{cfg: cfg, lex: lex, logger: logger}
	srv := &http.Server{
		Addr:              listen,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	nouns, adjectives := lex.Len()
	printBanner(cfg, logger, nouns, adjectives)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
