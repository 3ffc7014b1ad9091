package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/park285/clickchess/internal/adapter/chesspresenter"
	"github.com/park285/clickchess/internal/board"
	appcfg "github.com/park285/clickchess/internal/config"
	"github.com/park285/clickchess/internal/game"
	"github.com/park285/clickchess/internal/msgcat"
	"github.com/park285/clickchess/internal/notation"
	"github.com/park285/clickchess/internal/obslog"
)

func main() {
	configPath := flag.String("config", strings.TrimSpace(os.Getenv("CLICKCHESS_CONFIG")), "path to YAML config file")
	rulesFlag := flag.String("rules", "", "ruleset override: partial or standard")
	fenFlag := flag.String("fen", "", "start from this FEN instead of the standard layout")
	flag.Parse()

	cfg, err := appcfg.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.Init(cfg.Log); err != nil {
		log.Fatalf("log init error: %v", err)
	}
	defer obslog.Sync()

	rulesName := cfg.Rules
	if v := strings.TrimSpace(*rulesFlag); v != "" {
		rulesName = v
	}
	rules, err := board.RulesetByName(rulesName)
	if err != nil {
		log.Fatalf("rules error: %v", err)
	}
	pieces, err := chesspresenter.PieceSetByName(cfg.PieceSet)
	if err != nil {
		log.Fatalf("piece set error: %v", err)
	}
	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Fatalf("messages error: %v", err)
	}

	opts := game.Options{
		WhiteName: cfg.WhiteName,
		BlackName: cfg.BlackName,
		Rules:     rules,
	}
	if fen := strings.TrimSpace(*fenFlag); fen != "" {
		b, turn, err := notation.DecodeFEN(fen)
		if err != nil {
			log.Fatalf("fen error: %v", err)
		}
		opts.Board, opts.Turn = b, turn
	}

	out := bufio.NewWriter(os.Stdout)
	presenter := chesspresenter.NewPresenter(
		chesspresenter.NewFormatter(cat, cfg.Color),
		func(message string) error {
			if _, err := fmt.Fprintln(out, message); err != nil {
				return err
			}
			return out.Flush()
		},
	)
	sess := newSession(game.New(opts), pieces, presenter)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		obslog.L().Info("shutdown_signal")
		obslog.Sync()
		os.Exit(0)
	}()

	if err := run(sess, os.Stdin, out); err != nil {
		obslog.L().Error("session_failed", zap.Error(err))
		log.Fatalf("session error: %v", err)
	}
}

// run shows the opening board and then feeds input lines to the session
// until EOF or quit.
func run(sess *session, in io.Reader, prompt io.Writer) error {
	if err := sess.start(); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(prompt, "> ")
		if f, ok := prompt.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		more, err := sess.handle(scanner.Text())
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
