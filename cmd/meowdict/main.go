// Command meowdict is a console client for the moedict.tw
// Chinese/Taiwanese dictionary.
//
// With no arguments it starts the interactive console. With arguments,
// the whole argument vector is executed as a single console command
// and the process exits:
//
//	meowdict 貓
//	meowdict -t -r 你好
//
// The console flag grammar (see internal/console) is the same in both
// modes; --version and --no-color are handled before dispatch.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/meowdict/meowdict/internal/adapter/opencc"
	"github.com/meowdict/meowdict/internal/adapter/provider/moedict"
	"github.com/meowdict/meowdict/internal/adapter/provider/wordshk"
	"github.com/meowdict/meowdict/internal/app"
	"github.com/meowdict/meowdict/internal/config"
	"github.com/meowdict/meowdict/internal/console"
	"github.com/meowdict/meowdict/internal/render"
	"github.com/meowdict/meowdict/internal/service/query"
)

func main() {
	var (
		noColor bool
		command []string
	)
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-V":
			fmt.Println(app.BuildVersion())
			return
		case "--no-color":
			noColor = true
		default:
			command = append(command, arg)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	if noColor || cfg.Console.NoColor {
		color.NoColor = true
	}

	conv, err := opencc.New()
	if err != nil {
		logger.Error("load conversion dictionaries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rend := render.New(os.Stdout, conv)
	dict := moedict.NewProvider(cfg.Moedict, logger)
	jyut := wordshk.NewProvider(cfg.Jyutping, logger)
	queries := query.NewService(logger, dict, jyut, rend)
	session := console.NewSession(logger, queries, conv, rend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(command) > 0 {
		if err := session.RunCommand(ctx, command); err != nil {
			rend.Error(err)
			os.Exit(1)
		}
		return
	}

	if err := console.New(session, cfg.Console, logger).Run(ctx); err != nil {
		logger.Error("console failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
