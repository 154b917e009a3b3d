// SPDX-License-Identifier: EPL-2.0

// Command sigwave plots the waves described by a YAML config and prints
// summaries of audio files.
//
//	sigwave plot -config chap01.yaml
//	sigwave info [-channel n | -mix] voice.wav drums.ogg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ik5/sigwave"
	"github.com/ik5/sigwave/config"
	"github.com/ik5/sigwave/internal/logging"
	"github.com/ik5/sigwave/render"
	"github.com/ik5/sigwave/wave"
)

const usage = `usage:
  sigwave plot -config <file.yaml> [-level debug|info|warn|error]
  sigwave info [-channel n | -mix] <file.{wav|mp3|ogg|aiff}>...`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "plot":
		return runPlot(ctx, args[1:])
	case "info":
		return runInfo(args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func runPlot(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "YAML file describing signals and waves")
	level := fs.String("level", "", "log level, overrides the config")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *configPath == "" {
		return fmt.Errorf("%w: -config is required", errUsage)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *level != "" {
		cfg.Log.Level = *level
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	png := render.NewPNG(cfg.Output.Dir, cfg.Output.Prefix,
		render.WithSize(cfg.Output.Width, cfg.Output.Height),
		render.WithLogger(logger),
	)

	logger.Info("plotting",
		zap.String("config", *configPath),
		zap.Int("waves", len(cfg.Waves)),
		zap.String("dir", cfg.Output.Dir),
	)

	return sigwave.Run(ctx, cfg, png, sigwave.WithLogger(logger))
}

func runInfo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	channel := fs.Int("channel", 0, "channel to summarize")
	mix := fs.Bool("mix", false, "average all channels instead of picking one")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: no input files", errUsage)
	}

	src := wave.WithChannel(*channel)
	if *mix {
		src = wave.WithMonoMix()
	}

	for _, path := range fs.Args() {
		info, err := sigwave.Inspect(path, sigwave.WithSourceOptions(src))
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "%s: %s, %d Hz, %d channel(s), %d samples, %.3fs, peak %.4f\n",
			info.Path, info.Format, info.SampleRate, info.Channels,
			info.Wave.Len(), info.Wave.Duration(), info.Wave.Peak())
	}

	return nil
}
