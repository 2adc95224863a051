// SPDX-License-Identifier: EPL-2.0

// Command wakeaug prepares wake-word training data.
//
//	wakeaug [-config file] [-env file] prepare [-background] [-negative]
//	wakeaug [-config file] [-env file] augment [-seed n] [-workers n] [-metrics-file path]
//	wakeaug [-config file] [-env file] config
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

	"github.com/ik5/wakeaug/audiofile"
	"github.com/ik5/wakeaug/augment"
	"github.com/ik5/wakeaug/internal/config"
	"github.com/ik5/wakeaug/internal/metrics"
	"github.com/ik5/wakeaug/prepare"
	"github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "usage: wakeaug [-config file] [-env file] <prepare|augment|config> [flags]")
	fs.PrintDefaults()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wakeaug", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	envFile := fs.String("env", ".env", "dotenv file, skipped when missing")
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintln(stderr, "wakeaug:", err)
		return exitFail
	}

	log, err := cfg.Logging.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "wakeaug:", err)
		return exitFail
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "prepare":
		return runPrepare(ctx, cfg, log, rest, stdout, stderr)
	case "augment":
		return runAugment(ctx, cfg, log, rest, stdout, stderr)
	case "config":
		if err := cfg.WriteStatus(stdout); err != nil {
			fmt.Fprintln(stderr, "wakeaug:", err)
			return exitFail
		}
		return exitOK
	}

	fmt.Fprintf(stderr, "wakeaug: unknown command %q\n", cmd)
	fs.Usage()

	return exitUsage
}

func runPrepare(ctx context.Context, cfg *config.Config, log *logrus.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	background := fs.Bool("background", false, "download the background noise corpus")
	negative := fs.Bool("negative", false, "download the negative speech corpus")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !*background && !*negative {
		*background, *negative = true, true
	}

	p := prepare.NewPreparer(cfg.Data.Dir, cfg.Data.DatasetURL, cfg.Data.DownloadTimeout, log)
	runErr := p.Run(ctx, *background, *negative)

	status, err := p.Verify()
	if err != nil {
		fmt.Fprintln(stderr, "wakeaug:", err)
		return exitFail
	}
	for _, s := range status {
		if !s.Exists {
			fmt.Fprintf(stdout, "%-10s missing (%s)\n", s.Name, s.Path)
			continue
		}
		fmt.Fprintf(stdout, "%-10s %d WAV files (%s)\n", s.Name, s.WAVFiles, s.Path)
	}

	if runErr != nil {
		fmt.Fprintln(stderr, "wakeaug:", runErr)
		return exitFail
	}

	return exitOK
}

func runAugment(ctx context.Context, cfg *config.Config, log *logrus.Logger, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("augment", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint64("seed", cfg.Augment.Seed, "random seed, 0 picks one from the clock")
	workers := fs.Int("workers", cfg.Augment.Workers, "samples processed in parallel")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file when done")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *workers < 1 {
		fmt.Fprintln(stderr, "wakeaug: -workers must be at least 1")
		return exitUsage
	}

	m := metrics.New()
	opts := []augment.Option{
		augment.WithPolicy(cfg.Policy()),
		augment.WithLogger(log),
		augment.WithWorkers(*workers),
		augment.WithMetrics(m),
	}
	if *seed != 0 {
		opts = append(opts, augment.WithSeed(*seed))
	}

	aug := augment.NewAugmenter(audiofile.NewLoader(), cfg.AugmentedDir(), opts...)
	report, err := aug.AugmentAll(ctx, cfg.PositiveDir(), cfg.BackgroundDir())

	if *metricsFile != "" {
		if werr := m.WriteTextfile(*metricsFile); werr != nil {
			log.WithError(werr).Warn("metrics not written")
		}
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "wakeaug: interrupted")
		} else {
			fmt.Fprintln(stderr, "wakeaug:", err)
		}
		return exitFail
	}

	if report.Empty() {
		fmt.Fprintf(stdout, "no positive samples in %s, nothing to do\n", cfg.PositiveDir())
		return exitOK
	}

	fmt.Fprintf(stdout, "original samples:   %d\n", report.Originals)
	fmt.Fprintf(stdout, "augmented samples:  %d\n", report.Augmented)
	fmt.Fprintf(stdout, "total dataset size: %d\n", report.Total())
	if report.Failed > 0 {
		fmt.Fprintf(stdout, "unreadable samples: %d\n", report.Failed)
	}
	fmt.Fprintf(stdout, "seed: %d\n", aug.Seed())

	return exitOK
}
