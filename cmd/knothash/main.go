// Command knothash prints knot hashes of its arguments, or with -d the used
// squares and region count of the disk derived from each argument.
//
// Usage:
//
//	knothash [-b] [-r <int>] [-v] STRING...
//	knothash -d [-w <int>] [--render] [-v] KEY...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/knotgrid/disk"
	"github.com/katalvlaran/knotgrid/knot"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type config struct {
	rounds  int
	binary  bool
	disk    bool
	workers int
	render  bool
	verbose bool
	help    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newFlagSet(cfg *config, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("knothash", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.BoolVarP(&cfg.help, "help", "h", false, "prints this help menu")
	fs.IntVarP(&cfg.rounds, "rounds", "r", knot.Rounds, "number of knot rounds")
	fs.BoolVarP(&cfg.binary, "binary", "b", false, "renders digest as 128 bits (default hex string)")
	fs.BoolVarP(&cfg.disk, "disk", "d", false, "treats arguments as disk keys and counts used squares and regions")
	fs.IntVarP(&cfg.workers, "workers", "w", runtime.GOMAXPROCS(0), "rows hashed concurrently in disk mode")
	fs.BoolVar(&cfg.render, "render", false, "prints the disk as '#'/'.' rows in disk mode")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "logs debug diagnostics to stderr")

	return fs
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if cfg.help || fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage:\n"+
			"  knothash [-b] [-r <int>] [-v] STRING...\n"+
			"  knothash -d [-w <int>] [--render] [-v] KEY...\n\n"+
			"Options:")
		fs.PrintDefaults()
		if cfg.help {
			return exitOK
		}
		return exitUsage
	}

	log := newLogger(stderr, cfg.verbose)
	if cfg.rounds <= 0 {
		log.WithField("rounds", cfg.rounds).Error("rounds must be positive")
		return exitUsage
	}
	if cfg.disk && cfg.workers <= 0 {
		log.WithField("workers", cfg.workers).Error("workers must be positive")
		return exitUsage
	}

	code := exitOK
	for _, arg := range fs.Args() {
		entry := log.WithField("key", arg)
		var err error
		if cfg.disk {
			err = printDisk(ctx, stdout, entry, arg, cfg)
		} else {
			err = printHash(stdout, entry, arg, cfg)
		}
		if err != nil {
			entry.WithError(err).Error("failed")
			code = exitFailure
			if ctx.Err() != nil {
				break
			}
		}
	}

	return code
}

func printHash(w io.Writer, entry *logrus.Entry, key string, cfg config) error {
	d, err := knot.Hash(key, cfg.rounds)
	if err != nil {
		return err
	}
	entry.WithField("rounds", cfg.rounds).Debug("hashed")
	out := d.Hex()
	if cfg.binary {
		out = d.Binary()
	}
	_, err = fmt.Fprintf(w, "%s  %q\n", out, key)

	return err
}

func printDisk(ctx context.Context, w io.Writer, entry *logrus.Entry, key string, cfg config) error {
	grid, err := disk.BuildGrid(ctx, key, disk.WithWorkers(cfg.workers))
	if err != nil {
		return err
	}
	gg, err := disk.Graph(grid)
	if err != nil {
		return err
	}
	regions, err := gg.CountRegions()
	if err != nil {
		return err
	}
	used := gg.Used()
	entry.WithFields(logrus.Fields{"workers": cfg.workers, "used": used, "regions": regions}).Debug("disk analysed")
	if cfg.render {
		if _, err = fmt.Fprintln(w, gg.String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%q used=%d regions=%d\n", key, used, regions)

	return err
}
