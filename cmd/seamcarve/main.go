package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/seamcarve"
	"github.com/esimov/seamcarve/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐
└─┐├┤ ├─┤│││├─┘├─┤├┬┘└┐┌┘├┤
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘

Content aware image width reduction.
    Version: %s
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version = "dev"

type options struct {
	source      string
	destination string
	config      string
	width       int
	percentage  bool
	debug       bool
	seamColor   string
	energyFile  string
	workers     int
	verbose     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&options{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf("Error resizing the image: %v", err), utils.ErrorMessage))
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seamcarve",
		Short:        "Shrink images by removing their lowest energy seams",
		Long:         fmt.Sprintf(helpBanner, Version),
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.source, "in", "i", pipeName, "source image, directory or URL")
	flags.StringVarP(&opts.destination, "out", "o", pipeName, "destination image or directory")
	flags.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	flags.IntVarP(&opts.width, "width", "w", 0, "new image width")
	flags.BoolVar(&opts.percentage, "perc", false, "interpret the width as the percentage to remove")
	flags.BoolVar(&opts.debug, "debug", false, "paint the removed seams instead of removing them")
	flags.StringVar(&opts.seamColor, "color", seamcarve.DefaultSeamColor, "seam color used in debug mode")
	flags.StringVar(&opts.energyFile, "energy", "", "save the energy map of the source image")
	flags.IntVar(&opts.workers, "conc", runtime.NumCPU(), "number of files to process concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	cfg := &seamcarve.Config{SeamColor: seamcarve.DefaultSeamColor, Workers: runtime.NumCPU()}
	if opts.config != "" {
		var err error
		if cfg, err = seamcarve.LoadConfig(opts.config); err != nil {
			return err
		}
		logger.Debug("config loaded", "path", opts.config)
	}
	applyFlags(cmd, opts, cfg)

	if cfg.Width <= 0 && !cfg.Percentage {
		return fmt.Errorf("please provide a width or percentage for image rescaling")
	}

	proc := cfg.Processor()
	proc.Logger = logger

	op := &seamcarve.Ops{
		Src:      opts.source,
		Dst:      opts.destination,
		PipeName: pipeName,
		Workers:  cfg.Workers,
	}
	if !opts.verbose && term.IsTerminal(int(os.Stderr.Fd())) {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ SEAMCARVE", utils.StatusMessage),
			utils.DecorateText("⇢ carving image (be patient, it may take a while)...", utils.DefaultMessage),
		)
		op.Spinner = utils.NewSpinner(os.Stderr, msg, time.Millisecond*80, true)
		defer op.Spinner.RestoreCursor()
	}

	return proc.Execute(cmd.Context(), op)
}

// applyFlags overrides the configuration with the explicitly set flags.
func applyFlags(cmd *cobra.Command, opts *options, cfg *seamcarve.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") || cfg.Width == 0 {
		cfg.Width = opts.width
	}
	if flags.Changed("perc") {
		cfg.Percentage = opts.percentage
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("color") || cfg.SeamColor == "" {
		cfg.SeamColor = opts.seamColor
	}
	if flags.Changed("energy") {
		cfg.EnergyFile = opts.energyFile
	}
	if flags.Changed("conc") || cfg.Workers == 0 {
		cfg.Workers = opts.workers
	}
}
