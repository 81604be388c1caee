// Command dtminfo prints the header fields of Dolphin movie files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ugparu/dtminfo/config"
	"github.com/ugparu/dtminfo/format/dtm"
	"github.com/ugparu/dtminfo/report"
	"github.com/ugparu/dtminfo/utils"
	"github.com/ugparu/dtminfo/utils/logger"
)

const usage = "Usage: dtminfo [-config file] [-env file] [-o text|json|yaml] [-log-level level] <movie.dtm>...\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dtminfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	envFile := fs.String("env", ".env", "optional .env file")
	output := fs.String("o", "", "output format: text, json or yaml")
	logLevel := fs.String("log-level", "", "log level (overrides config)")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() == 0 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(stderr, "dtminfo: %v\n", err)
		return 1
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "dtminfo: %v\n", err)
		return 1
	}

	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "dtminfo: %v\n", err)
		return 1
	}
	logger.Init(lvl, stderr)

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		fmt.Fprintf(stderr, "dtminfo: %v\n", err)
		return 1
	}

	status := 0
	entries := make([]report.Entry, 0, fs.NArg())
	for _, path := range fs.Args() {
		logger.Debugf("dtminfo", "Decoding %s", path)
		h, err := dtm.ReadFile(path)
		if err != nil {
			status = 1
			var srcErr *utils.SourceUnavailableError
			if errors.As(err, &srcErr) {
				fmt.Fprintf(stderr, "dtminfo: cannot open %s: %v\n", path, srcErr.Err)
			} else {
				fmt.Fprintf(stderr, "dtminfo: invalid movie file %s: %v\n", path, err)
			}
			continue
		}
		entries = append(entries, report.Entry{Path: path, Header: h})
	}

	if len(entries) > 0 {
		if err = report.Write(stdout, format, entries); err != nil {
			fmt.Fprintf(stderr, "dtminfo: %v\n", err)
			return 1
		}
	}
	return status
}
