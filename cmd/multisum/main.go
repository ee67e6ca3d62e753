package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/goose-lang/multisum/config"
	"github.com/goose-lang/multisum/runner"
	"github.com/goose-lang/multisum/util"
	"github.com/pkg/errors"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: multisum [options]")
		flag.PrintDefaults()
	}

	var configPath string
	flag.StringVar(&configPath, "config", "",
		"toml file with bases, limit, variants and batch cases (default is multiples of 3 or 5 below 1000)")

	var check bool
	flag.BoolVar(&check, "check", false,
		"exit with an error if any variant disagrees with the closed form")

	var batch bool
	flag.BoolVar(&batch, "batch", false,
		"also evaluate the config's batch cases")

	var outFile string
	flag.StringVar(&outFile, "out", "",
		"also write the report to this file")

	var debug bool
	flag.BoolVar(&debug, "debug", false,
		"spew the loaded config to stderr")

	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	conf, err := config.Load(configPath)
	if err != nil {
		util.Die(err, "could not load config")
	}
	if debug {
		spew.Fdump(os.Stderr, conf)
	}

	report, err := runner.Run(conf)
	if err != nil {
		util.Die(err, "could not run variants")
	}

	blue := color.New(color.FgBlue).SprintFunc()
	for _, r := range report.Results {
		fmt.Printf("%s : %d\n", blue(r.Label), r.Value)
	}

	if batch {
		results, err := runner.RunBatch(context.Background(), conf.Batch)
		if err != nil {
			util.Die(err, "could not run batch")
		}
		for _, r := range results {
			fmt.Printf("%s : %d\n", blue(r.Label), r.Value)
		}
	}

	if outFile != "" {
		var buf bytes.Buffer
		report.WriteTo(&buf)
		err = util.WriteFileIfChanged(outFile, buf.Bytes(), 0666)
		if err != nil {
			util.Die(err, "could not write output")
		}
	}

	if check && !report.Agree() {
		for _, r := range report.Mismatches() {
			util.Warn(errors.Errorf("%s gave %d, expected %d", r.Label, r.Value, report.Expected),
				"variant disagrees with the closed form")
		}
		os.Exit(1)
	}
}
