package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goose-lang/multisum/predgen"
	"github.com/goose-lang/multisum/util"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: predgen [options]")
		flag.PrintDefaults()
	}

	var config predgen.Config
	flag.StringVar(&config.Package, "pkg", "main",
		"package clause of the generated file")
	flag.StringVar(&config.Func, "func", "",
		"name of the generated predicate (default derived from the bases)")

	var bases string
	flag.StringVar(&bases, "bases", "3,5",
		"comma-separated divisors")

	var outFile string
	flag.StringVar(&outFile, "o", "",
		"output file (default is standard output)")

	flag.Parse()

	var err error
	config.Bases, err = predgen.ParseBases(bases)
	if err != nil {
		util.Die(err, "could not parse -bases")
	}
	src, err := predgen.Generate(config)
	if err != nil {
		util.Die(err, "could not generate predicate")
	}

	if outFile == "" {
		os.Stdout.Write(src)
		return
	}
	err = util.WriteFileIfChanged(outFile, src, 0666)
	if err != nil {
		util.Die(err, "could not write output")
	}
}
