package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const usage = `usage: csv-records [-v] <decode|encode> <config.yml> <input>

  decode  reads a csv file and prints its records as yaml
  encode  reads a yaml list of records and prints it as csv

Inputs ending in .gz are decompressed.`

func main() {
	// a missing .env is fine, the environment can come from anywhere
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("cannot load .env")
	}

	verbose := flag.Bool("v", false, "log debug information")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	setLogLevel(*verbose)

	if flag.NArg() != 3 {
		logrus.Fatal("expecting 3 arguments, the command, the configuration file and the input file. eg. csv-records decode myconfig.yml mycsv.csv")
	}

	d, err := NewData(flag.Arg(1), flag.Arg(2))
	if err != nil {
		logrus.Fatal(err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "decode":
		err = d.Decode(os.Stdout)
	case "encode":
		err = d.Encode(os.Stdout)
	default:
		logrus.Fatalf("unknown command '%s', expecting decode or encode", cmd)
	}

	if err != nil {
		logrus.Fatal(err)
	}
}

func setLogLevel(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}

	lvl := os.Getenv(envLogLevel)
	if lvl == "" {
		return
	}

	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		logrus.WithError(err).Warnf("ignoring %s", envLogLevel)
		return
	}

	logrus.SetLevel(level)
}
