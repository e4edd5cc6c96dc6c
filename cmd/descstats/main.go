// Package main is a command line front end for package stats.
//
// It loads one or two columns from a CSV file (or stdin) and prints their
// average, population variance and, with --with, sample covariance.
//
//	descstats -f data.csv -c height
//	descstats -f data.csv -c height -w weight --format json --decimals 3
//	descstats -f data.csv -c height --where country=Australia
//	cat data.csv | DESCSTATS_COLUMN=height descstats
package main

import (
	"io"
	"os"

	"github.com/sartorproj/descstats/internal/conf"
	"github.com/sartorproj/descstats/sample"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("descstats", "Average, population variance and sample covariance of CSV columns.")
	cfg := conf.New(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logrus.SetLevel(cfg.LogLevel())
	check(cfg.Validate())

	report, err := run(cfg, os.Stdin)
	check(err)
	check(report.Write(os.Stdout, cfg.Format, cfg.Decimals))
}

func run(cfg *conf.Config, stdin io.Reader) (*Report, error) {
	filterColumn, filterValue, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	opts := &sample.CSVOptions{
		Columns:      cfg.Columns(),
		FilterColumn: filterColumn,
		FilterValue:  filterValue,
		Delimiter:    cfg.DelimiterRune(),
		SkipRows:     cfg.SkipRows,
	}

	var samples []*sample.Sample
	if cfg.File == "-" {
		logrus.Debug("reading CSV from stdin")
		samples, err = sample.LoadCSVFromReader(stdin, opts)
	} else {
		logrus.Debugf("reading CSV from %s", cfg.File)
		samples, err = sample.LoadCSV(cfg.File, opts)
	}
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded %d observations of %q", samples[0].Len(), samples[0].Name)

	var with *sample.Sample
	if len(samples) > 1 {
		with = samples[1]
	}
	return Build(samples[0], with)
}

// check logs err and exits if it is not nil.
func check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}
