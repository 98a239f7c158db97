// Command charvocab prints the character vocabulary of a first name
// spreadsheet.
//
//	charvocab [-conf charvocab.yaml] [-file names.xlsx] [-sheet name] [-column name] [-dump]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lwch/charvocab"
	"github.com/lwch/logging"
)

var (
	conf      = flag.String("conf", "", "yaml config file")
	file      = flag.String("file", "", "xlsx file, overrides config")
	sheet     = flag.String("sheet", "", "sheet name, overrides config")
	column    = flag.String("column", "", "column header, overrides config")
	skipBlank = flag.Bool("skip-blank", false, "drop blank names")
	dump      = flag.Bool("dump", false, "print the index table")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*conf)
	if err != nil {
		logging.Error("load config: %v", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	v, err := charvocab.Build(cfg.File, cfg.Sheet, cfg.Column,
		charvocab.WithSentinels(cfg.Start, cfg.End),
		charvocab.WithSkipBlank(cfg.SkipBlank))
	if err != nil {
		logging.Error("build vocab: %v", err)
		os.Exit(1)
	}
	fmt.Printf("%d tokens, start=%d end=%d\n", v.Len(), v.Start(), v.End())
	if *dump {
		dumpTable(os.Stdout, v)
	}
}

func applyFlags(cfg *config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *file
		case "sheet":
			cfg.Sheet = *sheet
		case "column":
			cfg.Column = *column
		case "skip-blank":
			cfg.SkipBlank = *skipBlank
		}
	})
}

func dumpTable(w io.Writer, v *charvocab.Vocab) {
	for id, tk := range v.Tokens() {
		fmt.Fprintf(w, "%d\t%q\n", id, tk)
	}
}
