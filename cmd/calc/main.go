package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/graeme-hill/calcstuff-go/store"
)

type recorder interface {
	Record(ctx context.Context, eval store.Evaluation) (store.Evaluation, error)
}

var (
	configFile *string
	database   *string
	dump       *bool
)

func init() {
	configFile = flag.String("config.file", DefaultConfigFile, "config file location")
	database = flag.String("db", "", "postgres connection string, overrides the config file")
	dump = flag.Bool("dump", false, "dump tokens and postfix form of each expression")
}

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.Expressions = flag.Args()
	}
	if *database != "" {
		cfg.Database = *database
		cfg.Record = true
	}

	var rec recorder
	if cfg.Record {
		if cfg.Database == "" {
			log.Fatal("missing value: database")
		}
		client, err := store.NewDBClient(cfg.Database)
		if err != nil {
			log.Fatalf("connecting to database: %v", err)
		}
		defer client.Close()
		rec = client
	}

	failures := run(context.Background(), cfg.Expressions, os.Stdout, *dump, rec)
	if failures > 0 {
		log.Printf("%d of %d expressions failed", failures, len(cfg.Expressions))
	}
}

// run prints one line per expression and returns how many failed. Recording
// errors are logged but do not count as failures.
func run(ctx context.Context, exprs []string, w io.Writer, dump bool, rec recorder) int {
	failures := 0
	for _, expr := range exprs {
		if dump {
			dumpExpression(w, expr)
		}

		eval := store.Evaluate(expr)
		if eval.Failed() {
			failures++
			fmt.Fprintf(w, "%s: %s\n", expr, eval.Err)
		} else {
			fmt.Fprintf(w, "%s=%d\n", expr, eval.Result)
		}

		if rec != nil {
			if _, err := rec.Record(ctx, eval); err != nil {
				log.Printf("recording %q: %v", expr, err)
			}
		}
	}
	return failures
}

func dumpExpression(w io.Writer, expr string) {
	tokens, err := lib.Tokenize(expr)
	if err != nil {
		return
	}
	spew.Fdump(w, tokens)

	postfix, err := lib.ToPostfix(tokens)
	if err != nil {
		return
	}
	spew.Fdump(w, postfix)
}
