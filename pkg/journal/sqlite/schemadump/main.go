package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"codeberg.org/miketth/hyprinput/pkg/journal/sqlite"
	"codeberg.org/miketth/hyprinput/pkg/journal/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	path := flag.String("path", "", "path to dump the journal schema to")
	debug := flag.Bool("debug", false, "use debug level logging")
	flag.Parse()

	if *path == "" {
		return errors.New("missing -path flag")
	}

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	log.Info("creating empty journal database")
	db, err := sql.Open("sqlite3", "file:/dev/null?cache=shared&mode=memory")
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if _, err := migrations.Migrate(db, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	file, err := os.Create(*path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	log.Infow("dumping schema", "path", *path)
	if err := dumpSchema(context.Background(), sqlite.New(db), file); err != nil {
		return fmt.Errorf("dump schema: %w", err)
	}

	return nil
}

func dumpSchema(ctx context.Context, q *sqlite.Queries, w io.Writer) error {
	tables, err := q.DumpTables(ctx)
	if err != nil {
		return fmt.Errorf("dump tables: %w", err)
	}

	indexes, err := q.DumpRest(ctx)
	if err != nil {
		return fmt.Errorf("dump indexes: %w", err)
	}

	for _, statement := range append(tables, indexes...) {
		if statement == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s;\n\n", *statement); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
	}

	return nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
