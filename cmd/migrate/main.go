package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/LavaJover/football-team-service/internal/config"
	"github.com/LavaJover/football-team-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
)

type runner interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() error
}

type openFunc func(dsn, path string) (runner, error)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	cfg := config.MustLoad()

	open := func(dsn, path string) (runner, error) {
		return migrate.NewRunnerFromURL(dsn, path)
	}
	os.Exit(run(os.Args[1:], cfg.TeamDB, open, os.Stdout, os.Stderr))
}

// run returns the process exit code; the runner is closed on every path once opened.
func run(args []string, db config.TeamDB, open openFunc, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("migrate", flag.ContinueOnError)
	flags.SetOutput(stderr)
	dsn := flags.String("dsn", db.Dsn, "database url")
	path := flags.String("path", db.MigrationsPath, "migrations directory")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: migrate [-dsn url] [-path dir] up|down|version\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}
	command := flags.Arg(0)
	if command != "up" && command != "down" && command != "version" {
		flags.Usage()
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)

	r, err := open(*dsn, *path)
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Printf("close: %v", err)
		}
	}()

	switch command {
	case "up":
		err = r.Up()
	case "down":
		err = r.Down()
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = r.Version()
		if err == nil {
			fmt.Fprintf(stdout, "version=%d dirty=%t\n", version, dirty)
		}
	}
	if err != nil {
		logger.Printf("%v", err)
		return 1
	}
	return 0
}
