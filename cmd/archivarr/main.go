// Package main is the entrypoint of Archivarr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"archivarr/internal/app"
	"archivarr/internal/cfg"
	"archivarr/internal/database"
	"archivarr/internal/domain/consts"
	"archivarr/internal/domain/errs"
	"archivarr/internal/domain/keys"
	"archivarr/internal/domain/paths"
	"archivarr/internal/repo"
	"archivarr/internal/utils/logging"

	"github.com/spf13/viper"
)

// main is the main entrypoint of the program (duh!).
func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n%s", r, debug.Stack())
			code = consts.ExitUnexpected
		}
	}()

	startTime := time.Now()

	if err := paths.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Archivarr exiting with error: %v\n", err)
		return consts.ExitUnexpected
	}

	if err := logging.SetupLogging(paths.LogFilePath); err != nil {
		fmt.Printf("Notice: log file was not created\nReason: %v\n", err)
	}

	// Run history is best-effort bookkeeping, never a reason to refuse a run.
	var runStore *repo.RunStore
	db, err := database.InitDB(paths.DBFilePath)
	if err != nil {
		logging.W("Run history unavailable: %v", err)
	} else {
		runStore = repo.GetRunStore(db.DB)
		defer db.Close()
	}

	if err := cfg.InitCommands(runStore); err != nil {
		logging.E("Failed to initialize commands: %v", err)
		return consts.ExitUnexpected
	}

	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return consts.ExitConfigError
	}

	if !viper.GetBool(keys.Execute) {
		return consts.ExitSuccess // help or a subcommand handled the run
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.I("Archivarr started at: %v", startTime.Format("2006-01-02 15:04:05.00 MST"))

	if err := app.NewArchiver(runStore).Run(ctx); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			logging.W("Interrupted by user.")
			return consts.ExitInterrupt
		case errors.Is(err, errs.ErrConfig):
			logging.E("Configuration error: %v", err)
			return consts.ExitConfigError
		case errors.Is(err, errs.ErrDownload):
			logging.E("Engine download error: %v", err)
			return consts.ExitEngineError
		default:
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n%s", err, debug.Stack())
			return consts.ExitUnexpected
		}
	}

	logging.I("Finished in %.2f seconds", time.Since(startTime).Seconds())
	return consts.ExitSuccess
}
