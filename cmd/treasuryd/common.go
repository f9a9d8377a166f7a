package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/cmd/treasuryd/app"
	"github.com/tendermint/tendermint/libs/log"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// nodeFlags are the flags shared by every command that accesses the
// treasury database.
type nodeFlags struct {
	home     *string
	logLevel *string
	caller   *treasury.Address
	now      *time.Time
	dry      *bool
}

func addNodeFlags(fl *flag.FlagSet) *nodeFlags {
	defaultHome := filepath.Join(os.Getenv("HOME"), ".treasury")
	return &nodeFlags{
		home:     fl.String("home", env("TREASURY_HOME", defaultHome), "Directory holding the treasury database."),
		logLevel: fl.String("log-level", env("TREASURY_LOG_LEVEL", "error"), "Log level: debug, info or error."),
		caller:   flAddress(fl, "caller", env("TREASURY_CALLER", ""), "Address of the account executing the operation."),
		now:      flTime(fl, "time", "", "Execution time in RFC3339 format. Current time is used if not provided."),
		dry:      fl.Bool("dry", false, "Only check if the operation would succeed, do not persist any change."),
	}
}

func (f *nodeFlags) logger() (log.Logger, error) {
	level, err := log.AllowLevel(*f.logLevel)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stderr)), level), nil
}

// open returns the treasury stored in the home directory.
func (f *nodeFlags) open() (*app.Node, error) {
	logger, err := f.logger()
	if err != nil {
		return nil, err
	}
	return app.NewNode(filepath.Join(*f.home, "treasury.db"), logger, nil)
}

// context returns the execution context, declaring the execution time if
// one was requested.
func (f *nodeFlags) context() treasury.Context {
	ctx := context.Background()
	if !f.now.IsZero() {
		ctx = treasury.WithBlockTime(ctx, *f.now)
	}
	return ctx
}

// execute runs a single operation against the treasury and writes the
// result to the output.
func execute(f *nodeFlags, output io.Writer, msg treasury.Msg) error {
	n, err := f.open()
	if err != nil {
		return fmt.Errorf("cannot open treasury: %s", err)
	}
	defer n.Close()

	run := n.Execute
	if *f.dry {
		run = n.Simulate
	}
	res, err := run(f.context(), *f.caller, msg)
	if err != nil {
		return err
	}
	writeResult(output, res)
	return nil
}

func writeResult(w io.Writer, res *treasury.DeliverResult) {
	if res == nil {
		return
	}
	if res.Log != "" {
		fmt.Fprintln(w, res.Log)
	}
	for _, tag := range res.Tags {
		fmt.Fprintf(w, "%s=%s\n", tag.Key, tag.Value)
	}
}
