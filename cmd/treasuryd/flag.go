package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iov-one/treasury"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *treasury.Address {
	var a treasury.Address
	if defaultVal != "" {
		var err error
		a, err = treasury.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q treasury.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flTime returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. Time
// is expected in RFC3339 format. An empty value is a zero time.
// If given value cannot be deserialized to required type, process is
// terminated.
func flTime(fl *flag.FlagSet, name, defaultVal, usage string) *time.Time {
	var t flagtime
	if defaultVal != "" {
		if err := t.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q time flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&t, name, usage)
	return (*time.Time)(&t)
}

type flagtime time.Time

func (t flagtime) String() string {
	if time.Time(t).IsZero() {
		return ""
	}
	return time.Time(t).UTC().Format(time.RFC3339)
}

func (t *flagtime) Set(raw string) error {
	if raw == "" {
		*t = flagtime{}
		return nil
	}
	val, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return err
	}
	*t = flagtime(val)
	return nil
}

// flagDie terminates the program when a command line flag was provided with
// an invalid value.
func flagDie(description string, args ...interface{}) {
	s := fmt.Sprintf(description, args...)
	fmt.Fprintln(os.Stderr, s)
	os.Exit(2)
}
