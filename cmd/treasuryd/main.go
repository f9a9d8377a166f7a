package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It is the responsibility
// of the command function to parse the arguments. In a special case of an
// invalid argument a message to os.Stderr and os.Exit(2) call are allowed.
//
// Every command that changes the treasury state opens the database found
// in the home directory, executes a single operation and persists the
// result. A unix pipe can be used to bootstrap a new treasury:
//
//   $ treasuryd example-genesis | treasuryd init -home /tmp/treasury
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"advance":          cmdAdvance,
	"balance":          cmdBalance,
	"example-genesis":  cmdExampleGenesis,
	"init":             cmdInit,
	"recover":          cmdRecover,
	"recover-legacy":   cmdRecoverLegacy,
	"recover-native":   cmdRecoverNative,
	"register-token":   cmdRegisterToken,
	"state":            cmdState,
	"swap":             cmdSwap,
	"transfer-control": cmdTransferControl,
	"version":          cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s manages a treasury releasing tokens in scheduled stages.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, gitHash)
	return nil
}

// gitHash is set during the compilation time.
var gitHash string = "dev"
