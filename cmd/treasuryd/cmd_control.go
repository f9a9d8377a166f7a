package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/treasury/x/control"
	"github.com/iov-one/treasury/x/token"
)

func cmdTransferControl(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Hand the control of the treasury over to a new controller. Only the current
controller can do it.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl = addNodeFlags(fl)
		toFl   = flAddress(fl, "to", "", "Address of the new controller.")
	)
	fl.Parse(args)

	return execute(nodeFl, output, &control.TransferControlMsg{NewController: *toFl})
}

func cmdRegisterToken(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Register a token, so that it can be held and recovered by the treasury. Only
the controller can register tokens.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl   = addNodeFlags(fl)
		tokenFl  = flAddress(fl, "token", "", "Address of the token.")
		tickerFl = fl.String("ticker", "", "Ticker of the token, 3 to 8 upper case letters or digits.")
		legacyFl = fl.Bool("legacy", false, "The token does not report the result of a transfer.")
		feeFl    = fl.Uint("fee", 0, "Transfer fee in basis points, burned on every transfer.")
	)
	fl.Parse(args)

	if *feeFl > token.MaxFeeBasisPoints {
		flagDie("fee must not be greater than %d basis points", token.MaxFeeBasisPoints)
	}
	return execute(nodeFl, output, &token.RegisterTokenMsg{
		Token:          *tokenFl,
		Ticker:         *tickerFl,
		Legacy:         *legacyFl,
		FeeBasisPoints: uint32(*feeFl),
	})
}
