package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/x/swap"
)

func cmdSwap(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Exchange primary tokens held by the vault for the target token. The exchange
is done in two legs, through the wrapped native asset or through the stable
token. Proceeds are kept by the vault. Only the controller can swap.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl   = addNodeFlags(fl)
		viaFl    = fl.String("via", "native", "Intermediate asset of the exchange: native or stable.")
		amountFl = fl.String("amount", "", "Decimal amount of primary tokens to exchange.")
		targetFl = flAddress(fl, "target", "", "Address of the token to acquire.")
	)
	fl.Parse(args)

	var msg treasury.Msg
	switch *viaFl {
	case "native":
		msg = &swap.SwapViaNativeMsg{AmountIn: *amountFl, Target: *targetFl}
	case "stable":
		msg = &swap.SwapViaStableMsg{AmountIn: *amountFl, Target: *targetFl}
	default:
		flagDie("unknown swap route %q, use native or stable", *viaFl)
	}
	return execute(nodeFl, output, msg)
}
