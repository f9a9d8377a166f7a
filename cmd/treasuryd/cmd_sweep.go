package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/treasury/x/sweep"
)

func cmdRecover(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Transfer tokens held by the treasury vault to the recipient. Only the
controller can recover tokens. Tokens paid out by the schedule are locked
until the admin lockup elapsed.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl   = addNodeFlags(fl)
		tokenFl  = flAddress(fl, "token", "", "Address of the recovered token.")
		toFl     = flAddress(fl, "to", "", "Address of the recipient.")
		amountFl = fl.String("amount", "", "Decimal amount to recover.")
	)
	fl.Parse(args)

	return execute(nodeFl, output, &sweep.RecoverTokenMsg{
		Token:  *tokenFl,
		To:     *toFl,
		Amount: *amountFl,
	})
}

func cmdRecoverLegacy(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Transfer tokens that do not report the transfer result. The operation
succeeds even if the token declined the transfer, check the recipient
balance to confirm it.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl   = addNodeFlags(fl)
		tokenFl  = flAddress(fl, "token", "", "Address of the recovered token.")
		toFl     = flAddress(fl, "to", "", "Address of the recipient.")
		amountFl = fl.String("amount", "", "Decimal amount to recover.")
	)
	fl.Parse(args)

	return execute(nodeFl, output, &sweep.RecoverLegacyTokenMsg{
		Token:  *tokenFl,
		To:     *toFl,
		Amount: *amountFl,
	})
}

func cmdRecoverNative(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Transfer the native asset held by the treasury vault to the recipient.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl   = addNodeFlags(fl)
		toFl     = flAddress(fl, "to", "", "Address of the recipient.")
		amountFl = fl.String("amount", "", "Decimal amount to recover.")
	)
	fl.Parse(args)

	return execute(nodeFl, output, &sweep.RecoverNativeMsg{
		To:     *toFl,
		Amount: *amountFl,
	})
}
