package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/x/schedule"
	"github.com/iov-one/treasury/x/token"
)

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the balance of an account. By default the native asset balance of the
treasury vault is printed.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl  = addNodeFlags(fl)
		tokenFl = flAddress(fl, "token", token.NativeAsset.String(), "Address of the token.")
		ownerFl = flAddress(fl, "owner", schedule.Vault.String(), "Address of the account.")
	)
	fl.Parse(args)

	n, err := nodeFl.open()
	if err != nil {
		return fmt.Errorf("cannot open treasury: %s", err)
	}
	defer n.Close()

	var amount *uint256.Int
	err = n.Query(func(db treasury.ReadOnlyKVStore) error {
		var err error
		amount, err = n.Buckets.Ledger.BalanceOf(db, *tokenFl, *ownerFl)
		return err
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, amount.Dec())
	return err
}
