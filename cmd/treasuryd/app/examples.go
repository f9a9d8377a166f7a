package app

import (
	"github.com/iov-one/treasury"
)

// Addresses used by ExampleGenesis.
var (
	ExampleController    = mustAddress("CC00000000000000000000000000000000000001")
	ExamplePrimary       = mustAddress("7000000000000000000000000000000000000001")
	ExampleSecondary     = mustAddress("7000000000000000000000000000000000000002")
	ExampleStable        = mustAddress("7000000000000000000000000000000000000003")
	ExampleWrappedNative = mustAddress("7000000000000000000000000000000000000004")

	ExampleBeneficiaries = []treasury.Address{
		mustAddress("BE00000000000000000000000000000000000001"),
		mustAddress("BE00000000000000000000000000000000000002"),
		mustAddress("BE00000000000000000000000000000000000003"),
		mustAddress("BE00000000000000000000000000000000000004"),
	}
)

func mustAddress(enc string) treasury.Address {
	a, err := treasury.ParseAddress(enc)
	if err != nil {
		panic(err)
	}
	return a
}

// ExampleGenesis is a complete genesis of a treasury. The vault holds
// primary and secondary tokens and the exchange can route both swap
// variants.
const ExampleGenesis = `{
  "time": "2019-04-01T12:00:00Z",
  "control": {"controller": "CC00000000000000000000000000000000000001"},
  "tokens": [
    {
      "address": "7000000000000000000000000000000000000001",
      "ticker": "PRIM",
      "balances": [{"owner": "cond:schedule/vault/7472656173757279", "amount": "1000000"}]
    },
    {
      "address": "7000000000000000000000000000000000000002",
      "ticker": "SECD",
      "balances": [{"owner": "cond:schedule/vault/7472656173757279", "amount": "5000"}]
    },
    {"address": "7000000000000000000000000000000000000003", "ticker": "USDX"},
    {"address": "7000000000000000000000000000000000000004", "ticker": "WNAT"}
  ],
  "exchange": [
    {"token_a": "7000000000000000000000000000000000000001", "token_b": "7000000000000000000000000000000000000004", "amount_a": "1000000", "amount_b": "1000000"},
    {"token_a": "7000000000000000000000000000000000000004", "token_b": "7000000000000000000000000000000000000002", "amount_a": "1000000", "amount_b": "1000000"},
    {"token_a": "7000000000000000000000000000000000000001", "token_b": "7000000000000000000000000000000000000003", "amount_a": "1000000", "amount_b": "1000000"},
    {"token_a": "7000000000000000000000000000000000000003", "token_b": "7000000000000000000000000000000000000002", "amount_a": "1000000", "amount_b": "1000000"}
  ],
  "conf": {
    "exchange": {"wrapped_native": "7000000000000000000000000000000000000004"},
    "schedule": {
      "primary_token": "7000000000000000000000000000000000000001",
      "secondary_token": "7000000000000000000000000000000000000002",
      "beneficiaries": [
        "BE00000000000000000000000000000000000001",
        "BE00000000000000000000000000000000000002",
        "BE00000000000000000000000000000000000003",
        "BE00000000000000000000000000000000000004"
      ],
      "stages": [
        {"payouts": [
          {"beneficiary": "BE00000000000000000000000000000000000001", "amount": "100000"},
          {"beneficiary": "BE00000000000000000000000000000000000002", "amount": "50000"},
          {"beneficiary": "BE00000000000000000000000000000000000003", "amount": "25000"}
        ]},
        {"payouts": [
          {"beneficiary": "BE00000000000000000000000000000000000001", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000002", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000003", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000004", "amount": "10000"}
        ]},
        {"payouts": [
          {"beneficiary": "BE00000000000000000000000000000000000001", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000002", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000003", "amount": "10000"},
          {"beneficiary": "BE00000000000000000000000000000000000004", "amount": "10000"}
        ]},
        {"payouts": [
          {"beneficiary": "BE00000000000000000000000000000000000004", "amount": "5000"}
        ]}
      ],
      "bootstrap_interval": 60,
      "recurring_interval": "168h"
    },
    "sweep": {"admin_lockup": "720h", "ecosystem_lockup": "2160h"},
    "swap": {
      "router": "cond:exchange/router/726f75746572",
      "wrapped_native": "7000000000000000000000000000000000000004",
      "stable": "7000000000000000000000000000000000000003",
      "deadline_offset": "5m",
      "native_first_min": "1",
      "native_second_min": "1",
      "stable_first_min": "1",
      "stable_second_min": "1"
    }
  }
}
`
