package main

import (
	"flag"
	"testing"
	"time"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestAddressFlag(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"default value": {
			args: nil,
			want: "CC00000000000000000000000000000000000001",
		},
		"hex address": {
			args: []string{"-addr", "0x1234567890123456789012345678901234567890"},
			want: "1234567890123456789012345678901234567890",
		},
		"condition address": {
			args: []string{"-addr", "cond:schedule/vault/7472656173757279"},
			want: treasury.NewCondition("schedule", "vault", []byte("treasury")).Address().String(),
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fl := flag.NewFlagSet("", flag.ContinueOnError)
			addr := flAddress(fl, "addr", "CC00000000000000000000000000000000000001", "")
			if err := fl.Parse(tc.args); err != nil {
				t.Fatalf("cannot parse: %s", err)
			}
			assert.Equal(t, tc.want, addr.String())
		})
	}
}

func TestTimeFlag(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	tm := flTime(fl, "time", "", "")
	if err := fl.Parse(nil); err != nil {
		t.Fatalf("cannot parse: %s", err)
	}
	assert.Equal(t, true, tm.IsZero())

	if err := fl.Parse([]string{"-time", "2019-04-01T12:00:00Z"}); err != nil {
		t.Fatalf("cannot parse: %s", err)
	}
	assert.Equal(t, time.Date(2019, time.April, 1, 12, 0, 0, 0, time.UTC).Unix(), tm.Unix())

	fl.SetOutput(nopWriter{})
	if err := fl.Parse([]string{"-time", "yesterday"}); err == nil {
		t.Fatal("invalid time accepted")
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
