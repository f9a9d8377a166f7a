package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/iov-one/treasury/cmd/treasuryd/app"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/treasurytest/assert"
	"github.com/iov-one/treasury/x/schedule"
	"github.com/iov-one/treasury/x/sweep"
)

// deployTreasury initializes a treasury from the example genesis in a
// temporary home directory.
func deployTreasury(t testing.TB) (string, func()) {
	t.Helper()
	home, err := ioutil.TempDir("", "treasuryd")
	if err != nil {
		t.Fatalf("cannot create home directory: %s", err)
	}
	cleanup := func() { os.RemoveAll(home) }

	var genesis bytes.Buffer
	if err := cmdExampleGenesis(nil, &genesis, nil); err != nil {
		cleanup()
		t.Fatalf("cannot write genesis: %s", err)
	}
	var output bytes.Buffer
	if err := cmdInit(&genesis, &output, []string{"-home", home}); err != nil {
		cleanup()
		t.Fatalf("cannot deploy treasury: %+v", err)
	}
	return home, cleanup
}

func TestCmdInitOnce(t *testing.T) {
	home, cleanup := deployTreasury(t)
	defer cleanup()

	var output bytes.Buffer
	err := cmdInit(strings.NewReader(app.ExampleGenesis), &output, []string{"-home", home})
	if !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
}

func TestCmdAdvance(t *testing.T) {
	home, cleanup := deployTreasury(t)
	defer cleanup()

	cases := []struct {
		time    string
		wantErr *errors.Error
		wantOut string
	}{
		{time: "2019-04-01T12:01:00Z", wantErr: schedule.ErrInsufficientInterval},
		{time: "2019-04-01T12:01:01Z", wantOut: "stage 0 executed\n"},
		{time: "2019-04-01T12:01:02Z", wantErr: schedule.ErrInsufficientInterval},
		{time: "2019-04-08T12:01:02Z", wantOut: "stage 1 executed\n"},
	}
	for _, tc := range cases {
		var output bytes.Buffer
		err := cmdAdvance(nil, &output, []string{"-home", home, "-time", tc.time})
		if !tc.wantErr.Is(err) {
			t.Fatalf("%s: want %q error, got %+v", tc.time, tc.wantErr, err)
		}
		if !strings.HasPrefix(output.String(), tc.wantOut) {
			t.Fatalf("%s: unexpected output %q", tc.time, output.String())
		}
	}

	var balance bytes.Buffer
	args := []string{
		"-home", home,
		"-token", app.ExamplePrimary.String(),
		"-owner", app.ExampleBeneficiaries[0].String(),
	}
	if err := cmdBalance(nil, &balance, args); err != nil {
		t.Fatalf("cannot read balance: %s", err)
	}
	assert.Equal(t, "110000\n", balance.String())

	var state bytes.Buffer
	if err := cmdState(nil, &state, []string{"-home", home}); err != nil {
		t.Fatalf("cannot read state: %s", err)
	}
	for _, want := range []string{
		`"stage_count": 2`,
		`"deployment_time": "2019-04-01T12:00:00Z"`,
		`"last_claim_time": "2019-04-08T12:01:02Z"`,
		`"next_claim_time": "2019-04-15T12:01:03Z"`,
	} {
		if !strings.Contains(state.String(), want) {
			t.Errorf("state does not contain %s: %s", want, state.String())
		}
	}
}

func TestCmdAdvanceDryRun(t *testing.T) {
	home, cleanup := deployTreasury(t)
	defer cleanup()

	var output bytes.Buffer
	args := []string{"-home", home, "-time", "2019-04-01T12:01:01Z", "-dry"}
	if err := cmdAdvance(nil, &output, args); err != nil {
		t.Fatalf("cannot simulate: %s", err)
	}
	var state bytes.Buffer
	if err := cmdState(nil, &state, []string{"-home", home}); err != nil {
		t.Fatalf("cannot read state: %s", err)
	}
	if !strings.Contains(state.String(), `"stage_count": 0`) {
		t.Fatalf("simulation changed the state: %s", state.String())
	}
}

func TestCmdRecover(t *testing.T) {
	home, cleanup := deployTreasury(t)
	defer cleanup()

	controller := app.ExampleController.String()
	recipient := "1234567890123456789012345678901234567890"

	cases := map[string]struct {
		args    []string
		wantErr *errors.Error
	}{
		"tracked token is locked": {
			args:    []string{"-caller", controller, "-time", "2019-04-02T12:00:00Z", "-token", app.ExampleSecondary.String()},
			wantErr: sweep.ErrLockupNotExpired,
		},
		"only the controller can recover": {
			args:    []string{"-caller", recipient, "-time", "2019-06-01T12:00:00Z", "-token", app.ExampleSecondary.String()},
			wantErr: errors.ErrUnauthorized,
		},
		"lockup elapsed": {
			args: []string{"-caller", controller, "-time", "2019-06-01T12:00:00Z", "-token", app.ExampleSecondary.String()},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var output bytes.Buffer
			args := append([]string{"-home", home, "-to", recipient, "-amount", "10"}, tc.args...)
			if err := cmdRecover(nil, &output, args); !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
		})
	}

	var balance bytes.Buffer
	args := []string{"-home", home, "-token", app.ExampleSecondary.String(), "-owner", recipient}
	if err := cmdBalance(nil, &balance, args); err != nil {
		t.Fatalf("cannot read balance: %s", err)
	}
	assert.Equal(t, "10\n", balance.String())
}

func TestCmdTransferControl(t *testing.T) {
	home, cleanup := deployTreasury(t)
	defer cleanup()

	successor := "1234567890123456789012345678901234567890"
	var output bytes.Buffer
	args := []string{"-home", home, "-caller", app.ExampleController.String(), "-to", successor}
	if err := cmdTransferControl(nil, &output, args); err != nil {
		t.Fatalf("cannot transfer control: %s", err)
	}

	args = []string{"-home", home, "-caller", app.ExampleController.String(), "-to", successor}
	if err := cmdTransferControl(nil, &output, args); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("previous controller is still authorized: %+v", err)
	}
}

func TestCmdVersion(t *testing.T) {
	var output bytes.Buffer
	if err := cmdVersion(nil, &output, nil); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "dev\n", output.String())
}
