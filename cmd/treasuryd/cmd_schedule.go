package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/iov-one/treasury"
	treasuryapp "github.com/iov-one/treasury/app"
	"github.com/iov-one/treasury/cmd/treasuryd/app"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x/schedule"
)

func cmdExampleGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print a complete genesis of a treasury. Use it as a template to write your
own genesis.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	_, err := io.WriteString(output, app.ExampleGenesis)
	return err
}

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Deploy a new treasury in the home directory. The genesis is read from the
file if provided, otherwise from the standard input. The treasury can be
deployed only once.
		`)
		fl.PrintDefaults()
	}
	var (
		nodeFl    = addNodeFlags(fl)
		genesisFl = fl.String("genesis", "", "Path to the genesis file.")
	)
	fl.Parse(args)

	var (
		gen *treasuryapp.Genesis
		err error
	)
	if *genesisFl != "" {
		gen, err = treasuryapp.LoadGenesis(*genesisFl)
	} else {
		var raw []byte
		if raw, err = ioutil.ReadAll(input); err != nil {
			return fmt.Errorf("cannot read genesis: %s", err)
		}
		gen, err = treasuryapp.ParseGenesis(raw)
	}
	if err != nil {
		return err
	}
	if !nodeFl.now.IsZero() {
		gen.Time = treasury.AsUnixTime(*nodeFl.now)
	}

	n, err := nodeFl.open()
	if err != nil {
		return fmt.Errorf("cannot open treasury: %s", err)
	}
	defer n.Close()
	if err := n.InitGenesis(gen); err != nil {
		return err
	}
	fmt.Fprintf(output, "treasury deployed in %s\n", *nodeFl.home)
	return nil
}

func cmdAdvance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Execute the next stage of the schedule, paying out all its beneficiaries.
Anyone can execute a stage once its interval elapsed.
		`)
		fl.PrintDefaults()
	}
	nodeFl := addNodeFlags(fl)
	fl.Parse(args)

	return execute(nodeFl, output, &schedule.AdvanceStageMsg{})
}

// scheduleState is the human readable representation of the schedule
// progress.
type scheduleState struct {
	StageCount        uint32 `json:"stage_count"`
	DeploymentTime    string `json:"deployment_time"`
	LastClaimTime     string `json:"last_claim_time"`
	NextClaimTime     string `json:"next_claim_time,omitempty"`
	SecondarySnapshot string `json:"secondary_snapshot,omitempty"`
}

func cmdState(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the progress of the schedule and the earliest time the next stage can
be executed.
		`)
		fl.PrintDefaults()
	}
	nodeFl := addNodeFlags(fl)
	fl.Parse(args)

	n, err := nodeFl.open()
	if err != nil {
		return fmt.Errorf("cannot open treasury: %s", err)
	}
	defer n.Close()

	var res scheduleState
	err = n.Query(func(db treasury.ReadOnlyKVStore) error {
		state, err := n.Buckets.Schedule.Get(db)
		if err != nil {
			return err
		}
		conf, err := schedule.LoadConfiguration(db)
		if err != nil {
			return err
		}
		res = scheduleState{
			StageCount:     state.StageCount,
			DeploymentTime: formatTime(state.DeploymentTime),
			LastClaimTime:  formatTime(state.LastClaimTime),
		}
		switch next, err := schedule.NextClaimTime(conf, state); {
		case err == nil:
			res.NextClaimTime = formatTime(next)
		case !schedule.ErrStageExhausted.Is(err):
			return err
		}
		if state.StageCount > schedule.FinalStage {
			res.SecondarySnapshot = state.Snapshot().Dec()
		}
		return nil
	})
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return fmt.Errorf("treasury not deployed in %s", *nodeFl.home)
		}
		return err
	}

	raw, err := json.MarshalIndent(res, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot serialize state: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

func formatTime(t treasury.UnixTime) string {
	return t.Time().UTC().Format(time.RFC3339)
}
