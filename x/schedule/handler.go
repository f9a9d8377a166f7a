package schedule

import (
	"strconv"

	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
	"github.com/iov-one/treasury/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

// TagStage is the key of the tag announcing the executed stage.
const TagStage = "schedule.stage"

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, tokens token.Tokens, state *StateBucket) {
	r.Handle(&AdvanceStageMsg{}, AdvanceStageHandler{tokens: tokens, state: state})
}

// AdvanceStageHandler executes the next stage of the schedule. It is open
// to any caller.
type AdvanceStageHandler struct {
	tokens token.Tokens
	state  *StateBucket
}

var _ treasury.Handler = AdvanceStageHandler{}

// NewAdvanceStageHandler returns a handler paying out through given tokens.
func NewAdvanceStageHandler(tokens token.Tokens, state *StateBucket) AdvanceStageHandler {
	return AdvanceStageHandler{tokens: tokens, state: state}
}

// Deliver executes the next stage if its interval elapsed.
//
// The new state is stored before any token is transferred. If any of the
// transfers fails, an error is returned and the caller must discard every
// change, the state update included.
func (h AdvanceStageHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	var msg AdvanceStageMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	state, err := h.state.Get(db)
	if err != nil {
		return nil, err
	}

	if state.Exhausted() {
		return nil, errors.Wrapf(ErrStageExhausted, "%d stages executed", state.StageCount)
	}
	now := treasury.Now(ctx)
	elapsed, err := safemath.Sub64(uint64(now), uint64(state.LastClaimTime))
	if err != nil {
		return nil, errors.Wrap(err, "time since last claim")
	}
	required := conf.RequiredInterval(state.StageCount)
	if elapsed <= uint64(required) {
		return nil, errors.Wrapf(ErrInsufficientInterval, "stage %d: %ds elapsed, more than %ds required", state.StageCount, elapsed, required)
	}

	stage := state.StageCount
	next, err := safemath.Add64(uint64(stage), 1)
	if err != nil {
		return nil, errors.Wrap(err, "stage count")
	}
	updated := &State{
		StageCount:        uint32(next),
		LastClaimTime:     now,
		DeploymentTime:    state.DeploymentTime,
		SecondarySnapshot: state.SecondarySnapshot,
	}

	primary := h.tokens.Token(conf.PrimaryToken)
	secondary := h.tokens.Token(conf.SecondaryToken)

	var sweep *uint256.Int
	if stage == FinalStage {
		sweep, err = secondary.BalanceOf(db, Vault)
		if err != nil {
			return nil, errors.Wrap(err, "secondary balance")
		}
		updated.SecondarySnapshot = safemath.EncodeAmount(sweep)
	}

	// Effects before interactions: the stage is marked executed before
	// any token is called.
	if err := h.state.Save(db, updated); err != nil {
		return nil, err
	}

	for i, p := range conf.Stages[stage].Payouts {
		amount, err := p.Value()
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d payout %d", stage, i)
		}
		if err := token.SafeTransfer(ctx, db, primary, Vault, p.Beneficiary, amount); err != nil {
			return nil, errors.Wrapf(err, "stage %d payout %d", stage, i)
		}
	}
	if sweep != nil {
		if err := token.SafeTransfer(ctx, db, secondary, Vault, conf.SweepBeneficiary(), sweep); err != nil {
			return nil, errors.Wrapf(err, "stage %d secondary sweep", stage)
		}
	}

	treasury.GetLogger(ctx).Info("stage executed", "stage", stage, "payouts", len(conf.Stages[stage].Payouts))
	return &treasury.DeliverResult{
		Log: "stage " + strconv.Itoa(int(stage)) + " executed",
		Tags: []common.KVPair{
			{Key: []byte(TagStage), Value: []byte(strconv.Itoa(int(stage)))},
		},
	}, nil
}
