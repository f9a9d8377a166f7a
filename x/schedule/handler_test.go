package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/safemath"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/x/token"
	"github.com/iov-one/treasury/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const week = 7 * 24 * time.Hour

type fixture struct {
	db            treasury.CacheableKVStore
	ledger        *token.Ledger
	state         *StateBucket
	conf          *Configuration
	beneficiaries []treasury.Address
}

func (f *fixture) balance(t testing.TB, tok, owner treasury.Address) uint64 {
	t.Helper()
	b, err := f.ledger.BalanceOf(f.db, tok, owner)
	require.NoError(t, err)
	return b.Uint64()
}

// newFixture deploys a schedule at treasurytest.Genesis with the vault
// holding given primary and secondary funds.
func newFixture(t testing.TB, primaryFunds, secondaryFunds uint64) *fixture {
	t.Helper()
	db := store.MemStore()
	ledger := token.NewLedger(token.NewRegistry())

	primary := treasurytest.NewAddress()
	secondary := treasurytest.NewAddress()
	require.NoError(t, ledger.Registry().Register(db, primary, &token.TokenInfo{Ticker: "PRIM"}))
	require.NoError(t, ledger.Registry().Register(db, secondary, &token.TokenInfo{Ticker: "SECD"}))
	require.NoError(t, ledger.Mint(db, primary, Vault, safemath.NewAmount(primaryFunds)))
	require.NoError(t, ledger.Mint(db, secondary, Vault, safemath.NewAmount(secondaryFunds)))

	bs := []treasury.Address{
		treasurytest.NewAddress(),
		treasurytest.NewAddress(),
		treasurytest.NewAddress(),
		treasurytest.NewAddress(),
	}
	conf := &Configuration{
		PrimaryToken:   primary,
		SecondaryToken: secondary,
		Beneficiaries:  bs,
		Stages: []*Stage{
			{Payouts: []*Payout{
				{Beneficiary: bs[0], Amount: "100"},
				{Beneficiary: bs[1], Amount: "200"},
				{Beneficiary: bs[2], Amount: "300"},
			}},
			{Payouts: []*Payout{
				{Beneficiary: bs[0], Amount: "10"},
				{Beneficiary: bs[3], Amount: "40"},
			}},
			{Payouts: []*Payout{
				{Beneficiary: bs[1], Amount: "20"},
			}},
			{Payouts: []*Payout{
				{Beneficiary: bs[2], Amount: "30"},
			}},
		},
		BootstrapInterval: 60,
		RecurringInterval: treasury.AsUnixDuration(week),
	}
	require.NoError(t, gconf.Save(db, confKey, conf))

	state := NewStateBucket()
	deployed := treasury.AsUnixTime(treasurytest.Genesis)
	require.NoError(t, state.Save(db, &State{LastClaimTime: deployed, DeploymentTime: deployed}))

	return &fixture{
		db:            db,
		ledger:        ledger,
		state:         state,
		conf:          conf,
		beneficiaries: bs,
	}
}

func (f *fixture) advance(at time.Duration) (*treasury.DeliverResult, error) {
	h := treasurytest.Decorate(NewAdvanceStageHandler(f.ledger, f.state), utils.NewSavepoint())
	return h.Deliver(treasurytest.CtxAt(at), f.db, treasury.NewTx(&AdvanceStageMsg{}))
}

func TestAdvanceStageTiming(t *testing.T) {
	f := newFixture(t, 10000, 5000)

	_, err := f.advance(30 * time.Second)
	require.True(t, ErrInsufficientInterval.Is(err), "got %+v", err)

	// The interval must be strictly exceeded.
	_, err = f.advance(60 * time.Second)
	require.True(t, ErrInsufficientInterval.Is(err), "got %+v", err)

	state, err := f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, state.StageCount)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis), state.LastClaimTime)
	assert.EqualValues(t, 10000, f.balance(t, f.conf.PrimaryToken, Vault))

	res, err := f.advance(61 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "stage 0 executed", res.Log)
	assert.Equal(t, []byte(TagStage), res.Tags[0].Key)
	assert.Equal(t, []byte("0"), res.Tags[0].Value)

	state, err = f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, state.StageCount)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis.Add(61*time.Second)), state.LastClaimTime)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis), state.DeploymentTime)

	primary := f.conf.PrimaryToken
	assert.EqualValues(t, 100, f.balance(t, primary, f.beneficiaries[0]))
	assert.EqualValues(t, 200, f.balance(t, primary, f.beneficiaries[1]))
	assert.EqualValues(t, 300, f.balance(t, primary, f.beneficiaries[2]))
	assert.EqualValues(t, 0, f.balance(t, primary, f.beneficiaries[3]))
	assert.EqualValues(t, 9400, f.balance(t, primary, Vault))

	// The recurring interval is counted from the last claim.
	_, err = f.advance(62 * time.Second)
	require.True(t, ErrInsufficientInterval.Is(err), "got %+v", err)
	_, err = f.advance(61*time.Second + week)
	require.True(t, ErrInsufficientInterval.Is(err), "got %+v", err)

	state, err = f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, state.StageCount)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis.Add(61*time.Second)), state.LastClaimTime)
	assert.EqualValues(t, 9400, f.balance(t, primary, Vault))

	_, err = f.advance(61*time.Second + week + time.Second)
	require.NoError(t, err)
	state, err = f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, state.StageCount)
	assert.EqualValues(t, 110, f.balance(t, primary, f.beneficiaries[0]))
	assert.EqualValues(t, 40, f.balance(t, primary, f.beneficiaries[3]))
}

func TestAdvanceStageSweep(t *testing.T) {
	cases := map[string]struct {
		secondary uint64
	}{
		"secondary funds are swept": {secondary: 5000},
		"nothing to sweep":          {secondary: 0},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, 10000, tc.secondary)

			at := 61 * time.Second
			for i := 0; i < StageCount; i++ {
				_, err := f.advance(at)
				require.NoError(t, err, "stage %d", i)
				at += week + time.Second
			}

			state, err := f.state.Get(f.db)
			require.NoError(t, err)
			assert.EqualValues(t, StageCount, state.StageCount)
			assert.True(t, state.Exhausted())
			assert.Equal(t, tc.secondary, state.Snapshot().Uint64())

			secondary := f.conf.SecondaryToken
			assert.EqualValues(t, tc.secondary, f.balance(t, secondary, f.beneficiaries[3]))
			assert.EqualValues(t, 0, f.balance(t, secondary, Vault))
			assert.EqualValues(t, 330, f.balance(t, f.conf.PrimaryToken, f.beneficiaries[2]))

			_, err = f.advance(at + 365*24*time.Hour)
			require.True(t, ErrStageExhausted.Is(err), "got %+v", err)

			_, err = NextClaimTime(f.conf, state)
			require.True(t, ErrStageExhausted.Is(err), "got %+v", err)
		})
	}
}

func TestAdvanceStageIsAtomic(t *testing.T) {
	// The vault can cover the first payout of the first stage only.
	f := newFixture(t, 150, 0)

	_, err := f.advance(61 * time.Second)
	require.True(t, token.ErrTransferFailed.Is(err), "got %+v", err)

	state, err := f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, state.StageCount)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis), state.LastClaimTime)

	assert.EqualValues(t, 0, f.balance(t, f.conf.PrimaryToken, f.beneficiaries[0]))
	assert.EqualValues(t, 150, f.balance(t, f.conf.PrimaryToken, Vault))
}

// failingTokens declines every transfer after the first few.
type failingTokens struct {
	token.Tokens
	allowed int
}

func (f *failingTokens) Token(addr treasury.Address) token.Token {
	return &failingToken{Token: f.Tokens.Token(addr), parent: f}
}

type failingToken struct {
	token.Token
	parent *failingTokens
}

func (f *failingToken) Transfer(ctx treasury.Context, db treasury.KVStore, from, to treasury.Address, amount *uint256.Int) (bool, error) {
	if f.parent.allowed == 0 {
		return false, errors.Wrap(errors.ErrHuman, "token failure")
	}
	f.parent.allowed--
	return f.Token.Transfer(ctx, db, from, to, amount)
}

func TestAdvanceStageRevertsOnTokenError(t *testing.T) {
	f := newFixture(t, 10000, 0)
	tokens := &failingTokens{Tokens: f.ledger, allowed: 2}
	h := utils.NewSavepoint()

	_, err := h.Deliver(treasurytest.CtxAt(61*time.Second), f.db, treasury.NewTx(&AdvanceStageMsg{}), NewAdvanceStageHandler(tokens, f.state))
	require.True(t, errors.ErrHuman.Is(err), "got %+v", err)

	state, err := f.state.Get(f.db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, state.StageCount)
	assert.EqualValues(t, 0, f.balance(t, f.conf.PrimaryToken, f.beneficiaries[0]))
	assert.EqualValues(t, 0, f.balance(t, f.conf.PrimaryToken, f.beneficiaries[1]))
	assert.EqualValues(t, 10000, f.balance(t, f.conf.PrimaryToken, Vault))
}

func TestStageCountNeverDecreases(t *testing.T) {
	f := newFixture(t, 10000, 100)

	var last uint32
	at := time.Duration(0)
	for i := 0; i < 40; i++ {
		at += 3 * 24 * time.Hour
		_, _ = f.advance(at)
		state, err := f.state.Get(f.db)
		require.NoError(t, err)
		require.True(t, state.StageCount >= last, "stage went from %d to %d", last, state.StageCount)
		require.True(t, state.StageCount <= StageCount)
		last = state.StageCount
	}
	assert.EqualValues(t, StageCount, last)
}

func TestClockGoingBackwards(t *testing.T) {
	f := newFixture(t, 10000, 0)
	_, err := f.advance(-time.Hour)
	require.True(t, errors.ErrUnderflow.Is(err), "got %+v", err)
}

func TestNextClaimTime(t *testing.T) {
	f := newFixture(t, 10000, 0)
	state, err := f.state.Get(f.db)
	require.NoError(t, err)

	next, err := NextClaimTime(f.conf, state)
	require.NoError(t, err)
	assert.Equal(t, treasury.AsUnixTime(treasurytest.Genesis.Add(61*time.Second)), next)

	_, err = f.advance(next.Time().Sub(treasurytest.Genesis))
	require.NoError(t, err)

	// No representable time ends an unbounded interval.
	conf := *f.conf
	conf.BootstrapInterval = math.MaxInt64
	_, err = NextClaimTime(&conf, &State{LastClaimTime: state.LastClaimTime})
	require.True(t, errors.ErrOverflow.Is(err), "got %+v", err)

	conf.BootstrapInterval = treasury.UnixDuration(math.MaxInt64 - state.LastClaimTime)
	_, err = NextClaimTime(&conf, &State{LastClaimTime: state.LastClaimTime})
	require.True(t, errors.ErrOverflow.Is(err), "got %+v", err)
}

func TestGenesis(t *testing.T) {
	bs := []string{
		treasurytest.NewAddress().String(),
		treasurytest.NewAddress().String(),
		treasurytest.NewAddress().String(),
		treasurytest.NewAddress().String(),
	}
	primary := treasurytest.NewAddress().String()
	secondary := treasurytest.NewAddress().String()
	stages := `[
		{"payouts": [{"beneficiary": "` + bs[0] + `", "amount": "1000"}]},
		{"payouts": [{"beneficiary": "` + bs[1] + `", "amount": "1000"}]},
		{"payouts": []},
		{"payouts": [{"beneficiary": "` + bs[3] + `", "amount": "1"}]}
	]`
	valid := `{
		"primary_token": "` + primary + `",
		"secondary_token": "` + secondary + `",
		"beneficiaries": ["` + bs[0] + `", "` + bs[1] + `", "` + bs[2] + `", "` + bs[3] + `"],
		"stages": ` + stages + `,
		"bootstrap_interval": "1m",
		"recurring_interval": 604800
	}`
	three := `{
		"primary_token": "` + primary + `",
		"secondary_token": "` + secondary + `",
		"beneficiaries": ["` + bs[0] + `", "` + bs[1] + `", "` + bs[2] + `"],
		"stages": ` + stages + `,
		"bootstrap_interval": 60,
		"recurring_interval": 604800
	}`

	cases := map[string]struct {
		conf    string
		wantErr *errors.Error
	}{
		"valid":                 {conf: valid},
		"three beneficiaries":   {conf: three, wantErr: errors.ErrModel},
		"missing configuration": {conf: "", wantErr: errors.ErrNotFound},
		"malformed beneficiary": {conf: `{"beneficiaries": ["zz"]}`, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			opts := treasury.Options{}
			if tc.conf != "" {
				opts["conf"] = []byte(`{"schedule": ` + tc.conf + `}`)
			}
			b := NewStateBucket()
			deployed := treasury.AsUnixTime(treasurytest.Genesis)
			err := (&Initializer{State: b}).FromGenesis(opts, treasury.GenesisParams{Time: deployed}, db)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "want %s, got %+v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)

			state, err := b.Get(db)
			require.NoError(t, err)
			assert.EqualValues(t, 0, state.StageCount)
			assert.Equal(t, deployed, state.LastClaimTime)
			at, err := b.DeployedAt(db)
			require.NoError(t, err)
			assert.Equal(t, deployed, at)

			conf, err := LoadConfiguration(db)
			require.NoError(t, err)
			assert.EqualValues(t, 60, conf.BootstrapInterval)
			assert.Equal(t, bs[3], conf.SweepBeneficiary().String())
		})
	}
}

func TestConfigurationValidate(t *testing.T) {
	f := newFixture(t, 0, 0)
	require.NoError(t, f.conf.Validate())

	stranger := *f.conf
	stranger.Stages = []*Stage{
		{Payouts: []*Payout{{Beneficiary: treasurytest.NewAddress(), Amount: "1"}}},
		{}, {}, {},
	}
	assert.True(t, errors.ErrModel.Is(stranger.Validate()))

	same := *f.conf
	same.SecondaryToken = same.PrimaryToken
	assert.True(t, errors.ErrModel.Is(same.Validate()))

	short := *f.conf
	short.Stages = short.Stages[:3]
	assert.True(t, errors.ErrModel.Is(short.Validate()))

	negative := *f.conf
	negative.Stages = []*Stage{
		{Payouts: []*Payout{{Beneficiary: f.beneficiaries[0], Amount: "-1"}}},
		{}, {}, {},
	}
	assert.Error(t, negative.Validate())
}
