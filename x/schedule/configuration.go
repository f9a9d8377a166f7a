package schedule

import (
	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/safemath"
)

const (
	// StageCount is the number of stages of the schedule.
	StageCount = 4
	// FinalStage is the index of the last stage, the one sweeping the
	// secondary token.
	FinalStage = StageCount - 1
	// BeneficiaryCount is the number of beneficiaries.
	BeneficiaryCount = 4

	confKey = "schedule"
)

// Vault is the address holding the treasury funds. No key controls it.
var Vault = treasury.NewCondition("schedule", "vault", []byte("treasury")).Address()

// Configuration is the immutable stage table and timing of the schedule.
type Configuration struct {
	PrimaryToken   treasury.Address `protobuf:"bytes,1,opt,name=primary_token,json=primaryToken,proto3,casttype=github.com/iov-one/treasury.Address" json:"primary_token,omitempty"`
	SecondaryToken treasury.Address `protobuf:"bytes,2,opt,name=secondary_token,json=secondaryToken,proto3,casttype=github.com/iov-one/treasury.Address" json:"secondary_token,omitempty"`
	// Beneficiaries are the only recipients of the payouts. The last one
	// receives the secondary token sweep.
	Beneficiaries []treasury.Address `protobuf:"bytes,3,rep,name=beneficiaries,proto3,casttype=github.com/iov-one/treasury.Address" json:"beneficiaries,omitempty"`
	Stages        []*Stage           `protobuf:"bytes,4,rep,name=stages,proto3" json:"stages,omitempty"`
	// BootstrapInterval must elapse between the deployment and the first
	// stage.
	BootstrapInterval treasury.UnixDuration `protobuf:"varint,5,opt,name=bootstrap_interval,json=bootstrapInterval,proto3,casttype=github.com/iov-one/treasury.UnixDuration" json:"bootstrap_interval,omitempty"`
	// RecurringInterval must elapse between two consecutive stages.
	RecurringInterval treasury.UnixDuration `protobuf:"varint,6,opt,name=recurring_interval,json=recurringInterval,proto3,casttype=github.com/iov-one/treasury.UnixDuration" json:"recurring_interval,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// Stage is the list of primary token payouts of a single stage.
type Stage struct {
	Payouts []*Payout `protobuf:"bytes,1,rep,name=payouts,proto3" json:"payouts,omitempty"`
}

func (m *Stage) Reset()         { *m = Stage{} }
func (m *Stage) String() string { return proto.CompactTextString(m) }
func (*Stage) ProtoMessage()    {}

// Payout is a fixed amount of the primary token sent to a beneficiary.
type Payout struct {
	Beneficiary treasury.Address `protobuf:"bytes,1,opt,name=beneficiary,proto3,casttype=github.com/iov-one/treasury.Address" json:"beneficiary,omitempty"`
	// Amount is a decimal representation of the amount.
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Payout) Reset()         { *m = Payout{} }
func (m *Payout) String() string { return proto.CompactTextString(m) }
func (*Payout) ProtoMessage()    {}

// Value returns the payout amount.
func (m *Payout) Value() (*uint256.Int, error) {
	return safemath.ParseAmount(m.Amount)
}

// Validate ensures the configuration describes a complete schedule.
func (m *Configuration) Validate() error {
	if err := m.PrimaryToken.Validate(); err != nil {
		return errors.Wrap(err, "primary token")
	}
	if err := m.SecondaryToken.Validate(); err != nil {
		return errors.Wrap(err, "secondary token")
	}
	if m.PrimaryToken.Equals(m.SecondaryToken) {
		return errors.Wrap(errors.ErrModel, "primary and secondary token must differ")
	}
	if len(m.Beneficiaries) != BeneficiaryCount {
		return errors.Wrapf(errors.ErrModel, "%d beneficiaries required, got %d", BeneficiaryCount, len(m.Beneficiaries))
	}
	for i, b := range m.Beneficiaries {
		if err := b.Validate(); err != nil {
			return errors.Wrapf(err, "beneficiary %d", i)
		}
	}
	if len(m.Stages) != StageCount {
		return errors.Wrapf(errors.ErrModel, "%d stages required, got %d", StageCount, len(m.Stages))
	}
	for i, s := range m.Stages {
		if s == nil {
			return errors.Wrapf(errors.ErrModel, "stage %d is empty", i)
		}
		for j, p := range s.Payouts {
			if p == nil {
				return errors.Wrapf(errors.ErrModel, "stage %d payout %d is empty", i, j)
			}
			if !m.isBeneficiary(p.Beneficiary) {
				return errors.Wrapf(errors.ErrModel, "stage %d payout %d: %s is not a beneficiary", i, j, p.Beneficiary)
			}
			if _, err := p.Value(); err != nil {
				return errors.Wrapf(err, "stage %d payout %d", i, j)
			}
		}
	}
	if err := m.BootstrapInterval.Validate(); err != nil {
		return errors.Wrap(err, "bootstrap interval")
	}
	if err := m.RecurringInterval.Validate(); err != nil {
		return errors.Wrap(err, "recurring interval")
	}
	return nil
}

func (m *Configuration) isBeneficiary(addr treasury.Address) bool {
	for _, b := range m.Beneficiaries {
		if b.Equals(addr) {
			return true
		}
	}
	return false
}

// RequiredInterval returns the time that must elapse since the last claim
// before given stage can be executed.
func (m *Configuration) RequiredInterval(stage uint32) treasury.UnixDuration {
	if stage == 0 {
		return m.BootstrapInterval
	}
	return m.RecurringInterval
}

// SweepBeneficiary returns the recipient of the secondary token sweep.
func (m *Configuration) SweepBeneficiary() treasury.Address {
	return m.Beneficiaries[BeneficiaryCount-1]
}

// LoadConfiguration returns the schedule configuration stored at genesis.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
