package schedule

import (
	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
	"github.com/iov-one/treasury/safemath"
)

// State is the progress of the schedule.
type State struct {
	// StageCount is the number of executed stages. It is also the index
	// of the next stage to execute.
	StageCount uint32 `protobuf:"varint,1,opt,name=stage_count,json=stageCount,proto3" json:"stage_count,omitempty"`
	// LastClaimTime is the time of the last stage execution, or the
	// deployment time if no stage was executed yet.
	LastClaimTime  treasury.UnixTime `protobuf:"varint,2,opt,name=last_claim_time,json=lastClaimTime,proto3,casttype=github.com/iov-one/treasury.UnixTime" json:"last_claim_time,omitempty"`
	DeploymentTime treasury.UnixTime `protobuf:"varint,3,opt,name=deployment_time,json=deploymentTime,proto3,casttype=github.com/iov-one/treasury.UnixTime" json:"deployment_time,omitempty"`
	// SecondarySnapshot is the secondary token balance swept during the
	// final stage. Empty until the final stage is executed.
	SecondarySnapshot []byte `protobuf:"bytes,4,opt,name=secondary_snapshot,json=secondarySnapshot,proto3" json:"secondary_snapshot,omitempty"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

// Validate ensures the state is consistent.
func (m *State) Validate() error {
	if m.StageCount > StageCount {
		return errors.Wrapf(errors.ErrState, "stage count %d above %d", m.StageCount, StageCount)
	}
	if err := m.DeploymentTime.Validate(); err != nil {
		return errors.Wrap(err, "deployment time")
	}
	if m.LastClaimTime < m.DeploymentTime {
		return errors.Wrap(errors.ErrState, "last claim before deployment")
	}
	if _, err := safemath.DecodeAmount(m.SecondarySnapshot); err != nil {
		return errors.Wrap(err, "secondary snapshot")
	}
	return nil
}

// Exhausted returns true if all stages were executed.
func (m *State) Exhausted() bool {
	return m.StageCount >= StageCount
}

// Snapshot returns the secondary token balance swept during the final
// stage, zero if it was not executed yet.
func (m *State) Snapshot() *uint256.Int {
	amount, err := safemath.DecodeAmount(m.SecondarySnapshot)
	if err != nil {
		// Validated before the state was stored.
		panic(err)
	}
	return amount
}

var stateKey = []byte("state")

// StateBucket stores the schedule state singleton.
type StateBucket struct {
	orm.ModelBucket
}

// NewStateBucket returns a bucket for the schedule state.
func NewStateBucket() *StateBucket {
	return &StateBucket{ModelBucket: orm.NewModelBucket("schedule", &State{})}
}

// Get returns the current state of the schedule.
func (b *StateBucket) Get(db treasury.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := b.One(db, stateKey, &s); err != nil {
		return nil, errors.Wrap(err, "schedule state")
	}
	return &s, nil
}

// Save replaces the state of the schedule.
func (b *StateBucket) Save(db treasury.KVStore, s *State) error {
	if err := b.Put(db, stateKey, s); err != nil {
		return errors.Wrap(err, "schedule state")
	}
	return nil
}

// DeployedAt returns the deployment time of the treasury.
func (b *StateBucket) DeployedAt(db treasury.ReadOnlyKVStore) (treasury.UnixTime, error) {
	s, err := b.Get(db)
	if err != nil {
		return 0, err
	}
	return s.DeploymentTime, nil
}

// NextClaimTime returns the earliest time at which the next stage can be
// executed. The interval must be strictly exceeded, so this is one second
// past the interval end.
func NextClaimTime(conf *Configuration, s *State) (treasury.UnixTime, error) {
	if s.Exhausted() {
		return 0, errors.Wrap(ErrStageExhausted, "no next stage")
	}
	end, err := safemath.AddTime(s.LastClaimTime, conf.RequiredInterval(s.StageCount))
	if err != nil {
		return 0, errors.Wrap(err, "interval end")
	}
	next, err := safemath.AddTime(end, 1)
	if err != nil {
		return 0, errors.Wrap(err, "interval end")
	}
	return next, nil
}
