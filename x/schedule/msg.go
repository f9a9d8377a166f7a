package schedule

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
)

var _ treasury.Msg = (*AdvanceStageMsg)(nil)

// AdvanceStageMsg executes the next stage of the schedule. It carries no
// data, the stage table is fixed.
type AdvanceStageMsg struct{}

func (m *AdvanceStageMsg) Reset()         { *m = AdvanceStageMsg{} }
func (m *AdvanceStageMsg) String() string { return proto.CompactTextString(m) }
func (*AdvanceStageMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (AdvanceStageMsg) Path() string {
	return "schedule/advance"
}

// Validate always succeeds.
func (*AdvanceStageMsg) Validate() error {
	return nil
}
