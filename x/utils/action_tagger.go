package utils

import (
	"github.com/iov-one/treasury"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key under which ActionTagger records the route of a
// successful transaction.
const ActionKey = "action"

// ActionTagger appends an ActionKey tag holding the message path to every
// successful result, so observers can search for one kind of operation,
// for example every stage advance.
type ActionTagger struct{}

var _ treasury.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Handler) (*treasury.DeliverResult, error) {
	// Reject an undecodable transaction before any handler runs.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = &treasury.DeliverResult{}
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	})
	return res, nil
}
