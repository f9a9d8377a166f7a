package app

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &treasurytest.Decorator{}
	c2 := &treasurytest.Decorator{}
	c3 := &treasurytest.Decorator{}
	h := &treasurytest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
		nil,
		c3,
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := treasury.NewTx(&treasurytest.Msg{})

	_, err := stack.Deliver(ctx, db, tx)
	assert.NoError(t, err)
	assert.Equal(t, 1, c1.CallCount())
	assert.Equal(t, 1, c2.CallCount())
	assert.Equal(t, 1, c3.CallCount())
	assert.Equal(t, 1, h.CallCount())

	// now, let's trigger a panic that is recovered below c1
	h.Panic = "boom"
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// a failing decorator stops the chain
	c2.DeliverErr = errors.ErrUnauthorized
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 3, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
}

func TestChainDoesNotShareBackingArray(t *testing.T) {
	base := ChainDecorators(&treasurytest.Decorator{})
	a := base.Chain(&treasurytest.Decorator{DeliverErr: errors.ErrState})
	b := base.Chain(&treasurytest.Decorator{})

	_, err := b.WithHandler(&treasurytest.Handler{}).Deliver(context.Background(), store.MemStore(), treasury.NewTx(&treasurytest.Msg{}))
	assert.NoError(t, err)
	_, err = a.WithHandler(&treasurytest.Handler{}).Deliver(context.Background(), store.MemStore(), treasury.NewTx(&treasurytest.Msg{}))
	assert.True(t, errors.ErrState.Is(err))
}
