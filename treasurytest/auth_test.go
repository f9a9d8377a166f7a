package treasurytest

import (
	"context"
	"testing"
)

func TestCtxAuth(t *testing.T) {
	a := NewAddress()
	b := NewAddress()

	auth1 := &CtxAuth{Key: "one"}
	auth2 := &CtxAuth{Key: "two"}

	ctx := auth1.SetAddresses(context.Background(), a)
	if !auth1.HasAddress(ctx, a) {
		t.Fatal("a must be authenticated")
	}
	if auth1.HasAddress(ctx, b) {
		t.Fatal("b must not be authenticated")
	}
	if auth2.HasAddress(ctx, a) {
		t.Fatal("different key must not see the address")
	}
}

func TestNewConditionUnique(t *testing.T) {
	a, b := NewCondition(), NewCondition()
	if a.Equals(b) {
		t.Fatal("conditions must be unique")
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("invalid condition: %s", err)
	}
	if err := a.Address().Validate(); err != nil {
		t.Fatalf("invalid address: %s", err)
	}
}
