package treasury

import (
	"testing"

	"github.com/iov-one/treasury/errors"
)

type testMsg struct {
	Value string
	err   error
}

func (testMsg) Path() string      { return "test/msg" }
func (m testMsg) Validate() error { return m.err }

type otherMsg struct{}

func (otherMsg) Path() string    { return "test/other" }
func (otherMsg) Validate() error { return nil }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		want    string
		wantErr *errors.Error
	}{
		"pointer message": {
			tx:   NewTx(&testMsg{Value: "a"}),
			dest: &testMsg{},
			want: "a",
		},
		"value message": {
			tx:   NewTx(testMsg{Value: "b"}),
			dest: &testMsg{},
			want: "b",
		},
		"invalid message": {
			tx:      NewTx(&testMsg{Value: "c", err: errors.ErrAmount}),
			dest:    &testMsg{},
			want:    "c",
			wantErr: errors.ErrAmount,
		},
		"no message": {
			tx:      NewTx(nil),
			dest:    &testMsg{},
			wantErr: errors.ErrMsg,
		},
		"message error": {
			tx:      TxFunc(func() (Msg, error) { return nil, errors.ErrHuman }),
			dest:    &testMsg{},
			wantErr: errors.ErrHuman,
		},
		"destination is not a pointer": {
			tx:      NewTx(&testMsg{}),
			dest:    testMsg{},
			wantErr: errors.ErrType,
		},
		"destination of another type": {
			tx:      NewTx(&otherMsg{}),
			dest:    &testMsg{},
			wantErr: errors.ErrType,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if msg, ok := tc.dest.(*testMsg); ok && msg.Value != tc.want {
				t.Fatalf("want %q, got %q", tc.want, msg.Value)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	if got := GetPath(NewTx(&testMsg{})); got != "test/msg" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := GetPath(NewTx(nil)); got != "(missing)" {
		t.Fatalf("unexpected path %q", got)
	}
}
