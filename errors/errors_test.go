package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrOverflow,
			b:      ErrUnderflow,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrDivideByZero,
			b:      Wrap(Wrap(ErrDivideByZero, "mod"), "ratio"),
			wantIs: true,
		},
		"comparison to a pkg/errors wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is not an error": {
			a:      nil,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"typed nil is nil": {
			a:      nil,
			b:      (*Error)(nil),
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
	if err := Wrapf(nil, "nothing %d", 1); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrapf(ErrInput, "stage %d", 3)
	if got, want := err.Error(), "stage 3: invalid input"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if full := fmt.Sprintf("%+v", err); !strings.Contains(full, "errors_test.go") {
		t.Fatalf("stack trace missing: %s", full)
	}
}

func TestCode(t *testing.T) {
	if got := Code(Wrap(ErrUnauthorized, "not the controller")); got != 2 {
		t.Fatalf("want code 2, got %d", got)
	}
	if got := Code(stdlib.New("plain")); got != 1 {
		t.Fatalf("want code 1, got %d", got)
	}
}

func TestRegisterDuplicateCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic")
		}
	}()
	Register(ErrNotFound.Code(), "again")
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	if err := run(); !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
}
