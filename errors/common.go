package errors

// Root errors shared by all extensions. Extension specific failures are
// registered by the extension itself, using codes from its own range.
var (
	// ErrUnauthorized is used whenever a request without sufficient
	// authorization is handled.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested operation cannot be completed
	// due to missing data.
	ErrNotFound = Register(3, "not found")

	// ErrMsg is returned whenever a message is invalid and cannot be
	// handled.
	ErrMsg = Register(4, "invalid message")

	// ErrModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate is returned when there is a record already that has
	// the same unique key.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman is returned when application reaches a code path which
	// should not ever be reached if the code was written as expected.
	ErrHuman = Register(7, "coding error")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an object is in invalid state.
	ErrState = Register(10, "invalid state")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(11, "invalid type")

	// ErrAmount stands for invalid amount of whatever.
	ErrAmount = Register(13, "invalid amount")

	// ErrInput stands for general input problems indication.
	ErrInput = Register(14, "invalid input")

	// ErrExpired stands for expired entities, normally has to do with
	// deadlines.
	ErrExpired = Register(15, "expired")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result value exceeds the type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned in case of a storage failure.
	ErrDatabase = Register(17, "database")

	// ErrUnderflow is returned when a subtraction result would be
	// negative.
	ErrUnderflow = Register(18, "an operation cannot be completed due to value underflow")

	// ErrDivideByZero is returned when a division or modulo has a zero
	// divisor.
	ErrDivideByZero = Register(19, "division by zero")

	// ErrInvalidAddress is returned when an address is empty or does not
	// have the expected length.
	ErrInvalidAddress = Register(20, "invalid address")

	// ErrReentrant is returned when an operation is started while
	// another one is still executing on the same call stack.
	ErrReentrant = Register(21, "reentrant call")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)
