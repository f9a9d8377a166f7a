/*
Package treasury defines the interfaces used throughout the staged treasury:
storage, messages, handlers and decorators. It also contains helpers to work
with addresses, time and the execution context.

Every operation of the treasury is a Msg routed to a Handler. Handlers run
against a KVStore that is wrapped in a cache for the duration of a single
operation, so that a failure anywhere discards every write the operation
attempted. Extensions living under x/ implement the handlers; app/ wires
them together.
*/
package treasury
