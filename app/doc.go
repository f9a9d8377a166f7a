/*
Package app contains the code that ties the extensions together into a
running treasury.

The Router dispatches a message to the Handler registered for its path.
ChainDecorators wraps the router with the common decorators, and the
Executor runs every operation, one at a time, against the store.
*/
package app
