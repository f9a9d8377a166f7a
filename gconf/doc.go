/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension keeps a single configuration object. It is loaded from the
genesis file (`opts["conf"][pkg]`), validated and stored under a key that
is unique for the package. Handlers load it on every call.
*/
package gconf
