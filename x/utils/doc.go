/*
Package utils contains the decorators every treasury operation is wrapped
with: panic recovery, logging, metrics and the savepoint that makes an
operation all-or-nothing.
*/
package utils
