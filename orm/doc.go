/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object. Every object is a
protobuf message that knows how to validate itself. Buckets take care
of the serialization, so that extensions can work on the models
directly.
*/
package orm
