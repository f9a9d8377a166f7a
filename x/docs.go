/*
Package x contains the pieces shared by all treasury extensions.

Extensions implement the Handler for their messages and are combined
together by the app package. This package provides the authentication of
the caller and the authorization hook given to the extensions.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `sweep.RecoverTokenMsg` in place of
`sweep.SweepRecoverTokenMsg`.
*/
package x
