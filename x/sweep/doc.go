/*
Package sweep allows the controller to recover assets sent to the treasury
vault by mistake.

Recovery of the two tracked tokens, the ones distributed by the schedule,
is barred until the admin lockup elapsed since the deployment. Any other
token and the native asset can be recovered at any time.

Tokens that do not report the result of a transfer are recovered with
RecoverLegacyTokenMsg. Such a recovery cannot fail because the token
declined the transfer: a declined transfer is indistinguishable from a
successful one.
*/
package sweep
