/*
Package token implements the fungible tokens the treasury holds.

Two capabilities are exposed. A Token reports the result of every
transfer, a LegacyToken does not: a declined legacy transfer is
indistinguishable from a successful one. The types are distinct so that a
caller cannot use one in place of the other.

The Ledger keeps balances and allowances of every registered token in the
store, including the native asset of the environment. A token may charge a
fee on every transfer, in which case the recipient receives less than the
amount sent.
*/
package token
