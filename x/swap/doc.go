/*
Package swap allows the controller to convert primary tokens held by the
treasury vault into another token.

A swap always takes two legs through the exchange. SwapViaNativeMsg sells
the primary token for the native asset and then spends the whole native
balance of the vault on the target token. SwapViaStableMsg does the same
through the configured stable token. Each leg is bounded by a fixed
minimum output and a deadline a fixed offset from now. Proceeds land in the
vault.

If any leg fails, the whole operation fails.
*/
package swap
