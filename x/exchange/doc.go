/*
Package exchange implements a constant product exchange the treasury routes
its swaps through.

Every pair of tokens holds its liquidity on a dedicated pair address and
keeps the reserves last observed. A swap input is the difference between
the pair balance and its reserve, so tokens charging a fee on transfer are
priced by the amount the pair actually received. Each swap charges 0.3% of
the input.

The native asset is traded through a wrapped native token. The native
funds backing the wrapped supply are held by the wrapped token address.
*/
package exchange
