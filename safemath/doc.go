/*
Package safemath implements checked integer arithmetic.

Token amounts are unsigned 256 bit integers (uint256.Int) and every
operation that would wrap around returns an error instead. Time values are
computed with the 64 bit variants. No other package performs raw arithmetic
on amounts or times.

Functions never modify their arguments and always return a newly allocated
result.
*/
package safemath
