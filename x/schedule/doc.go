/*
Package schedule implements the staged distribution of the treasury funds.

The treasury releases the primary token to a fixed set of four
beneficiaries across four ordered stages. A stage can be executed only
after enough time passed since the previous one: a short bootstrap
interval before the first stage, a longer recurring interval before every
next one. The final stage additionally sweeps the whole secondary token
balance to the fourth beneficiary.

Anyone can advance the schedule. A stage is executed completely or not at
all.
*/
package schedule
