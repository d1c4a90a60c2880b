// Package carrier implements the carrier earnings ledger: per-carrier
// commission rates in three fixed tiers (1 item, 2-5 items, more than 5) and
// the accumulated earnings they produce when orders settle.
//
// The ledger supports exact reversal of an accrual, including the boundary
// restatement applied when a reversal shrinks an order's batch below a tier
// boundary. The accumulated earnings only ever change through Accrue and
// Reverse so that a settlement followed by a return leaves the ledger where
// it started.
package carrier
