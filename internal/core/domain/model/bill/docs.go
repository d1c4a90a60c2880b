// Package bill implements the billing records produced when an order
// settles: one Bought bill for the buyer, covering every item plus the
// shipping tax, and one Sold bill per distinct seller, covering that
// seller's items minus the platform's cut.
//
// The shipping tax on a Bought bill accrues per line at the carrier's rate
// for the order's batch size, IVA included, applied to base prices. Removing
// a line across a tier boundary restates the remaining tax at the lower
// tier's rate, mirroring the carrier ledger's reversal arithmetic.
package bill
