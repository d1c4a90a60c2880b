// Package platform implements the marketplace-wide aggregate: the
// simulation clock the scheduler advances day by day, and the vintage
// profit ledger that accrues a commission plus a satisfaction fee on every
// item handover.
package platform
