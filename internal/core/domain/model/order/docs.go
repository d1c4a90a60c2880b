// Package order implements the order aggregate and its lifecycle state
// machine (Pending -> Finished -> Dispatched). An order is composed of item
// snapshots and maintains the running aggregates commission math depends on:
// per-carrier item counts, the total item price, the satisfaction surcharge,
// and the distinct seller set.
package order
