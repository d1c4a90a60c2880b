// Package item models a second-hand article and its ownership history. The
// core reads only an item's prices, carrier, and condition score; what it
// owns is ownership: the current holder, the Listed/Held sale status, and an
// append-only ownership log that the return path unwinds one record at a
// time with LIFO semantics.
package item
