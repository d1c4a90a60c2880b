// Package services contains the domain services that span multiple
// aggregates: OrderSettler walks an order through handover and settlement,
// OrderReturner mirrors both steps back when a buyer returns an order.
package services
