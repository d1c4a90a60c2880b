package item

import (
	"errors"

	"vintage/internal/core/domain/model/kernel"
)

// ErrOwnershipRecordIsNotConstructed is returned when an OwnershipRecord was
// not created through NewOwnershipRecord.
var ErrOwnershipRecordIsNotConstructed = errors.New("OwnershipRecord must be created via NewOwnershipRecord")

// OwnershipRecord is one entry of an item's ownership log: who owned the item
// before a handover and on which day the handover happened.
//
// The log is append-only and ordered. Resolving "who does this item return
// to" reads the last record, which gives the same answer a previous-owner
// stack would without mutating history.
type OwnershipRecord struct {
	ownerID kernel.UUID
	from    kernel.Date

	isConstructed bool
}

// NewOwnershipRecord creates a record for the owner relinquishing the item
// on the given day.
func NewOwnershipRecord(ownerID kernel.UUID, from kernel.Date) (OwnershipRecord, error) {
	if err := errors.Join(ownerID.Validate(), from.Validate()); err != nil {
		return OwnershipRecord{}, err
	}

	return OwnershipRecord{
		ownerID:       ownerID,
		from:          from,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was properly constructed.
func (r OwnershipRecord) Validate() error {
	if !r.isConstructed {
		return ErrOwnershipRecordIsNotConstructed
	}
	return nil
}

// OwnerID returns the previous owner recorded by this entry.
func (r OwnershipRecord) OwnerID() kernel.UUID {
	return r.ownerID
}

// From returns the day the previous owner handed the item over.
func (r OwnershipRecord) From() kernel.Date {
	return r.from
}
