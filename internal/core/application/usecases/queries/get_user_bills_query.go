package queries

import (
	"errors"
	"fmt"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/pkg/guard"
)

var (
	ErrGetUserBillsQueryIsNotConstructed = errors.New(
		"GetUserBillsQuery must be created via NewGetUserBillsQuery constructor",
	)
)

// GetUserBillsQuery retrieves every bill addressed to one user, on both
// the bought and the sold side.
type GetUserBillsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserBillsQuery creates a query for a user's bills.
func NewGetUserBillsQuery(userID kernel.UUID) (GetUserBillsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserBillsQuery{}, fmt.Errorf("userID: %w", err)
	}

	return GetUserBillsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserBillsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserBillsQueryIsNotConstructed)
}

// UserID returns the user the bills are addressed to.
func (q GetUserBillsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserBillsQueryResponse represents one bill in the read model. Amount
// is the settled money: payout for sold bills, charge for bought ones.
type GetUserBillsQueryResponse struct {
	ID        kernel.UUID
	Kind      string
	OrderID   kernel.UUID
	TotalCost float64
	PortsTax  float64
	Amount    float64
}
