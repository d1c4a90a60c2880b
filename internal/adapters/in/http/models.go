package http

import "github.com/google/uuid"

// Error is the uniform error payload returned by the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created carries the identifier of a newly created resource.
type Created struct {
	ID uuid.UUID `json:"id"`
}

// NewUser is the request body for registering a user.
type NewUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewCarrier is the request body for registering a carrier with its tier
// commission fractions.
type NewCarrier struct {
	Name      string  `json:"name"`
	TaxSmall  float64 `json:"taxSmall"`
	TaxMedium float64 `json:"taxMedium"`
	TaxBig    float64 `json:"taxBig"`
}

// NewItem is the request body for listing an item for sale.
type NewItem struct {
	SellerID       string  `json:"sellerId"`
	CarrierName    string  `json:"carrierName"`
	Description    string  `json:"description"`
	Brand          string  `json:"brand"`
	BasePrice      float64 `json:"basePrice"`
	Price          float64 `json:"price"`
	ConditionScore float64 `json:"conditionScore"`
}

// NewOrder is the request body for opening a pending order.
type NewOrder struct {
	BuyerID string   `json:"buyerId"`
	ItemIDs []string `json:"itemIds"`
}

// OrderItem is the request body for adding an item to a pending order.
type OrderItem struct {
	ItemID string `json:"itemId"`
}

// ClockTarget is the request body for advancing the simulation clock.
// Target uses the YYYY-MM-DD format.
type ClockTarget struct {
	Target string `json:"target"`
}

// Carrier is the read model of a registered carrier.
type Carrier struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	TaxSmall     float64   `json:"taxSmall"`
	TaxMedium    float64   `json:"taxMedium"`
	TaxBig       float64   `json:"taxBig"`
	TotalEarning float64   `json:"totalEarning"`
}

// Item is the read model of an item for sale.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Brand       string    `json:"brand,omitempty"`
	Price       float64   `json:"price"`
	CarrierName string    `json:"carrierName"`
}

// Order is the read model of an order that has not dispatched yet.
type Order struct {
	ID        uuid.UUID `json:"id"`
	BuyerID   uuid.UUID `json:"buyerId"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	TotalCost float64   `json:"totalCost"`
}

// Bill is the read model of a settled bill.
type Bill struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	OrderID   uuid.UUID `json:"orderId"`
	TotalCost float64   `json:"totalCost"`
	PortsTax  float64   `json:"portsTax"`
	Amount    float64   `json:"amount"`
}

// PlatformStatus is the read model of the simulation clock and profit.
type PlatformStatus struct {
	CurrentDate   string  `json:"currentDate"`
	VintageProfit float64 `json:"vintageProfit"`
}
