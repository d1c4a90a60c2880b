package order

// Size classifies an order by item count, aligned with the commission tier
// boundaries. It is informational only: billing math never reads it.
type Size int

const (
	// Little is an order with at most one item.
	Little Size = iota

	// Medium is an order with 2 to 5 items.
	Medium

	// Big is an order with more than 5 items.
	Big
)

// SizeFor returns the classification for an order of n items.
func SizeFor(n int) Size {
	switch {
	case n <= 1:
		return Little
	case n <= 5:
		return Medium
	default:
		return Big
	}
}

// String returns the human-readable name of the size.
func (s Size) String() string {
	switch s {
	case Little:
		return "Little"
	case Medium:
		return "Medium"
	case Big:
		return "Big"
	default:
		return "Unknown"
	}
}
