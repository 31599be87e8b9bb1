package quarter

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quarter is an orchard block of a company with the fruit harvested on a date.
type Quarter struct {
	ID          int64
	CompanyID   int64
	FruitType   string
	FruitAmount decimal.Decimal
	Date        time.Time
	CompanyName *string
}

// Filter narrows PDF exports. From/To apply only when both are set.
type Filter struct {
	CompanyID *int64
	From      *time.Time
	To        *time.Time
}
