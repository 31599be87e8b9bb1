package harvest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Process is one fruit delivery credited to a bracelet.
type Process struct {
	ID          int64
	BraceletID  string
	FruitAmount decimal.Decimal
	At          time.Time
}

type DailyTotals struct {
	Count      int64
	TotalFruit decimal.Decimal
}
