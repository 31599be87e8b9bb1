package crew

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member is a bracelet assigned to a crew together with the fruit it picked.
type Member struct {
	ID          int64
	CrewID      int64
	BraceletID  string
	FruitAmount decimal.Decimal
	WorkerName  *string
	CrewName    *string
}

// Task is a work item scheduled for a crew on a date.
type Task struct {
	ID       int64
	CrewID   int64
	WorkID   int64
	Date     time.Time
	WorkName *string
	WorkType *string
}

// Work is a catalogued work item as shown on a crew summary.
type Work struct {
	ID    int64
	Name  string
	Type  *string
	Value *decimal.Decimal
}

// Worker is a crew member resolved to the worker holding the bracelet.
type Worker struct {
	MemberID    int64
	WorkerID    int64
	Names       string
	Role        string
	BraceletID  string
	FruitAmount decimal.Decimal
}

type Summary struct {
	CrewID  int64
	Date    time.Time
	Works   []Work
	Workers []Worker
}

// TotalFruit adds up the fruit of every worker in the summary.
func (s Summary) TotalFruit() decimal.Decimal {
	total := decimal.Zero
	for _, w := range s.Workers {
		total = total.Add(w.FruitAmount)
	}
	return total
}
