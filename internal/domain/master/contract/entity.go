package contract

import "time"

// Contract is a document signed with a contractor.
type Contract struct {
	ID             int64
	ContractorID   int64
	Document       string
	Date           time.Time
	Documentation  *string
	ContractorName *string
}
