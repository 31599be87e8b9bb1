package company

import "time"

// Company is a client estate the crews work for, identified by its contract.
type Company struct {
	ID         int64
	Contract   string
	AwardedOn  time.Time
	WorkEndsOn *time.Time
	Documents  *string
}
