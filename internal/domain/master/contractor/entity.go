package contractor

type Contractor struct {
	ID          int64
	LegalName   string
	CompanyID   int64
	UserID      int64
	CompanyName *string // contrato of the linked company, only on listings
	UserName    *string
}
