package models

// Company is a row of the companies table.
type Company struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Code     string `db:"code"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// AccountType is a row of the account_types table. Category is free text.
type AccountType struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Category     string `db:"category"`
	DisplayOrder int    `db:"display_order"`
	AuditFields
}

// SubAccount is a row of the sub_accounts table.
type SubAccount struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	IsActive     bool   `db:"is_active"`
	DisplayOrder int    `db:"display_order"`
	AuditFields
}
