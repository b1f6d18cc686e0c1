package domain

// Operation names a guarded action as "resource:verb".
type Operation string

const (
	OpCompanyRead   Operation = "company:read"
	OpCompanySearch Operation = "company:search"
	OpCompanyCreate Operation = "company:create"
	OpCompanyUpdate Operation = "company:update"
	OpCompanyDelete Operation = "company:delete"

	OpDriverRead   Operation = "driver:read"
	OpDriverSearch Operation = "driver:search"
	OpDriverCreate Operation = "driver:create"
	OpDriverUpdate Operation = "driver:update"
	OpDriverDelete Operation = "driver:delete"

	OpUserList       Operation = "user:list"
	OpUserDelete     Operation = "user:delete"
	OpUserUpdateRole Operation = "user:update-role"
)
