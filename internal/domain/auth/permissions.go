package auth

const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleAccountant = "accountant"
)

const (
	PermReportsRead      = "reports.read"
	PermReportsWrite     = "reports.write"
	PermAdjustmentsWrite = "adjustments.write"
	PermAccountingRead   = "accounting.read"
	PermRosterRead       = "roster.read"
	PermRosterWrite      = "roster.write"
	PermUsersManage      = "users.manage"
)

var DefaultPermissions = []string{
	PermReportsRead,
	PermReportsWrite,
	PermAdjustmentsWrite,
	PermAccountingRead,
	PermRosterRead,
	PermRosterWrite,
	PermUsersManage,
}

// RolePermissions maps each role onto its grants. Staff fill in the daily
// form; the accountant sees only the adjusted accounting view; admins do
// everything.
var RolePermissions = map[string][]string{
	RoleAdmin: {
		PermReportsRead,
		PermReportsWrite,
		PermAdjustmentsWrite,
		PermAccountingRead,
		PermRosterRead,
		PermRosterWrite,
		PermUsersManage,
	},
	RoleStaff: {
		PermReportsRead,
		PermReportsWrite,
		PermRosterRead,
	},
	RoleAccountant: {
		PermAccountingRead,
	},
}
