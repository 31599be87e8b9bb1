package user

type Permission string

const (
	// Creating and editing any record
	PermissionRecordsManage Permission = "records.manage"

	// Deleting any record
	PermissionRecordsDelete Permission = "records.delete"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionRecordsManage,
		PermissionRecordsDelete,
	},
	RoleSupervisor: {
		PermissionRecordsManage,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
