package auth

import "testing"

func TestRolePermissionsSubset(t *testing.T) {
	allowed := map[string]struct{}{}
	for _, perm := range DefaultPermissions {
		allowed[perm] = struct{}{}
	}

	for role, perms := range RolePermissions {
		if len(perms) == 0 {
			t.Fatalf("role %s has no permissions", role)
		}
		for _, perm := range perms {
			if _, ok := allowed[perm]; !ok {
				t.Fatalf("role %s has unknown permission %s", role, perm)
			}
		}
	}
}

func TestAccountantIsAccountingOnly(t *testing.T) {
	perms := RolePermissions[RoleAccountant]
	if len(perms) != 1 || perms[0] != PermAccountingRead {
		t.Fatalf("accountant must only read accounting, got %v", perms)
	}
}

func TestStaffCannotAdjust(t *testing.T) {
	for _, perm := range RolePermissions[RoleStaff] {
		if perm == PermAdjustmentsWrite || perm == PermAccountingRead {
			t.Fatalf("staff must not hold %s", perm)
		}
	}
}
