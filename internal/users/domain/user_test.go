package domain

import "testing"

func TestIsValidRole(t *testing.T) {
	for _, r := range Roles() {
		if !IsValidRole(string(r)) {
			t.Errorf("IsValidRole(%q) = false", r)
		}
	}
	for _, bad := range []string{"", "sales_rep", "OWNER"} {
		if IsValidRole(bad) {
			t.Errorf("IsValidRole(%q) = true", bad)
		}
	}
}

func TestRolesReturnsCopy(t *testing.T) {
	got := Roles()
	got[0] = "MUTATED"
	if Roles()[0] != RoleSalesRep {
		t.Fatal("Roles() exposed the backing slice")
	}
}
