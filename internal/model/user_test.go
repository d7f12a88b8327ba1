package model

import "testing"

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleUser) || !ValidRole(RoleAdmin) {
		t.Fatalf("built-in roles must validate")
	}
	for _, bogus := range []string{"superuser", "Admin", "", "root"} {
		if ValidRole(bogus) {
			t.Errorf("ValidRole(%q) = true, want false", bogus)
		}
	}
}
