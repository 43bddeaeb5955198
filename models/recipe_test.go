package models

import "testing"

func TestValidAccessType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"admin", AccessTypeAdmin, true},
		{"all", AccessTypeAll, true},
		{"by-plan", AccessTypeByPlan, true},
		{"selected-users", AccessTypeSelectedUsers, true},
		{"unknown", "everyone", false},
		{"empty", "", false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidAccessType(tt.value); got != tt.want {
				t.Fatalf("ValidAccessType(%q) = %t, want %t", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeAccessType(t *testing.T) {
	t.Parallel()

	if got := NormalizeAccessType("  By-Plan "); got != AccessTypeByPlan {
		t.Fatalf("NormalizeAccessType returned %q, want %q", got, AccessTypeByPlan)
	}

	if got := NormalizeAccessType("galaxy"); got != DefaultAccessType {
		t.Fatalf("NormalizeAccessType returned %q, want %q", got, DefaultAccessType)
	}
}

func TestUserIsAdmin(t *testing.T) {
	t.Parallel()

	if !(User{Role: "Admin"}).IsAdmin() {
		t.Fatal("expected case-insensitive admin role to be recognised")
	}
	if (User{Role: RoleUser}).IsAdmin() {
		t.Fatal("did not expect regular role to be admin")
	}
}
