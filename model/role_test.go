package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{input: "viewer", expected: RoleViewer},
		{input: "Viewer", expected: RoleViewer},
		{input: "manager", expected: RoleManager},
		{input: "gm", expected: RoleManager},
		{input: "General Manager", expected: RoleManager},
		{input: "admin", expected: RoleAdmin},
		{input: " admin ", expected: RoleAdmin},
		{input: "owner", expected: RoleOwner},
		{input: "superuser", expected: RoleUnknown},
		{input: "", expected: RoleUnknown},
	}

	for _, tc := range tests {
		a := ParseRole(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestRoleInheritance(t *testing.T) {
	tests := []struct {
		role     Role
		required Role
		expected bool
	}{
		{role: RoleViewer, required: RoleViewer, expected: true},
		{role: RoleViewer, required: RoleManager, expected: false},
		{role: RoleManager, required: RoleViewer, expected: true},
		{role: RoleManager, required: RoleAdmin, expected: false},
		{role: RoleAdmin, required: RoleManager, expected: true},
		{role: RoleAdmin, required: RoleOwner, expected: false},
		{role: RoleOwner, required: RoleViewer, expected: true},
		{role: RoleOwner, required: RoleOwner, expected: true},
		{role: RoleUnknown, required: RoleViewer, expected: false},
	}

	for _, tc := range tests {
		if a := tc.role.HasRole(tc.required); a != tc.expected {
			t.Errorf("%s.HasRole(%s): expected %t, got %t", tc.role, tc.required, tc.expected, a)
		}
	}
}
