package models

import "testing"

func TestParseTimeSlot(t *testing.T) {
	valid := []string{
		"08.00 - 09.00", "08.00 - 10.00",
		"09.00 - 10.00", "09.00 - 11.00",
		"10.00 - 11.00", "10.00 - 12.00",
		"11.00 - 12.00", "11.00 - 13.00",
		"12.00 - 13.00", "12.00 - 14.00",
		"13.00 - 14.00", "13.00 - 15.00",
		"14.00 - 15.00", "14.00 - 16.00",
		"15.00 - 16.00", "15.00 - 17.00",
		"16.00 - 17.00", "16.00 - 18.00",
		"17.00 - 18.00", "17.00 - 19.00",
		"18.00 - 19.00",
	}
	for _, s := range valid {
		slot, err := ParseTimeSlot(s)
		if err != nil {
			t.Errorf("ParseTimeSlot(%q): %v", s, err)
		}
		if string(slot) != s {
			t.Errorf("ParseTimeSlot(%q) = %q", s, slot)
		}
	}

	invalid := []string{
		"07.00 - 08.00", // before opening
		"19.00 - 20.00", // after closing
		"08.00-09.00",   // no spaces around the dash
		"08:00 - 09:00", // colons instead of dots
		"09.00 - 08.00", // reversed
		"",
	}
	for _, s := range invalid {
		if _, err := ParseTimeSlot(s); err == nil {
			t.Errorf("ParseTimeSlot(%q) accepted", s)
		}
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"tuli":   RoleTuli,
		"dengar": RoleDengar,
		"admin":  RoleAdmin,
		"jbi":    RoleJBI,
		"dosen":  RoleDosen,
		"TULI":   RoleTuli, // case-insensitive
		"Admin":  RoleAdmin,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "student", "translator"} {
		if _, err := ParseRole(in); err == nil {
			t.Errorf("ParseRole(%q) accepted", in)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		if _, err := ParseOrderStatus(s); err != nil {
			t.Errorf("ParseOrderStatus(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "Pending", "done", "canceled"} {
		if _, err := ParseOrderStatus(s); err == nil {
			t.Errorf("ParseOrderStatus(%q) accepted", s)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if (AuthContext{UserID: 1, Role: RoleTuli}).IsAdmin() {
		t.Error("tuli reported as admin")
	}
	if !(AuthContext{UserID: 1, Role: RoleAdmin}).IsAdmin() {
		t.Error("admin not reported as admin")
	}
}
