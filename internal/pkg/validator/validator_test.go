package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP001", "EMP1234", "EMP999999"}
	invalid := []string{"EMP1", "emp001", "EMP00X", "001", "EMPLOYEE1", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"09:00", true},
		{"09:00:00", true},
		{"17:45", true},
		{"24:00", false},
		{"9am", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidTimeOfDay(c.input)
		if got != c.want {
			t.Errorf("IsValidTimeOfDay(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error("IsValidDate(2025-01-31) = false, want true")
	}
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate(2025-02-30) = true, want false")
	}
	if _, ok := IsValidDate("31/01/2025"); ok {
		t.Error("IsValidDate(31/01/2025) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email"},
	}
	m := errs.ToMap()
	if m["name"] != "name is required" || m["email"] != "invalid email" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "name: name is required; email: invalid email" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
