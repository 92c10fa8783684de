package dto

import "testing"

func TestParseDate(t *testing.T) {
	if d, err := ParseDate("2024-06-01"); err != nil || d.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("plain date: %v %v", d, err)
	}
	if d, err := ParseDate("2024-06-01T10:30:00Z"); err != nil || d.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("rfc3339: %v %v", d, err)
	}
	if _, err := ParseDate("01/06/2024"); err == nil {
		t.Fatal("expected slash date to be rejected")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected empty string to be rejected")
	}
}

func TestUpdateProjectFieldsParsesDates(t *testing.T) {
	start := "2024-06-01"
	fields, err := UpdateProjectRequest{ID: 1, StartDate: &start}.Fields()
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if _, ok := fields["start_date"]; !ok {
		t.Fatalf("expected parsed start_date, got %v", fields)
	}

	bad := "nope"
	if _, err := (UpdateProjectRequest{ID: 1, EndDate: &bad}).Fields(); err == nil {
		t.Fatal("expected bad date to error")
	}
}
