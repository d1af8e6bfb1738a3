// internal/app/system/search/search_test.go
package search_test

import (
	"testing"

	"github.com/suchak/adminconsole/internal/app/system/search"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"Asha Rao"}, true},
		{"substring hit", "rao", []string{"Asha Rao", "asha@example.org"}, true},
		{"case folded", "ASHA", []string{"Asha Rao"}, true},
		{"hit on later field", "SVC-10", []string{"Asha Rao", "SVC-100"}, true},
		{"miss", "vikram", []string{"Asha Rao", "SVC-100"}, false},
		{"whitespace trimmed", "  rao  ", []string{"Asha Rao"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := search.Matches(tt.query, tt.fields...); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}

func TestEnumMatches(t *testing.T) {
	tests := []struct {
		selected, value string
		want            bool
	}{
		{"", "Active", true},
		{"all", "Active", true},
		{"All", "Suspended", true},
		{"Active", "Active", true},
		{"Active", "Pending", false},
		{"active", "Active", false}, // enum filters are exact once constrained
	}
	for _, tt := range tests {
		if got := search.EnumMatches(tt.selected, tt.value); got != tt.want {
			t.Errorf("EnumMatches(%q, %q) = %v, want %v", tt.selected, tt.value, got, tt.want)
		}
	}
}

func TestDateRangeContains(t *testing.T) {
	r := search.ParseDateRange("2025-07-01", "2025-07-31")

	tests := []struct {
		name      string
		timestamp string
		want      bool
	}{
		{"inside", "2025-07-15T10:00:00Z", true},
		{"start of From day", "2025-07-01T00:00:00Z", true},
		{"end of To day", "2025-07-31T23:59:59Z", true},
		{"before", "2025-06-30T23:59:59Z", false},
		{"after", "2025-08-01T00:00:00Z", false},
		{"unparseable excluded", "yesterday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.timestamp); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.timestamp, got, tt.want)
			}
		})
	}
}

func TestDateRangeOpenEnds(t *testing.T) {
	open := search.ParseDateRange("", "")
	if !open.Contains("garbage") {
		t.Error("unbounded range must match everything, even unparseable stamps")
	}

	fromOnly := search.ParseDateRange("2025-07-01", "")
	if !fromOnly.Contains("2030-01-01T00:00:00Z") {
		t.Error("From-only range must be open at the top")
	}
	if fromOnly.Contains("2020-01-01T00:00:00Z") {
		t.Error("From-only range must still enforce the lower bound")
	}

	malformed := search.ParseDateRange("07/01/2025", "")
	if !malformed.Contains("2020-01-01T00:00:00Z") {
		t.Error("malformed bound must be treated as absent")
	}
}

func TestFilterConjunction(t *testing.T) {
	type row struct {
		name   string
		status string
	}
	rows := []row{
		{"Asha Rao", "Active"},
		{"Vikram Singh", "Pending"},
		{"Asha Iyer", "Pending"},
	}

	got := search.Filter(rows, func(r row) bool {
		return search.Matches("asha", r.name) && search.EnumMatches("Pending", r.status)
	})
	if len(got) != 1 || got[0].name != "Asha Iyer" {
		t.Errorf("Filter = %+v, want only Asha Iyer", got)
	}
}

func TestFilterPreservesOrderAndEmpty(t *testing.T) {
	got := search.Filter([]int{5, 2, 9, 2}, func(n int) bool { return n == 2 })
	if len(got) != 2 {
		t.Fatalf("Filter = %v, want two rows", got)
	}
	none := search.Filter([]int{1, 2}, func(int) bool { return false })
	if none == nil || len(none) != 0 {
		t.Errorf("Filter with no hits = %v, want empty non-nil slice", none)
	}
}
