package faq

import (
	"testing"
)

func scenarioRecords() []Record {
	return []Record{
		{ID: "1", Question: "A?", Answer: "x", IsActive: true},
		{ID: "2", Question: "B?", Answer: "y", IsActive: false},
	}
}

func recordIDs(records []Record) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}

func equalIDs(got []Record, want ...string) bool {
	ids := recordIDs(got)
	if len(ids) != len(want) {
		return false
	}
	for i := range ids {
		if ids[i] != want[i] {
			return false
		}
	}
	return true
}

func TestApplyScenario(t *testing.T) {
	records := scenarioRecords()

	if got := Apply(records, Filter{Search: "a"}); !equalIDs(got, "1") {
		t.Fatalf("search a = %v, want [1]", recordIDs(got))
	}
	if got := Apply(records, Filter{Status: StatusInactive}); !equalIDs(got, "2") {
		t.Fatalf("status inactive = %v, want [2]", recordIDs(got))
	}
}

func TestApplySearch(t *testing.T) {
	records := []Record{
		{ID: "q", Question: "How long is a Thai Massage?", Answer: "Sixty minutes.", IsActive: true},
		{ID: "a", Question: "Deposit?", Answer: "We hold your PASSPORT copy.", IsActive: true},
		{ID: "u", Question: "Аренда скутера?", Answer: "Да.", IsActive: false},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty keeps all", search: "", want: []string{"q", "a", "u"}},
		{name: "question match ignores case", search: "thai massage", want: []string{"q"}},
		{name: "answer match ignores case", search: "passport", want: []string{"a"}},
		{name: "match in either field", search: "?", want: []string{"q", "a", "u"}},
		{name: "unicode folding", search: "АРЕНДА", want: []string{"u"}},
		{name: "no match", search: "scooter", want: nil},
		{name: "leading space is literal", search: " massage", want: []string{"q"}},
		{name: "whitespace only is literal", search: "  ", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(records, Filter{Search: tc.search, Status: StatusAll})
			if !equalIDs(got, tc.want...) {
				t.Fatalf("Apply(%q) = %v, want %v", tc.search, recordIDs(got), tc.want)
			}
		})
	}
}

func TestApplyStatusPartitions(t *testing.T) {
	records := []Record{
		{ID: "1", IsActive: true},
		{ID: "2", IsActive: false},
		{ID: "3", IsActive: true},
		{ID: "4", IsActive: false},
	}

	if got := Apply(records, Filter{Status: StatusAll}); !equalIDs(got, "1", "2", "3", "4") {
		t.Fatalf("all = %v", recordIDs(got))
	}
	active := Apply(records, Filter{Status: StatusActive})
	if !equalIDs(active, "1", "3") {
		t.Fatalf("active = %v", recordIDs(active))
	}
	inactive := Apply(records, Filter{Status: StatusInactive})
	if !equalIDs(inactive, "2", "4") {
		t.Fatalf("inactive = %v", recordIDs(inactive))
	}
	if len(active)+len(inactive) != len(records) {
		t.Fatalf("active and inactive must partition the list")
	}
}

func TestApplyCombinesSearchAndStatus(t *testing.T) {
	records := []Record{
		{ID: "1", Question: "Scooter rental price?", IsActive: true},
		{ID: "2", Question: "Scooter insurance?", IsActive: false},
		{ID: "3", Question: "Car rental price?", IsActive: false},
	}
	got := Apply(records, Filter{Search: "scooter", Status: StatusInactive})
	if !equalIDs(got, "2") {
		t.Fatalf("Apply = %v, want [2]", recordIDs(got))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := scenarioRecords()
	_ = Apply(records, Filter{Search: "b"})
	if !equalIDs(records, "1", "2") {
		t.Fatalf("input changed: %v", recordIDs(records))
	}
}

func TestParseStatus(t *testing.T) {
	tests := map[string]Status{
		"":          StatusAll,
		"all":       StatusAll,
		"ACTIVE":    StatusActive,
		" inactive": StatusInactive,
		"archived":  StatusAll,
	}
	for input, want := range tests {
		if got := ParseStatus(input); got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(scenarioRecords())
	want := Summary{Total: 2, Active: 1, Inactive: 1}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
	if empty := Summarize(nil); empty != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero", empty)
	}
}
