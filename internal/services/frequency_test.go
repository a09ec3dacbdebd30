package services

import (
	"testing"

	"route-suggestion-service/internal/domain"
)

func visitRow(id string, volume float64) *domain.CustomerRecord {
	return &domain.CustomerRecord{CustomerID: id, Volume: volume}
}

func TestFilterByFrequency(t *testing.T) {
	// C1 appears three times, C2 twice, C3 once.
	records := []*domain.CustomerRecord{
		visitRow("C1", 10),
		visitRow("C2", 20),
		visitRow("C1", 12),
		visitRow("C3", 30),
		visitRow("C2", 22),
		visitRow("C1", 14),
	}

	kept, stats := FilterByFrequency(records, 3)

	if len(kept) != 3 {
		t.Fatalf("kept %d rows, want 3", len(kept))
	}
	for _, rec := range kept {
		if rec.CustomerID != "C1" {
			t.Fatalf("row for %q survived the filter", rec.CustomerID)
		}
		if rec.Occurrences != 3 {
			t.Errorf("occurrences = %d, want 3", rec.Occurrences)
		}
	}

	if stats.CustomersBefore != 3 || stats.CustomersAfter != 1 {
		t.Errorf("customers = %d->%d, want 3->1", stats.CustomersBefore, stats.CustomersAfter)
	}
	if stats.RowsBefore != 6 || stats.RowsAfter != 3 {
		t.Errorf("rows = %d->%d, want 6->3", stats.RowsBefore, stats.RowsAfter)
	}
	if stats.VolumeBefore != 108 || stats.VolumeAfter != 36 {
		t.Errorf("volume = %v->%v, want 108->36", stats.VolumeBefore, stats.VolumeAfter)
	}
}

func TestFilterByFrequencyKeepsAllRowsOfRetainedCustomers(t *testing.T) {
	records := []*domain.CustomerRecord{
		visitRow("C1", 1),
		visitRow("C1", 2),
		visitRow("C1", 3),
		visitRow("C1", 4),
	}

	kept, _ := FilterByFrequency(records, 3)
	if len(kept) != 4 {
		t.Fatalf("kept %d rows, want all 4 (rows are not merged)", len(kept))
	}
}

func TestFilterByFrequencyDeterministic(t *testing.T) {
	records := []*domain.CustomerRecord{
		visitRow("B", 5), visitRow("A", 1), visitRow("B", 6),
		visitRow("A", 2), visitRow("B", 7), visitRow("A", 3),
	}

	first, _ := FilterByFrequency(records, 3)
	second, _ := FilterByFrequency(records, 3)

	if len(first) != len(second) {
		t.Fatalf("runs disagree on size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs disagree at row %d", i)
		}
	}
}
