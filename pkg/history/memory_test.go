package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func testRecord(id, runID, status string, recordedAt time.Time) *Record {
	return &Record{
		ID:       id,
		RunID:    runID,
		FileName: "coi_" + id + ".pdf",
		FilePath: "/data/coi_" + id + ".pdf",
		Status:   status,
		Checks: map[string]string{
			"required_fields": "pass",
		},
		RecordedAt: recordedAt,
	}
}

func TestMemoryStorage_StoreAndQuery(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	now := time.Now()

	for i := 0; i < 3; i++ {
		record := testRecord(fmt.Sprintf("r%d", i), "run-1", "compliant", now.Add(time.Duration(i)*time.Minute))
		if err := storage.Store(ctx, record); err != nil {
			t.Fatalf("Store() error: %v", err)
		}
	}

	records, err := storage.Query(ctx, &Query{RunID: "run-1"})
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Query() returned %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].ID != "r2" || records[2].ID != "r0" {
		t.Errorf("record order = %s..%s, want r2..r0", records[0].ID, records[2].ID)
	}
}

func TestMemoryStorage_QueryFilters(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	now := time.Now()

	storage.Store(ctx, testRecord("a", "run-1", "compliant", now.Add(-2*time.Hour)))
	storage.Store(ctx, testRecord("b", "run-1", "non_compliant", now.Add(-time.Hour)))
	storage.Store(ctx, testRecord("c", "run-2", "non_compliant", now))

	tests := []struct {
		name  string
		query *Query
		want  int
	}{
		{"by run", &Query{RunID: "run-1"}, 2},
		{"by status", &Query{Status: "non_compliant"}, 2},
		{"run and status", &Query{RunID: "run-1", Status: "non_compliant"}, 1},
		{"by file name", &Query{FileName: "coi_c.pdf"}, 1},
		{"no match", &Query{RunID: "run-9"}, 0},
		{"limit", &Query{Limit: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := storage.Query(ctx, tt.query)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}
			if len(records) != tt.want {
				t.Errorf("Query() returned %d records, want %d", len(records), tt.want)
			}
		})
	}
}

func TestMemoryStorage_TimeWindow(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	now := time.Now()

	storage.Store(ctx, testRecord("old", "run-1", "compliant", now.Add(-48*time.Hour)))
	storage.Store(ctx, testRecord("new", "run-1", "compliant", now))

	cutoff := now.Add(-24 * time.Hour)
	records, err := storage.Query(ctx, &Query{StartTime: &cutoff})
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "new" {
		t.Errorf("Query() = %v, want only the recent record", records)
	}

	deleted, err := storage.Delete(ctx, &Query{EndTime: &cutoff})
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Delete() = %d, want 1", deleted)
	}
	count, _ := storage.Count(ctx, &Query{})
	if count != 1 {
		t.Errorf("Count() = %d after delete, want 1", count)
	}
}

func TestMemoryStorage_CopiesRecords(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	original := testRecord("a", "run-1", "compliant", time.Now())
	storage.Store(ctx, original)
	original.Status = "mutated"

	records, _ := storage.Query(ctx, &Query{})
	if records[0].Status != "compliant" {
		t.Errorf("stored record mutated through caller's pointer")
	}
}
