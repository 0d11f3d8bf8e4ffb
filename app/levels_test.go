package app

import (
	"reflect"
	"testing"

	"github.com/nowakemc/reporting-project/models"
)

func TestLevelRows(t *testing.T) {
	aggs := []models.FolderAggregate{
		{FullPath: "x/y", Depth: 2, TotalSize: 300, FileCount: 2, AvgSize: 150},
		{FullPath: "x", Depth: 1, TotalSize: 50, FileCount: 1, AvgSize: 50},
		{FullPath: "", Depth: 0, TotalSize: 10, FileCount: 1, AvgSize: 10},
	}

	rows := LevelRows(aggs, 3)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	t.Run("deep folder fills its segments", func(t *testing.T) {
		want := []string{"x", "y", ""}
		if !reflect.DeepEqual(rows[0].Levels, want) {
			t.Errorf("expected levels %v, got %v", want, rows[0].Levels)
		}
	})

	t.Run("shallow folder pads with empty strings", func(t *testing.T) {
		want := []string{"x", "", ""}
		if !reflect.DeepEqual(rows[1].Levels, want) {
			t.Errorf("expected levels %v, got %v", want, rows[1].Levels)
		}
	})

	t.Run("root aggregate is all placeholders", func(t *testing.T) {
		want := []string{"", "", ""}
		if !reflect.DeepEqual(rows[2].Levels, want) {
			t.Errorf("expected levels %v, got %v", want, rows[2].Levels)
		}
	})

	t.Run("aggregate columns carried through", func(t *testing.T) {
		if rows[0].TotalSize != 300 || rows[0].FileCount != 2 || rows[0].AvgSize != 150 {
			t.Errorf("aggregate values not preserved: %+v", rows[0].FolderAggregate)
		}
	})
}

func TestLevelRows_Idempotent(t *testing.T) {
	aggs := []models.FolderAggregate{
		{FullPath: "a/b/c", Depth: 3},
		{FullPath: "a", Depth: 1},
	}

	once := LevelRows(aggs, 4)

	// Re-level the aggregates carried inside the already-leveled rows.
	carried := make([]models.FolderAggregate, len(once))
	for i, row := range once {
		carried[i] = row.FolderAggregate
	}
	twice := LevelRows(carried, 4)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("leveling is not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestLevelRows_AutoWidth(t *testing.T) {
	aggs := []models.FolderAggregate{
		{FullPath: "a/b/c/d", Depth: 4},
		{FullPath: "a", Depth: 1},
	}

	rows := LevelRows(aggs, 0)
	for _, row := range rows {
		if len(row.Levels) != 4 {
			t.Errorf("expected level width 4, got %d for %s", len(row.Levels), row.FullPath)
		}
	}
}

func TestLevelRows_EmptyInput(t *testing.T) {
	if rows := LevelRows(nil, 3); rows != nil {
		t.Errorf("expected nil for empty input, got %v", rows)
	}
}

func TestMaxDepth(t *testing.T) {
	records := []models.DocumentRecord{
		{ParentPath: ""},
		{ParentPath: "a"},
		{ParentPath: "/a/b/c/"},
	}
	if d := MaxDepth(records); d != 3 {
		t.Errorf("expected max depth 3, got %d", d)
	}
}
