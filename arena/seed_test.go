// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"testing"

	"github.com/danielhkuo/song-arena/testutil"
)

func TestSeed_FromChartData(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.InsertTestChartWeek(t, db, "1991-06-01", [][3]string{
		{"1", "Smells Like Teen Spirit", "Nirvana"},
		{"2", "Black or White", "Michael Jackson"},
	})
	testutil.InsertTestChartWeek(t, db, "1984-03-10", [][3]string{
		{"1", "Jump", "Van Halen"},
	})

	result, err := Seed(db)
	if err != nil {
		t.Fatal(err)
	}

	if result.Added != 3 {
		t.Errorf("expected 3 songs added, got %d", result.Added)
	}
	if result.Skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", result.Skipped)
	}
	if result.Decades != 2 {
		t.Errorf("expected 2 decades, got %d", result.Decades)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM arena_song`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("expected 3 songs in pool, got %d", count)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.InsertTestChartWeek(t, db, "1991-06-01", [][3]string{
		{"1", "Smells Like Teen Spirit", "Nirvana"},
		{"2", "Black or White", "Michael Jackson"},
	})

	first, err := Seed(db)
	if err != nil {
		t.Fatal(err)
	}
	if first.Added != 2 {
		t.Fatalf("expected 2 added on first run, got %d", first.Added)
	}

	second, err := Seed(db)
	if err != nil {
		t.Fatal(err)
	}
	if second.Added != 0 {
		t.Errorf("second run should add nothing, got %d", second.Added)
	}
	if second.Skipped != 2 {
		t.Errorf("second run should skip 2, got %d", second.Skipped)
	}
}

func TestSeed_DuplicateAcrossYears(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// same song charts in two years of the same decade
	testutil.InsertTestChartWeek(t, db, "1991-12-28", [][3]string{
		{"1", "Smells Like Teen Spirit", "Nirvana"},
	})
	testutil.InsertTestChartWeek(t, db, "1992-01-04", [][3]string{
		{"1", "Smells Like Teen Spirit", "Nirvana"},
	})

	result, err := Seed(db)
	if err != nil {
		t.Fatal(err)
	}

	if result.Added != 1 {
		t.Errorf("expected 1 added, got %d", result.Added)
	}
	if result.Skipped != 1 {
		t.Errorf("expected duplicate counted as skipped, got %d", result.Skipped)
	}
}

func TestSeed_EmptyChartData(t *testing.T) {
	db := testutil.SetupTestDB(t)

	result, err := Seed(db)
	if err != nil {
		t.Fatal(err)
	}
	if result.Added != 0 || result.Decades != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
