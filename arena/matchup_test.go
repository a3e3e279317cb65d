// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package arena

import (
	"testing"

	"github.com/danielhkuo/song-arena/testutil"
)

func TestMatchup_ReturnsUnjudgedPair(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	b := testutil.InsertTestSong(t, db, "B", "Artist", 1990)
	testutil.InsertTestSong(t, db, "C", "Artist", 1990)
	testutil.InsertTestWin(t, db, a, b)

	// selection is randomized, so only assert the contract: a real
	// pair with no recorded outcome
	songA, songB, err := Matchup(db)
	if err != nil {
		t.Fatal(err)
	}
	if songA == nil || songB == nil {
		t.Fatal("expected a matchup, got none")
	}
	if songA.ID == songB.ID {
		t.Fatal("matchup returned the same song twice")
	}

	judged, err := pairJudged(db, songA.ID, songB.ID)
	if err != nil {
		t.Fatal(err)
	}
	if judged {
		t.Errorf("matchup (%d, %d) already has an outcome", songA.ID, songB.ID)
	}
}

func TestMatchup_PoolTooSmall(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.InsertTestSong(t, db, "A", "Artist", 1990)

	songA, songB, err := Matchup(db)
	if err != nil {
		t.Fatal(err)
	}
	if songA != nil || songB != nil {
		t.Error("expected no matchup with a single song")
	}
}

func TestMatchup_PoolExhausted(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	b := testutil.InsertTestSong(t, db, "B", "Artist", 1990)
	c := testutil.InsertTestSong(t, db, "C", "Artist", 1990)
	testutil.InsertTestWin(t, db, a, b)
	testutil.InsertTestWin(t, db, b, c)
	testutil.InsertTestOutcome(t, db, a, c, "tie")

	// every pair judged; ties count as judged too
	songA, songB, err := Matchup(db)
	if err != nil {
		t.Fatal(err)
	}
	if songA != nil || songB != nil {
		t.Errorf("expected no matchup with all pairs judged, got (%v, %v)", songA, songB)
	}
}

func TestMatchup_NeverOffersEliminated(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	testutil.InsertTestSong(t, db, "B", "Artist", 1990)
	testutil.InsertTestSong(t, db, "C", "Artist", 1990)
	gone := testutil.InsertTestSong(t, db, "Gone", "Artist", 1990)

	if err := EliminateSong(db, gone); err != nil {
		t.Fatal(err)
	}

	// sampled: selection is randomized, so draw repeatedly
	for i := 0; i < 20; i++ {
		songA, songB, err := Matchup(db)
		if err != nil {
			t.Fatal(err)
		}
		if songA == nil {
			t.Fatal("expected a matchup")
		}
		if songA.ID == gone || songB.ID == gone {
			t.Fatalf("draw %d offered eliminated song %d", i, gone)
		}
	}
}

func TestMatchupForSong_PinsOneSide(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	testutil.InsertTestSong(t, db, "B", "Artist", 1990)
	testutil.InsertTestSong(t, db, "C", "Artist", 1990)

	songA, songB, err := MatchupForSong(db, a)
	if err != nil {
		t.Fatal(err)
	}
	if songA == nil || songB == nil {
		t.Fatal("expected a matchup")
	}
	if songA.ID != a {
		t.Errorf("expected pinned song %d first, got %d", a, songA.ID)
	}
	if songB.ID == a {
		t.Error("opponent must differ from the pinned song")
	}
}

func TestMatchupForSong_EliminatedOrMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	testutil.InsertTestSong(t, db, "B", "Artist", 1990)

	if err := EliminateSong(db, a); err != nil {
		t.Fatal(err)
	}

	songA, songB, err := MatchupForSong(db, a)
	if err != nil {
		t.Fatal(err)
	}
	if songA != nil || songB != nil {
		t.Error("expected no matchup for an eliminated song")
	}

	songA, songB, err = MatchupForSong(db, 9999)
	if err != nil {
		t.Fatal(err)
	}
	if songA != nil || songB != nil {
		t.Error("expected no matchup for an unknown song")
	}
}

func TestMatchupForSong_ExhaustedOpponents(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)
	b := testutil.InsertTestSong(t, db, "B", "Artist", 1990)
	testutil.InsertTestWin(t, db, a, b)

	songA, songB, err := MatchupForSong(db, a)
	if err != nil {
		t.Fatal(err)
	}
	if songA != nil || songB != nil {
		t.Error("expected no matchup once all opponents are judged")
	}
}

func TestEliminateSong_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)

	a := testutil.InsertTestSong(t, db, "A", "Artist", 1990)

	if err := EliminateSong(db, a); err != nil {
		t.Fatal(err)
	}
	if err := EliminateSong(db, a); err != nil {
		t.Errorf("eliminating twice should be a no-op, got %v", err)
	}

	var eliminated int
	if err := db.QueryRow(`SELECT eliminated FROM arena_song WHERE id = $1`, a).Scan(&eliminated); err != nil {
		t.Fatal(err)
	}
	if eliminated != 1 {
		t.Errorf("expected eliminated = 1, got %d", eliminated)
	}
}
