package streak

import (
	"testing"

	"github.com/quantprep/quantprep/internal/civil"
)

func TestUpdate_FirstPractice(t *testing.T) {
	today := civil.MustParse("2024-01-05")
	got := Update(Streak{}, today)

	if got.Current != 1 {
		t.Errorf("Current = %d, want 1", got.Current)
	}
	if got.Longest != 1 {
		t.Errorf("Longest = %d, want 1", got.Longest)
	}
	if got.LastPractice != today {
		t.Errorf("LastPractice = %v, want %v", got.LastPractice, today)
	}
}

func TestUpdate_SameDayIdempotent(t *testing.T) {
	today := civil.MustParse("2024-01-05")
	once := Update(Streak{}, today)
	twice := Update(once, today)

	if twice != once {
		t.Errorf("same-day update changed state: %+v -> %+v", once, twice)
	}
}

func TestUpdate_ConsecutiveDayExtends(t *testing.T) {
	prev := Streak{Current: 3, Longest: 5, LastPractice: civil.MustParse("2024-01-05")}
	got := Update(prev, civil.MustParse("2024-01-06"))

	if got.Current != 4 {
		t.Errorf("Current = %d, want 4", got.Current)
	}
	if got.Longest != 5 {
		t.Errorf("Longest = %d, want 5 (unchanged)", got.Longest)
	}
}

func TestUpdate_NewLongest(t *testing.T) {
	prev := Streak{Current: 5, Longest: 5, LastPractice: civil.MustParse("2024-01-05")}
	got := Update(prev, civil.MustParse("2024-01-06"))

	if got.Current != 6 || got.Longest != 6 {
		t.Errorf("got %d/%d, want 6/6", got.Current, got.Longest)
	}
}

func TestUpdate_GapResets(t *testing.T) {
	prev := Streak{Current: 7, Longest: 9, LastPractice: civil.MustParse("2024-01-05")}
	got := Update(prev, civil.MustParse("2024-01-08"))

	if got.Current != 1 {
		t.Errorf("Current = %d, want 1 after a 3-day gap", got.Current)
	}
	if got.Longest != 9 {
		t.Errorf("Longest = %d, want 9 (preserved)", got.Longest)
	}
}

func TestUpdate_MonthBoundary(t *testing.T) {
	prev := Streak{Current: 1, Longest: 1, LastPractice: civil.MustParse("2024-01-31")}
	got := Update(prev, civil.MustParse("2024-02-01"))

	if got.Current != 2 {
		t.Errorf("Current = %d, want 2 across month boundary", got.Current)
	}
}

func TestUpdate_LongestNeverBelowCurrent(t *testing.T) {
	s := Streak{}
	day := civil.MustParse("2024-01-01")
	for i := 0; i < 40; i++ {
		s = Update(s, day)
		if s.Longest < s.Current {
			t.Fatalf("invariant violated: longest %d < current %d", s.Longest, s.Current)
		}
		day = day.AddDays(1)
	}
}
