package menu

import "testing"

func TestNextRankStartsAtOne(t *testing.T) {
	if got := nextRank(0, false); got != 1 {
		t.Fatalf("expected first rank 1, got %d", got)
	}
}

func TestNextRankIncrements(t *testing.T) {
	rank := nextRank(0, false)
	for i := 0; i < 4; i++ {
		next := nextRank(rank, true)
		if next != rank+1 {
			t.Fatalf("expected %d, got %d", rank+1, next)
		}
		rank = next
	}
	if rank != 5 {
		t.Fatalf("expected sequence to end at 5, got %d", rank)
	}
}
