package alerts

import (
	"testing"
)

func testSources() []Source {
	return []Source{
		{Name: "orders", Message: "New pending order"},
		{Name: "hallReservations", Message: "New hall reservation request"},
		{Name: "fieldReservations", Message: "New field reservation request"},
		{Name: "eventReservations", Message: "New pending items"},
		{Name: "messages", Message: "New pending items"},
		{Name: "notifications", Message: "New pending items"},
	}
}

func TestNoAlertOnFirstNonzeroTransition(t *testing.T) {
	sources := testSources()
	prev := []int{0, 0, 0, 0, 0, 0}
	curr := []int{3, 1, 0, 0, 0, 0}

	if _, fire := evaluate(sources, prev, curr); fire {
		t.Fatal("expected no alert when previous total was zero")
	}
}

func TestSingleAlertWhenMultipleSourcesRise(t *testing.T) {
	sources := testSources()
	prev := []int{1, 1, 0, 0, 0, 0}
	curr := []int{2, 3, 1, 0, 2, 0}

	alert, fire := evaluate(sources, prev, curr)
	if !fire {
		t.Fatal("expected an alert")
	}
	if alert.Source != "orders" {
		t.Fatalf("expected orders to win precedence, got %s", alert.Source)
	}
	if alert.Message != "New pending order" {
		t.Fatalf("unexpected message %q", alert.Message)
	}
	if alert.Total != 8 {
		t.Fatalf("expected total 8, got %d", alert.Total)
	}
}

func TestPrecedenceSkipsUnchangedSources(t *testing.T) {
	sources := testSources()
	prev := []int{2, 0, 0, 0, 1, 0}
	curr := []int{2, 1, 0, 0, 2, 0}

	alert, fire := evaluate(sources, prev, curr)
	if !fire {
		t.Fatal("expected an alert")
	}
	if alert.Source != "hallReservations" {
		t.Fatalf("expected hallReservations, got %s", alert.Source)
	}
}

func TestNoAlertWhenCountsDropOrHold(t *testing.T) {
	sources := testSources()
	prev := []int{4, 2, 1, 0, 0, 0}

	if _, fire := evaluate(sources, prev, []int{4, 2, 1, 0, 0, 0}); fire {
		t.Fatal("expected no alert when nothing changed")
	}
	if _, fire := evaluate(sources, prev, []int{1, 0, 0, 0, 0, 0}); fire {
		t.Fatal("expected no alert when counts dropped")
	}
}

func TestResetZeroesSnapshotWithoutAlerting(t *testing.T) {
	sources := testSources()
	p := NewPoller(NewHub(), 0, sources)

	p.mu.Lock()
	p.prev = []int{5, 1, 0, 0, 0, 0}
	p.mu.Unlock()

	p.Reset()

	p.mu.Lock()
	defer p.mu.Unlock()
	for i, n := range p.prev {
		if n != 0 {
			t.Fatalf("expected zeroed snapshot, slot %d = %d", i, n)
		}
	}

	// After a reset the first nonzero poll behaves like startup: no alert.
	if _, fire := evaluate(sources, p.prev, []int{5, 1, 0, 0, 0, 0}); fire {
		t.Fatal("expected no alert on the first poll after reset")
	}
}
