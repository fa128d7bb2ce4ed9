package alerts

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Source is one pending-count feed. Sources are evaluated in slice order;
// the first one that rose picks the alert message.
type Source struct {
	Name    string
	Message string
	Fetch   func(ctx context.Context) (int, error)
}

// Alert is pushed to every connected dashboard when pending work grows.
type Alert struct {
	Message string         `json:"message"`
	Source  string         `json:"source"`
	Counts  map[string]int `json:"counts"`
	Total   int            `json:"total"`
	FiredAt time.Time      `json:"firedAt"`
}

// Poller periodically gathers pending counts and fires at most one alert per
// tick: only when some count increased and the previous aggregate total was
// nonzero. The snapshot is replaced unconditionally every tick, so the first
// poll after startup or a Reset never alerts.
type Poller struct {
	sources  []Source
	interval time.Duration
	hub      *Hub

	mu   sync.Mutex
	prev []int

	stop chan struct{}
	once sync.Once
}

func NewPoller(hub *Hub, interval time.Duration, sources []Source) *Poller {
	return &Poller{
		sources:  sources,
		interval: interval,
		hub:      hub,
		prev:     make([]int, len(sources)),
		stop:     make(chan struct{}),
	}
}

// Run polls until Stop is called. Meant to run on its own goroutine.
func (p *Poller) Run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.stop:
			return
		}
	}
}

func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// Reset zeroes the snapshot without alerting, mirroring an admin session
// going idle.
func (p *Poller) Reset() {
	p.mu.Lock()
	p.prev = make([]int, len(p.sources))
	p.mu.Unlock()
}

// poll gathers all counts in parallel, then evaluates the alert rule.
func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p.mu.Lock()
	prev := make([]int, len(p.prev))
	copy(prev, p.prev)
	p.mu.Unlock()

	curr := p.gather(ctx, prev)

	if alert, fire := evaluate(p.sources, prev, curr); fire {
		p.broadcast(alert)
	}

	p.mu.Lock()
	p.prev = curr
	p.mu.Unlock()
}

// gather fetches every source concurrently. A failed fetch keeps that
// source's previous count so a flaky read never looks like a drop or a rise.
func (p *Poller) gather(ctx context.Context, prev []int) []int {
	curr := make([]int, len(p.sources))
	var wg sync.WaitGroup
	for i, src := range p.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			n, err := src.Fetch(ctx)
			if err != nil {
				log.Printf("alerts: %s count failed: %v", src.Name, err)
				curr[i] = prev[i]
				return
			}
			curr[i] = n
		}(i, src)
	}
	wg.Wait()
	return curr
}

// evaluate applies the alert rule to one tick. At most one alert fires per
// tick no matter how many sources rose; the winning source is the first
// risen one in precedence order. No alert fires when the previous aggregate
// total was zero.
func evaluate(sources []Source, prev, curr []int) (Alert, bool) {
	prevTotal := 0
	for _, n := range prev {
		prevTotal += n
	}

	rose := -1
	for i := range curr {
		if curr[i] > prev[i] {
			rose = i
			break
		}
	}
	if rose < 0 || prevTotal == 0 {
		return Alert{}, false
	}

	counts := make(map[string]int, len(sources))
	total := 0
	for i, src := range sources {
		counts[src.Name] = curr[i]
		total += curr[i]
	}

	return Alert{
		Message: sources[rose].Message,
		Source:  sources[rose].Name,
		Counts:  counts,
		Total:   total,
		FiredAt: time.Now(),
	}, true
}

func (p *Poller) broadcast(alert Alert) {
	data, err := json.Marshal(alert)
	if err != nil {
		log.Printf("alerts: marshal failed: %v", err)
		return
	}
	p.hub.Broadcast(data)
}
