// Package datasource produces the rows the list is built from.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"go.uber.org/zap"

	"rowpick/internal/domain"
	"rowpick/internal/eventbus"
)

// ErrLoadInProgress is returned when Load is called while a load is running
var ErrLoadInProgress = errors.New("load already in progress")

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Claude", "Dennis", "Edsger", "Frances", "Grace",
	"Hedy", "Ivan", "Jean", "Ken", "Linus", "Margaret", "Niklaus", "Radia",
	"Rob", "Sophie", "Tim", "Whitfield",
}

var lastNames = []string{
	"Allen", "Backus", "Cerf", "Dijkstra", "Engelbart", "Floyd", "Goldberg",
	"Hamilton", "Hopper", "Kahn", "Knuth", "Lamport", "Liskov", "Lovelace",
	"McCarthy", "Perlman", "Pike", "Ritchie", "Thompson", "Wirth",
}

var mailDomains = []string{"example.com", "example.org", "example.net", "mail.test"}

// RowSink receives the rows a load produces
type RowSink interface {
	AddRows(rows []domain.Row)
}

// Generator produces synthetic rows with dense ids starting at 0
type Generator struct {
	bus       eventbus.EventBus
	sink      RowSink
	logger    *zap.Logger
	seed      int64
	batchSize int

	mu        sync.Mutex
	isLoading bool
	loads     uint64
	wg        sync.WaitGroup
}

// NewGenerator creates a generator that hands batches of batchSize rows to sink
// and reports progress on bus
func NewGenerator(bus eventbus.EventBus, sink RowSink, logger *zap.Logger, seed int64, batchSize int) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &Generator{
		bus:       bus,
		sink:      sink,
		logger:    logger.Named("datasource"),
		seed:      seed,
		batchSize: batchSize,
	}
}

// Generate returns n rows synchronously. The same seed always yields the same
// rows, and they match what a generator with that seed loads.
func Generate(seed int64, n int) []domain.Row {
	rows := make([]domain.Row, 0, n)
	rng := newRand(seed)
	for id := 0; id < n; id++ {
		rows = append(rows, newRow(rng, id))
	}
	return rows
}

// Load produces n rows in the background. Every batch goes to the sink before a
// RowsLoadedBatchEvent is published; a LoadCompletedEvent follows the last batch.
// Cancelling ctx stops the load early.
func (g *Generator) Load(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("invalid row count %d", n)
	}

	g.mu.Lock()
	if g.isLoading {
		g.mu.Unlock()
		return ErrLoadInProgress
	}
	g.isLoading = true
	g.loads++
	load := g.loads
	g.mu.Unlock()

	g.bus.Publish(eventbus.LoadStartedEvent{Load: load, Requested: n})
	g.logger.Info("load started", zap.Uint64("load", load), zap.Int("rows", n), zap.Int64("seed", g.seed))

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()

		produced, canceled := g.produce(ctx, load, n)

		g.mu.Lock()
		g.isLoading = false
		g.mu.Unlock()

		g.logger.Info("load completed", zap.Int("rows", produced), zap.Bool("canceled", canceled))
		g.bus.Publish(eventbus.LoadCompletedEvent{Load: load, Count: produced, Canceled: canceled})
	}()

	return nil
}

// Wait blocks until the running load, if any, has finished
func (g *Generator) Wait() {
	g.wg.Wait()
}

func (g *Generator) produce(ctx context.Context, load uint64, n int) (int, bool) {
	rng := newRand(g.seed)
	produced := 0
	for produced < n {
		select {
		case <-ctx.Done():
			return produced, true
		default:
		}

		size := min(g.batchSize, n-produced)
		batch := make([]domain.Row, 0, size)
		for i := 0; i < size; i++ {
			batch = append(batch, newRow(rng, produced+i))
		}
		produced += size

		g.sink.AddRows(batch)
		g.bus.Publish(eventbus.RowsLoadedBatchEvent{Load: load, Size: size, Loaded: produced})
	}
	return produced, false
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func newRow(rng *rand.Rand, id int) domain.Row {
	first := firstNames[rng.IntN(len(firstNames))]
	last := lastNames[rng.IntN(len(lastNames))]
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last), id, mailDomains[rng.IntN(len(mailDomains))])
	return domain.Row{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Email:     email,
	}
}
