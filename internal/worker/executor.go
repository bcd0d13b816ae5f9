package worker

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// ==========================================
// POOL DE HILOS (WORKER POOL)
// ==========================================

// TaskFn es el trabajo de un worker dentro de un round. Recibe su id (0..n-1).
type TaskFn func(ctx context.Context, workerID int) error

// ExecutionManager lanza un numero fijo de workers por round y espera a
// que terminen todos. El primer error cancela el contexto del round.
type ExecutionManager struct {
	maxThreads int
	active     atomic.Int32
}

// NewExecutionManager crea el pool con un limite duro de hilos.
func NewExecutionManager(maxThreads int) *ExecutionManager {
	if maxThreads < 1 {
		maxThreads = 1
	}
	return &ExecutionManager{maxThreads: maxThreads}
}

func (e *ExecutionManager) MaxThreads() int { return e.maxThreads }

// Active devuelve cuantos workers estan corriendo en este momento.
func (e *ExecutionManager) Active() int { return int(e.active.Load()) }

// Run lanza n workers para el round indicado y bloquea hasta que todos
// retornen (spawn + join). Devuelve el primer error.
func (e *ExecutionManager) Run(ctx context.Context, round string, n int, fn TaskFn) error {
	if n < 1 {
		return fmt.Errorf("round %s: numero de workers invalido: %d", round, n)
	}
	if n > e.maxThreads {
		return fmt.Errorf("round %s: %d workers supera el limite de %d", round, n, e.maxThreads)
	}

	start := time.Now()
	log.Printf("[Executor] Iniciando round %s con %d hilos", round, n)

	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < n; id++ {
		id := id
		g.Go(func() error {
			e.active.Add(1)
			defer e.active.Add(-1)
			if err := fn(gctx, id); err != nil {
				return fmt.Errorf("worker %d: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[Executor] Round %s FALLO: %v", round, err)
		return fmt.Errorf("round %s: %w", round, err)
	}

	log.Printf("[Executor] Round %s OK en %s", round, time.Since(start))
	return nil
}

// RoundRobin devuelve los indices en [0, total) que le tocan al worker id
// cuando se reparten por modulo entre n workers.
func RoundRobin(id, n, total int) []int {
	if n < 1 || id < 0 || id >= n {
		return nil
	}
	var idx []int
	for i := id; i < total; i += n {
		idx = append(idx, i)
	}
	return idx
}
