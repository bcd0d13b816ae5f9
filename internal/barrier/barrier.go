// Package barrier implementa el punto de encuentro que separa las fases del
// round de ordenacion: ningun worker pasa a la fase N+1 hasta que todos
// reportaron listo en la fase N.
package barrier

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"matrixsort/internal/common"
)

// TimeoutError indica que algun worker no reporto listo a tiempo.
type TimeoutError struct {
	Phase   string
	Missing []int
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("fase %s: los workers %v no reportaron listo ni progreso en %s", e.Phase, e.Missing, e.Timeout)
}

// Barrier es ciclica: cuando llega el ultimo worker se liberan todos y los
// flags de listo se reinician para la fase siguiente.
// El timeout cuenta desde la ultima actividad de la fase (una llegada o un
// Heartbeat), no desde la llegada de cada worker: un worker ocupado que
// reporta progreso no se declara ausente.
// Con timeout 0 se espera indefinidamente; si un worker nunca llega, el
// bloqueo es permanente salvo que se cancele el contexto.
type Barrier struct {
	mu       sync.Mutex
	parties  int
	timeout  time.Duration
	phases   []string
	gen      int
	ready    map[int]bool // WorkerID -> listo en la fase actual
	release  chan struct{}
	err      error
	lastBeat time.Time // ultima llegada o Heartbeat en la fase actual
}

func New(parties int, timeout time.Duration, phases ...string) *Barrier {
	if parties < 1 {
		parties = 1
	}
	return &Barrier{
		parties:  parties,
		timeout:  timeout,
		phases:   phases,
		ready:    make(map[int]bool),
		release:  make(chan struct{}),
		lastBeat: time.Now(),
	}
}

func (b *Barrier) Parties() int { return b.parties }

// Phase devuelve el nombre de la fase en curso.
func (b *Barrier) Phase() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phaseLocked()
}

func (b *Barrier) phaseLocked() string {
	if b.gen < len(b.phases) {
		return b.phases[b.gen]
	}
	return fmt.Sprintf("PHASE-%d", b.gen)
}

// Await marca al worker como listo y bloquea hasta que todos hayan llegado,
// hasta que venza el timeout o hasta que se cancele ctx.
func (b *Barrier) Await(ctx context.Context, workerID int) error {
	b.mu.Lock()
	if b.err != nil {
		err := b.err
		b.mu.Unlock()
		return err
	}
	if workerID < 0 || workerID >= b.parties {
		b.mu.Unlock()
		return fmt.Errorf("worker %d fuera de rango (parties=%d)", workerID, b.parties)
	}
	if b.ready[workerID] {
		phase := b.phaseLocked()
		b.mu.Unlock()
		return fmt.Errorf("worker %d ya reporto listo en la fase %s", workerID, phase)
	}
	b.ready[workerID] = true
	b.lastBeat = time.Now()
	if len(b.ready) == b.parties {
		b.advanceLocked()
		b.mu.Unlock()
		return nil
	}
	gen, release, phase := b.gen, b.release, b.phaseLocked()
	b.mu.Unlock()

	var timer *time.Timer
	var expired <-chan time.Time
	if b.timeout > 0 {
		timer = time.NewTimer(b.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case <-release:
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.gen > gen {
				return nil
			}
			return b.err
		case <-ctx.Done():
			return b.breakWith(gen, fmt.Errorf("fase %s cancelada: %w", phase, ctx.Err()))
		case <-expired:
			b.mu.Lock()
			if b.gen > gen || b.err != nil {
				// release ya esta cerrado, la proxima vuelta lo toma
				b.mu.Unlock()
				continue
			}
			if idle := time.Since(b.lastBeat); idle < b.timeout {
				b.mu.Unlock()
				timer.Reset(b.timeout - idle)
				continue
			}
			missing := b.pendingLocked()
			b.mu.Unlock()
			return b.breakWith(gen, &TimeoutError{Phase: phase, Missing: missing, Timeout: b.timeout})
		}
	}
}

// Heartbeat registra progreso de un worker que aun no llego a la barrera
// (por ejemplo el worker del merge entre pasos) y reinicia el timeout de la fase.
func (b *Barrier) Heartbeat(workerID int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	if workerID < 0 || workerID >= b.parties {
		return fmt.Errorf("worker %d fuera de rango (parties=%d)", workerID, b.parties)
	}
	b.lastBeat = time.Now()
	return nil
}

// Pending devuelve los workers que aun no reportaron listo en la fase actual.
func (b *Barrier) Pending() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingLocked()
}

// Snapshot devuelve el estado de cada worker en la fase actual.
func (b *Barrier) Snapshot() map[int]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[int]string, b.parties)
	for id := 0; id < b.parties; id++ {
		if b.ready[id] {
			out[id] = common.WorkerStatusReady
		} else {
			out[id] = common.WorkerStatusPending
		}
	}
	return out
}

// Err devuelve el error que rompio la barrera, o nil.
func (b *Barrier) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Barrier) pendingLocked() []int {
	var missing []int
	for id := 0; id < b.parties; id++ {
		if !b.ready[id] {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	return missing
}

func (b *Barrier) advanceLocked() {
	log.Printf("[Barrier] Fase %s completa (%d/%d workers)", b.phaseLocked(), len(b.ready), b.parties)
	close(b.release)
	b.gen++
	b.ready = make(map[int]bool, b.parties)
	b.release = make(chan struct{})
	b.lastBeat = time.Now()
}

// breakWith rompe la barrera de la generacion gen y libera a todos los que esperan.
// Si la generacion ya avanzo, el worker fue liberado a tiempo y no hay error.
func (b *Barrier) breakWith(gen int, err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen > gen {
		return nil
	}
	if b.err != nil {
		return b.err
	}
	b.err = err
	close(b.release)
	log.Printf("[Barrier] ALERTA: barrera rota en la fase %s: %v", b.phaseLocked(), err)
	return err
}
