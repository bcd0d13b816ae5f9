// Package pipeline coordina las tres fases: ingesta paralela, sort por
// particiones con merge secuencial en el worker 0, y montaje de la matriz.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"matrixsort/internal/barrier"
	"matrixsort/internal/common"
	"matrixsort/internal/config"
	"matrixsort/internal/ingest"
	"matrixsort/internal/matrix"
	"matrixsort/internal/plan"
	"matrixsort/internal/report"
	"matrixsort/internal/sorter"
	"matrixsort/internal/storage"
	"matrixsort/internal/worker"
)

// Result contiene todo lo producido por una corrida.
type Result struct {
	Sequence   []int // secuencia aplanada, ya ordenada
	Partitions []common.Partition
	Matrix     *matrix.Matrix
	Report     common.RunReport
}

// Pipeline agrupa el pool de workers y la configuracion de la barrera.
type Pipeline struct {
	Exec           *worker.ExecutionManager
	BarrierTimeout time.Duration
	// Load reemplaza la lectura de archivos (tests). nil usa ingest.LoadFile.
	Load func(index int, path string) (common.SourceRecord, error)

	// afterMergeStep se llama tras cada paso del merge, antes del Heartbeat (tests).
	afterMergeStep func(merged int)
}

func New(maxThreads int, barrierTimeout time.Duration) *Pipeline {
	return &Pipeline{
		Exec:           worker.NewExecutionManager(maxThreads),
		BarrierTimeout: barrierTimeout,
	}
}

// Process lee las entradas y devuelve la matriz armada, sin escribir nada.
func (p *Pipeline) Process(ctx context.Context, inputs []string, threads int) (*Result, error) {
	if threads < 1 || threads > p.Exec.MaxThreads() {
		return nil, fmt.Errorf("%d hilos fuera del rango [1, %d]", threads, p.Exec.MaxThreads())
	}
	coord := ingest.NewCoordinator(p.Exec, storage.NewRecordStore())
	if p.Load != nil {
		coord.Load = p.Load
	}

	ingestStart := time.Now()
	ing, err := coord.Ingest(ctx, inputs, threads)
	if err != nil {
		return nil, fmt.Errorf("ingesta: %w", err)
	}
	ingestElapsed := time.Since(ingestStart)

	seq := ingest.Flatten(ing.Records)
	k := plan.EffectiveThreads(threads, len(seq))
	parts, err := plan.Partitions(len(seq), k)
	if err != nil {
		return nil, fmt.Errorf("particionado: %w", err)
	}
	handles, err := plan.Handles(seq, parts)
	if err != nil {
		return nil, fmt.Errorf("particionado: %w", err)
	}
	m := matrix.New(len(inputs), ing.Width)
	bar := barrier.New(k, p.BarrierTimeout, common.PhaseSort, common.PhaseMerge, common.PhaseAssemble)
	log.Printf("[Pipeline] %d archivos, %d enteros, ancho %d, %d workers en la barrera", len(inputs), len(seq), ing.Width, bar.Parties())

	start := time.Now()
	err = p.Exec.Run(ctx, common.RoundSort, k, func(ctx context.Context, id int) error {
		return p.runSortWorker(ctx, bar, handles[id], id == common.MergeWorkerID, parts, m, seq, k)
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	rep := report.NewRunReport("", inputs, threads)
	rep.TotalSize = len(seq)
	rep.RowWidth = ing.Width
	rep.EffectiveThreads = k
	rep.IngestMS = ingestElapsed.Milliseconds()
	rep.DurationMS = elapsed.Milliseconds()

	return &Result{Sequence: seq, Partitions: parts, Matrix: m, Report: rep}, nil
}

// runSortWorker es el cuerpo de cada worker en el round de ordenacion.
// Solo el worker con merger=true escribe sobre seq completa, y solo entre
// la primera y la segunda barrera.
func (p *Pipeline) runSortWorker(ctx context.Context, bar *barrier.Barrier, h common.WorkerHandle, merger bool,
	parts []common.Partition, m *matrix.Matrix, seq []int, k int) error {

	// Fase 1: cada worker ordena su slice exclusivo
	sorter.SortPartition(h)
	log.Printf("[Pipeline] Worker %d (tarea %s) ordeno %s", h.WorkerID, h.TaskID, h.Partition)
	if err := bar.Await(ctx, h.WorkerID); err != nil {
		return err
	}

	// Fase 2: solo el worker designado mezcla; los demas esperan en la barrera.
	// Cada paso del merge manda un Heartbeat para que el timeout no lo declare ausente.
	if merger {
		mergeStart := time.Now()
		var beatErr error
		progress := func(merged int) {
			if p.afterMergeStep != nil {
				p.afterMergeStep(merged)
			}
			if err := bar.Heartbeat(h.WorkerID); err != nil && beatErr == nil {
				beatErr = err
			}
		}
		if err := sorter.MergeRuns(seq, parts, progress); err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		if beatErr != nil {
			return fmt.Errorf("merge: %w", beatErr)
		}
		log.Printf("[Pipeline] Worker %d mezclo %d particiones en %s", h.WorkerID, len(parts), time.Since(mergeStart))
	}
	if err := bar.Await(ctx, h.WorkerID); err != nil {
		return err
	}

	// Fase 3: montaje de filas por round-robin sobre la secuencia ya ordenada
	rows := worker.RoundRobin(h.WorkerID, k, len(m.Rows))
	if err := m.AssembleRows(rows, seq); err != nil {
		return fmt.Errorf("montaje: %w", err)
	}
	return bar.Await(ctx, h.WorkerID)
}

// Run ejecuta la corrida completa: procesa, escribe la salida y publica el reporte.
func Run(ctx context.Context, cfg config.Config) (*Result, error) {
	p := New(cfg.MaxThreads, cfg.BarrierTimeout)
	res, err := p.Process(ctx, cfg.Inputs, cfg.Threads)
	if err != nil {
		return nil, err
	}

	data, err := res.Matrix.WriteFile(cfg.Output)
	if err != nil {
		return nil, err
	}
	res.Report.OutputPath = cfg.Output
	res.Report.Checksum = report.Checksum(data)

	if err := report.Publish(res.Report); err != nil {
		log.Printf("[Pipeline] ERROR al publicar el reporte de %s: %v", res.Report.RunID, err)
	}
	return res, nil
}
