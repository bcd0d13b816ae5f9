package ingest

import (
	"context"
	"fmt"
	"log"

	"matrixsort/internal/common"
	"matrixsort/internal/storage"
	"matrixsort/internal/worker"
)

// Coordinator reparte la lectura de archivos entre los workers por
// round-robin (archivo i -> worker i mod n) y acumula el ancho maximo.
type Coordinator struct {
	Exec  *worker.ExecutionManager
	Store *storage.RecordStore
	// Load lee un archivo. Es reemplazable en tests.
	Load func(index int, path string) (common.SourceRecord, error)
}

func NewCoordinator(exec *worker.ExecutionManager, store *storage.RecordStore) *Coordinator {
	return &Coordinator{Exec: exec, Store: store, Load: LoadFile}
}

// Result es la salida de la ingesta.
type Result struct {
	Records []common.SourceRecord // en orden de archivo
	Width   int                   // biggestFileSize
	Total   int                   // suma de los largos
}

// Ingest lee todos los archivos con hasta threads workers.
func (c *Coordinator) Ingest(ctx context.Context, paths []string, threads int) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no hay archivos de entrada")
	}
	n := threads
	if len(paths) < n {
		n = len(paths)
	}

	err := c.Exec.Run(ctx, common.RoundIngest, n, func(ctx context.Context, id int) error {
		for _, i := range worker.RoundRobin(id, n, len(paths)) {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := c.Load(i, paths[i])
			if err != nil {
				return fmt.Errorf("error cargando archivo %d: %w", i, err)
			}
			rec.WorkerID = id
			width := c.Store.SaveRecord(rec)
			log.Printf("[Ingest] Worker %d leyo %s (%d enteros, ancho actual %d)", id, paths[i], rec.Len(), width)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !c.Store.CheckComplete(len(paths)) {
		return nil, fmt.Errorf("la ingesta termino sin todos los archivos (%d esperados)", len(paths))
	}

	recs := c.Store.Records(len(paths))
	return &Result{Records: recs, Width: c.Store.Width(), Total: c.Store.TotalSize()}, nil
}

// Flatten concatena los registros en orden de archivo.
func Flatten(records []common.SourceRecord) []int {
	total := 0
	for _, r := range records {
		total += r.Len()
	}
	seq := make([]int, 0, total)
	for _, r := range records {
		seq = append(seq, r.Values...)
	}
	return seq
}
