package common

// --- Constantes del pipeline (fases, estados y limites) ---

// Fases del round de ordenacion (Barrier.Phase)
const (
	PhaseSort     = "SORT"
	PhaseMerge    = "MERGE"
	PhaseAssemble = "ASSEMBLE"
)

// Rounds del pool de workers (Executor.Run)
const (
	RoundIngest = "INGEST"
	RoundSort   = "SORT_MERGE_ASSEMBLE"
)

// Estados de un worker dentro de una fase (Barrier.Snapshot)
const (
	WorkerStatusPending = "PENDING"
	WorkerStatusReady   = "READY"
)

const (
	// MaxThreads es el limite duro de workers aceptado por la CLI.
	MaxThreads = 64

	// MergeWorkerID es el worker designado para el merge secuencial.
	MergeWorkerID = 0

	// OutputTerminator separa la lista de entradas del archivo de salida.
	OutputTerminator = "-o"

	// CellDelimiter se escribe despues de cada celda de la matriz.
	CellDelimiter = "\t\t"
)
