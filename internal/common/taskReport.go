package common

// RunReport resume una ejecucion completa del pipeline.
type RunReport struct {
	RunID            string   `json:"run_id"`
	OutputPath       string   `json:"output_path"`
	InputFiles       []string `json:"input_files"`
	TotalSize        int      `json:"total_size"` // total de enteros leidos
	RowWidth         int      `json:"row_width"`  // biggestFileSize
	Threads          int      `json:"threads"`
	EffectiveThreads int      `json:"effective_threads"` // hilos usados en el round de ordenacion
	IngestMS         int64    `json:"ingest_ms"`
	DurationMS       int64    `json:"duration_ms"` // sort + merge + montaje
	Checksum         uint64   `json:"checksum"`    // xxh3 del archivo de salida
	Timestamp        int64    `json:"timestamp"`
}
