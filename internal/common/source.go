package common

// SourceRecord contiene los enteros leidos de un archivo de entrada.
// Es inmutable despues de creado.
type SourceRecord struct {
	FileIndex int    `json:"file_index"`
	Path      string `json:"path"`
	Values    []int  `json:"values"`
	Missing   bool   `json:"missing"`   // el archivo no se pudo abrir o leer
	WorkerID  int    `json:"worker_id"` // worker que lo cargo
}

func (r SourceRecord) Len() int { return len(r.Values) }
