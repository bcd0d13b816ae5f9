package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
	"matrixsort/internal/common"
)

// Output es donde Publish escribe el reporte. Se reemplaza en tests.
var Output io.Writer = os.Stdout

// Checksum calcula el xxh3 del contenido escrito; dos corridas con la misma
// entrada y el mismo numero de hilos deben dar el mismo valor.
func Checksum(data []byte) uint64 {
	return xxh3.Hash(data)
}

// NewRunReport crea un reporte con un RunID nuevo.
func NewRunReport(outputPath string, inputs []string, threads int) common.RunReport {
	return common.RunReport{
		RunID:      uuid.New().String(),
		OutputPath: outputPath,
		InputFiles: inputs,
		Threads:    threads,
		Timestamp:  time.Now().Unix(),
	}
}

// Publish imprime el reporte de una corrida.
// Es una VARIABLE de funcion para poder ser reemplazada en tests.
var Publish = func(rep common.RunReport) error {
	_, err := fmt.Fprintf(Output,
		"Archivo %q generado!\nTotal de entradas: %d\nThreads: %d\nTiempo: %s\nChecksum: %016x\n",
		rep.OutputPath, rep.TotalSize, rep.Threads,
		time.Duration(rep.DurationMS)*time.Millisecond, rep.Checksum)
	return err
}

// PublishJSON escribe el reporte completo como una linea JSON.
func PublishJSON(w io.Writer, rep common.RunReport) error {
	return json.NewEncoder(w).Encode(rep)
}
