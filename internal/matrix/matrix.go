// Package matrix arma y escribe la matriz de salida: una fila por archivo de
// entrada y biggestFileSize columnas, rellenando con ceros.
package matrix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"matrixsort/internal/common"
)

type Matrix struct {
	Rows  [][]int
	Width int
}

// New reserva una matriz rows x width con todas las celdas en cero.
func New(rows, width int) *Matrix {
	m := &Matrix{Rows: make([][]int, rows), Width: width}
	cells := make([]int, rows*width)
	for r := range m.Rows {
		m.Rows[r] = cells[r*width : (r+1)*width : (r+1)*width]
	}
	return m
}

// AssembleRow copia en la fila r el tramo [r*Width, r*Width+Width) de la
// secuencia ordenada. Las posiciones mas alla del final quedan en cero.
func (m *Matrix) AssembleRow(r int, seq []int) {
	row := m.Rows[r]
	low := r * m.Width
	for c := range row {
		if low+c < len(seq) {
			row[c] = seq[low+c]
		} else {
			row[c] = 0
		}
	}
}

// AssembleRows arma las filas indicadas (las que le tocan a un worker).
func (m *Matrix) AssembleRows(rows []int, seq []int) error {
	for _, r := range rows {
		if r < 0 || r >= len(m.Rows) {
			return fmt.Errorf("fila %d fuera de rango (filas=%d)", r, len(m.Rows))
		}
		m.AssembleRow(r, seq)
	}
	return nil
}

// WriteTo escribe la matriz como texto: cada celda seguida del delimitador,
// filas separadas por salto de linea y sin salto despues de la ultima.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	buf := make([]byte, 0, 24)
	for r, row := range m.Rows {
		for _, v := range row {
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, common.CellDelimiter...)
			k, err := bw.Write(buf)
			n += int64(k)
			if err != nil {
				return n, err
			}
		}
		if r < len(m.Rows)-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, bw.Flush()
}

// WriteFile escribe la matriz en path y devuelve los bytes escritos.
func (m *Matrix) WriteFile(path string) ([]byte, error) {
	var b bytes.Buffer
	if _, err := m.WriteTo(&b); err != nil {
		return nil, fmt.Errorf("error formateando la matriz: %w", err)
	}
	data := b.Bytes()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error escribiendo %s: %w", path, err)
	}
	return data, nil
}
