package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"matrixsort/internal/common"
)

// ParseError indica un token que no es un entero valido.
type ParseError struct {
	Path  string
	Index int // posicion del token dentro del archivo (desde 0)
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: token %d %q no es un entero: %v", e.Path, e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseInts lee enteros separados por espacios, tabs o saltos de linea hasta EOF.
func ParseInts(r io.Reader, path string) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var nums []int
	for idx := 0; sc.Scan(); idx++ {
		tok := sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Path: path, Index: idx, Token: tok, Err: err}
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", path, err)
	}
	return nums, nil
}

// LoadFile lee un archivo de entrada a un SourceRecord.
// Si el archivo no se puede abrir o leer devuelve un registro vacio (sin
// error): la fila correspondiente queda rellena con ceros. Solo un token
// invalido (*ParseError) aborta.
func LoadFile(index int, path string) (common.SourceRecord, error) {
	rec := common.SourceRecord{FileIndex: index, Path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Ingest] Archivo %s no existe, se usa una fila vacia", path)
		} else {
			log.Printf("[Ingest] No se pudo abrir %s (%v), se usa una fila vacia", path, err)
		}
		rec.Missing = true
		return rec, nil
	}
	defer f.Close()
	adviseSequential(f)

	nums, err := ParseInts(f, path)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return rec, err
		}
		log.Printf("[Ingest] No se pudo leer %s (%v), se usa una fila vacia", path, err)
		rec.Missing = true
		return rec, nil
	}
	rec.Values = nums
	return rec, nil
}
