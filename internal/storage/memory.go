package storage

import (
	"sync"

	"matrixsort/internal/common"
)

// RecordStore guarda los SourceRecord de la ingesta y el ancho maximo
// observado (biggestFileSize). Ambos se actualizan bajo el mismo mutex.
type RecordStore struct {
	mu       sync.RWMutex
	records  map[int]common.SourceRecord // FileIndex -> Record
	maxWidth int
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[int]common.SourceRecord),
	}
}

// SaveRecord registra un archivo leido y actualiza el ancho maximo.
// Devuelve el ancho vigente despues de la actualizacion.
func (s *RecordStore) SaveRecord(rec common.SourceRecord) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.FileIndex] = rec
	if rec.Len() > s.maxWidth {
		s.maxWidth = rec.Len()
	}
	return s.maxWidth
}

// Width devuelve biggestFileSize.
func (s *RecordStore) Width() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxWidth
}

// CheckComplete verifica si ya se guardaron los registros 0..expected-1.
func (s *RecordStore) CheckComplete(expected int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := 0; i < expected; i++ {
		if _, ok := s.records[i]; !ok {
			return false
		}
	}
	return true
}

// Records devuelve los registros en orden de archivo. Los indices que
// faltan se devuelven como registros vacios.
func (s *RecordStore) Records(n int) []common.SourceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]common.SourceRecord, n)
	for i := 0; i < n; i++ {
		rec, ok := s.records[i]
		if !ok {
			rec = common.SourceRecord{FileIndex: i, Missing: true}
		}
		out[i] = rec
	}
	return out
}

// TotalSize suma la longitud de todos los registros guardados.
func (s *RecordStore) TotalSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, rec := range s.records {
		total += rec.Len()
	}
	return total
}
