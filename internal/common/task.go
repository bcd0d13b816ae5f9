package common

import "fmt"

// Partition es un rango contiguo [Low, High] (High inclusivo) de la secuencia aplanada.
type Partition struct {
	WorkerID int `json:"worker_id"`
	Low      int `json:"low"`
	High     int `json:"high"`
}

func (p Partition) Len() int {
	if p.High < p.Low {
		return 0
	}
	return p.High - p.Low + 1
}

func (p Partition) String() string {
	return fmt.Sprintf("worker %d [%d, %d]", p.WorkerID, p.Low, p.High)
}

// WorkerHandle es lo que recibe cada worker al ser lanzado: su particion y
// un slice exclusivo sobre ese rango. Ningun worker escribe fuera de Slice.
type WorkerHandle struct {
	TaskID    string    `json:"task_id"`
	WorkerID  int       `json:"worker_id"`
	Partition Partition `json:"partition"`
	Slice     []int     `json:"-"`
}
