package worker

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
)

func TestExecutionManager_Run(t *testing.T) {
	exec := NewExecutionManager(8)
	if exec.MaxThreads() != 8 {
		t.Fatalf("Esperaba limite 8, obtuvo %d", exec.MaxThreads())
	}
	if NewExecutionManager(0).MaxThreads() != 1 {
		t.Error("Un limite menor a 1 deberia ajustarse a 1")
	}

	t.Run("Todos_Los_Workers_Corren", func(t *testing.T) {
		var mu sync.Mutex
		seen := make([]int, 0)
		err := exec.Run(context.Background(), "TEST", 5, func(ctx context.Context, id int) error {
			mu.Lock()
			seen = append(seen, id)
			mu.Unlock()
			return nil
		})
		if err != nil {
			t.Fatalf("Error inesperado: %v", err)
		}
		slices.Sort(seen)
		if !slices.Equal(seen, []int{0, 1, 2, 3, 4}) {
			t.Errorf("Workers ejecutados: %v", seen)
		}
		if exec.Active() != 0 {
			t.Errorf("Quedaron %d workers activos despues del join", exec.Active())
		}
	})

	t.Run("Error_Cancela_El_Round", func(t *testing.T) {
		boom := errors.New("boom")
		err := exec.Run(context.Background(), "TEST", 3, func(ctx context.Context, id int) error {
			if id == 1 {
				return boom
			}
			<-ctx.Done()
			return ctx.Err()
		})
		if !errors.Is(err, boom) {
			t.Errorf("Esperaba el error del worker 1, obtuvo %v", err)
		}
	})

	t.Run("Limite_De_Hilos", func(t *testing.T) {
		noop := func(ctx context.Context, id int) error { return nil }
		if err := exec.Run(context.Background(), "TEST", 9, noop); err == nil {
			t.Error("Esperaba error al superar MaxThreads")
		}
		if err := exec.Run(context.Background(), "TEST", 0, noop); err == nil {
			t.Error("Esperaba error con cero workers")
		}
	})
}

func TestRoundRobin(t *testing.T) {
	tests := []struct {
		name  string
		id    int
		n     int
		total int
		want  []int
	}{
		{name: "Worker 0 de 2", id: 0, n: 2, total: 5, want: []int{0, 2, 4}},
		{name: "Worker 1 de 2", id: 1, n: 2, total: 5, want: []int{1, 3}},
		{name: "Mas workers que items", id: 3, n: 4, total: 2, want: nil},
		{name: "Id invalido", id: 4, n: 4, total: 10, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundRobin(tt.id, tt.n, tt.total); !slices.Equal(got, tt.want) {
				t.Errorf("RoundRobin(%d, %d, %d) = %v, esperado %v", tt.id, tt.n, tt.total, got, tt.want)
			}
		})
	}
}
