package plan_test

import (
	"testing"

	"matrixsort/internal/common"
	"matrixsort/internal/plan"
)

func TestEffectiveThreads(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		totalSize int
		want      int
	}{
		{name: "Menos hilos que datos", requested: 4, totalSize: 100, want: 4},
		{name: "Mas hilos que datos", requested: 8, totalSize: 3, want: 3},
		{name: "Secuencia vacia", requested: 4, totalSize: 0, want: 1},
		{name: "Hilos invalidos", requested: 0, totalSize: 10, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plan.EffectiveThreads(tt.requested, tt.totalSize); got != tt.want {
				t.Errorf("EffectiveThreads(%d, %d) = %d, esperado %d", tt.requested, tt.totalSize, got, tt.want)
			}
		})
	}
}

func TestPartitions_Tiling(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for k := 1; k <= n; k++ {
			parts, err := plan.Partitions(n, k)
			if err != nil {
				t.Fatalf("Partitions(%d, %d) error inesperado: %v", n, k, err)
			}
			if len(parts) != k {
				t.Fatalf("Partitions(%d, %d) devolvio %d particiones", n, k, len(parts))
			}
			if parts[0].Low != 0 || parts[k-1].High != n-1 {
				t.Fatalf("Partitions(%d, %d) no cubre [0, %d]: %v", n, k, n-1, parts)
			}
			for i := 1; i < k; i++ {
				if parts[i].Low != parts[i-1].High+1 {
					t.Fatalf("Partitions(%d, %d) hueco o solapamiento entre %v y %v", n, k, parts[i-1], parts[i])
				}
			}
			base := n / k
			for i := 0; i < k-1; i++ {
				if parts[i].Len() != base {
					t.Fatalf("Partitions(%d, %d) particion %d mide %d, esperado %d", n, k, i, parts[i].Len(), base)
				}
			}
			if last := parts[k-1].Len(); last != n-(k-1)*base {
				t.Fatalf("Partitions(%d, %d) la ultima mide %d, esperado %d", n, k, last, n-(k-1)*base)
			}
		}
	}
}

func TestPartitions_Errors(t *testing.T) {
	tests := []struct {
		name      string
		totalSize int
		k         int
		expectErr bool
	}{
		{name: "Cero particiones", totalSize: 10, k: 0, expectErr: true},
		{name: "Mas particiones que datos", totalSize: 2, k: 3, expectErr: true},
		{name: "Vacia con varios workers", totalSize: 0, k: 2, expectErr: true},
		{name: "Vacia con un worker", totalSize: 0, k: 1, expectErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := plan.Partitions(tt.totalSize, tt.k)
			if (err != nil) != tt.expectErr {
				t.Fatalf("Se esperaba error=%t, obtuvo %v", tt.expectErr, err)
			}
			if !tt.expectErr && tt.totalSize == 0 && parts[0].Len() != 0 {
				t.Errorf("La particion de una secuencia vacia debe estar vacia, obtuvo %v", parts[0])
			}
		})
	}
}

func TestHandles_ExclusiveSlices(t *testing.T) {
	seq := []int{5, 3, 1, 2, 4}
	parts, err := plan.Partitions(len(seq), 2)
	if err != nil {
		t.Fatal(err)
	}
	handles, err := plan.Handles(seq, parts)
	if err != nil {
		t.Fatal(err)
	}

	if len(handles[0].Slice) != 2 || len(handles[1].Slice) != 3 {
		t.Fatalf("Largos incorrectos: %d y %d", len(handles[0].Slice), len(handles[1].Slice))
	}
	// Un append en el primer handle no puede pisar el rango del segundo
	_ = append(handles[0].Slice, 99)
	if seq[2] != 1 {
		t.Errorf("append sobre el handle 0 escribio en la particion vecina: %v", seq)
	}

	ids := make(map[string]bool)
	for _, h := range handles {
		if ids[h.TaskID] {
			t.Errorf("TaskID duplicado: %s", h.TaskID)
		}
		ids[h.TaskID] = true
	}

	_, err = plan.Handles(seq, []common.Partition{{WorkerID: 0, Low: 0, High: 9}})
	if err == nil {
		t.Error("Esperaba error con una particion fuera de rango")
	}
}
