package plan

import (
	"fmt"

	"github.com/google/uuid"
	"matrixsort/internal/common"
)

// EffectiveThreads limita el numero de workers del round de ordenacion a
// totalSize, para que ninguna particion quede vacia. Nunca devuelve menos de 1.
func EffectiveThreads(requested, totalSize int) int {
	k := requested
	if totalSize < k {
		k = totalSize
	}
	if k < 1 {
		k = 1
	}
	return k
}

// Partitions divide [0, totalSize-1] en k rangos contiguos de largo
// totalSize/k. La ultima particion absorbe el resto.
// Con totalSize == 0 y k == 1 devuelve una unica particion vacia [0, -1].
func Partitions(totalSize, k int) ([]common.Partition, error) {
	if k < 1 {
		return nil, fmt.Errorf("el numero de particiones debe ser mayor a cero (k=%d)", k)
	}
	if totalSize < 0 {
		return nil, fmt.Errorf("tamano total invalido: %d", totalSize)
	}
	if totalSize > 0 && k > totalSize {
		return nil, fmt.Errorf("%d particiones para %d elementos dejaria particiones vacias", k, totalSize)
	}
	if totalSize == 0 && k > 1 {
		return nil, fmt.Errorf("una secuencia vacia admite una sola particion, se pidieron %d", k)
	}

	length := totalSize / k
	parts := make([]common.Partition, k)
	for i := 0; i < k; i++ {
		parts[i] = common.Partition{
			WorkerID: i,
			Low:      i * length,
			High:     (i+1)*length - 1,
		}
	}
	parts[k-1].High = totalSize - 1
	return parts, nil
}

// Handles entrega a cada worker un slice exclusivo sobre su particion.
func Handles(seq []int, parts []common.Partition) ([]common.WorkerHandle, error) {
	handles := make([]common.WorkerHandle, len(parts))
	for i, p := range parts {
		if p.Len() > 0 && (p.Low < 0 || p.High >= len(seq)) {
			return nil, fmt.Errorf("particion fuera de rango: %s (len=%d)", p, len(seq))
		}
		// El cap limita el slice a su rango: un append no puede pisar al vecino.
		var slice []int
		if p.Len() > 0 {
			slice = seq[p.Low : p.High+1 : p.High+1]
		}
		handles[i] = common.WorkerHandle{
			TaskID:    uuid.New().String(),
			WorkerID:  p.WorkerID,
			Partition: p,
			Slice:     slice,
		}
	}
	return handles, nil
}
