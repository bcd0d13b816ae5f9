package sorter

import (
	"fmt"
	"slices"

	"matrixsort/internal/common"
)

// SortPartition ordena en su lugar el slice exclusivo de un worker.
func SortPartition(h common.WorkerHandle) {
	slices.Sort(h.Slice)
}

// MergeAdjacent mezcla dos corridas ordenadas contiguas seq[:mid] y seq[mid:]
// escribiendo el resultado en seq. Es estable: con empate gana la izquierda.
// scratch se reutiliza si tiene capacidad suficiente; devuelve el scratch usado.
func MergeAdjacent(seq []int, mid int, scratch []int) []int {
	if mid <= 0 || mid >= len(seq) {
		return scratch
	}
	// Ya ordenado: el ultimo de la izquierda no supera al primero de la derecha.
	if seq[mid-1] <= seq[mid] {
		return scratch
	}
	if cap(scratch) < len(seq) {
		scratch = make([]int, len(seq))
	}
	tmp := scratch[:len(seq)]
	copy(tmp, seq)
	left, right := tmp[:mid], tmp[mid:]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			seq[k] = left[i]
			i++
		} else {
			seq[k] = right[j]
			j++
		}
		k++
	}
	k += copy(seq[k:], left[i:])
	copy(seq[k:], right[j:])
	return scratch
}

// MergeRuns pliega de izquierda a derecha las particiones ya ordenadas:
// [p0] + p1, luego [p0..p1] + p2, hasta cubrir toda la secuencia.
// Las particiones deben venir en orden ascendente y sin huecos.
// progress, si no es nil, se llama despues de cada paso con la cantidad de
// particiones ya plegadas.
func MergeRuns(seq []int, parts []common.Partition, progress func(merged int)) error {
	if len(parts) == 0 {
		return nil
	}
	if parts[0].Low != 0 {
		return fmt.Errorf("la primera particion debe empezar en 0: %s", parts[0])
	}
	var scratch []int
	for i := 1; i < len(parts); i++ {
		p := parts[i]
		if p.Low != parts[i-1].High+1 {
			return fmt.Errorf("particiones no contiguas: %s seguida de %s", parts[i-1], p)
		}
		if p.High >= len(seq) {
			return fmt.Errorf("particion fuera de rango: %s (len=%d)", p, len(seq))
		}
		scratch = MergeAdjacent(seq[:p.High+1], p.Low, scratch)
		if progress != nil {
			progress(i + 1)
		}
	}
	return nil
}
