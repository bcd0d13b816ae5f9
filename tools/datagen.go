package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// Genera archivos de enteros aleatorios para probar matrixsort a mano:
//   go run tools/datagen.go -files 4 -max 20000 -dir data/inputs
func main() {
	files := flag.Int("files", 4, "cantidad de archivos")
	maxSize := flag.Int("max", 20000, "maximo de enteros por archivo")
	dir := flag.String("dir", "data/inputs", "directorio de salida")
	seed := flag.Int64("seed", 1, "semilla del generador")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	rng := rand.New(rand.NewSource(*seed))

	for i := 0; i < *files; i++ {
		path := filepath.Join(*dir, fmt.Sprintf("input_%02d.txt", i))
		n := rng.Intn(*maxSize + 1)
		fmt.Printf("Generando %s (%d enteros) ...\n", path, n)
		if err := writeRandom(path, n, rng); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
	fmt.Println(" Todos los datos generados exitosamente.")
}

func writeRandom(path string, n int, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for j := 0; j < n; j++ {
		fmt.Fprintln(w, rng.Intn(2001)-1000)
	}
	return w.Flush()
}
