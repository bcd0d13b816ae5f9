package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"matrixsort/internal/common"
	"matrixsort/internal/config"
	"matrixsort/internal/pipeline"
)

// Se ejecuta el pipeline completo
func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run devuelve el codigo de salida: 0 ok, 1 error de ejecucion, 2 error de uso.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("matrixsort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Duration("barrier-timeout", 30*time.Second, "tiempo maximo de espera en cada barrera (0 = sin limite)")
	maxThreads := fs.Int("max-threads", common.MaxThreads, "limite duro de hilos")
	quiet := fs.Bool("quiet", false, "no imprimir logs de progreso")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Uso: %s\n", config.Usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.ParseArgs(fs.Args(), *maxThreads)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		fs.Usage()
		return 2
	}
	cfg.BarrierTimeout = *timeout

	log.SetOutput(stderr)
	if *quiet {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := pipeline.Run(ctx, cfg); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		if errors.Is(err, config.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
