package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"matrixsort/internal/common"
)

// ErrUsage envuelve todos los errores de forma de argumentos.
var ErrUsage = errors.New("uso invalido")

const Usage = "matrixsort [flags] <n_threads> <entrada1> [entrada2 ...] -o <salida>"

// Config es la configuracion completa de una corrida.
type Config struct {
	Threads        int
	Inputs         []string
	Output         string
	MaxThreads     int
	BarrierTimeout time.Duration
}

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ParseArgs valida los argumentos posicionales:
// <n_threads> <entrada>... -o <salida>. Se valida todo antes de lanzar workers.
func ParseArgs(args []string, maxThreads int) (Config, error) {
	cfg := Config{MaxThreads: maxThreads}
	if maxThreads < 1 || maxThreads > common.MaxThreads {
		return cfg, usageErr("max-threads debe estar entre 1 y %d, se recibio %d", common.MaxThreads, maxThreads)
	}
	if len(args) == 0 {
		return cfg, usageErr("faltan argumentos")
	}

	threads, err := strconv.Atoi(args[0])
	if err != nil {
		return cfg, usageErr("n_threads %q no es un entero", args[0])
	}
	if threads < 1 || threads > maxThreads {
		return cfg, usageErr("n_threads debe estar entre 1 y %d, se recibio %d", maxThreads, threads)
	}
	cfg.Threads = threads

	sep := -1
	for i, a := range args[1:] {
		if a != common.OutputTerminator {
			continue
		}
		if sep != -1 {
			return cfg, usageErr("%s aparece mas de una vez", common.OutputTerminator)
		}
		sep = i + 1
	}
	if sep == -1 {
		return cfg, usageErr("falta %s <salida>", common.OutputTerminator)
	}

	cfg.Inputs = args[1:sep]
	if len(cfg.Inputs) == 0 {
		return cfg, usageErr("se necesita al menos un archivo de entrada")
	}
	rest := args[sep+1:]
	if len(rest) != 1 {
		return cfg, usageErr("%s debe ir seguido de exactamente un archivo de salida, se recibieron %d", common.OutputTerminator, len(rest))
	}
	cfg.Output = rest[0]
	if cfg.Output == "" {
		return cfg, usageErr("el archivo de salida esta vacio")
	}

	out := filepath.Clean(cfg.Output)
	for i, in := range cfg.Inputs {
		if in == "" {
			return cfg, usageErr("la entrada %d esta vacia", i)
		}
		if filepath.Clean(in) == out {
			return cfg, usageErr("la salida %s pisaria la entrada %d", cfg.Output, i)
		}
	}
	return cfg, nil
}
