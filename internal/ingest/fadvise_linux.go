//go:build linux

package ingest

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential avisa al kernel que el archivo se lee de principio a fin.
func adviseSequential(f *os.File) {
	_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
