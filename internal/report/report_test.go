package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"matrixsort/internal/common"
)

func TestChecksum_Deterministic(t *testing.T) {
	a := Checksum([]byte("1\t\t2\t\t"))
	b := Checksum([]byte("1\t\t2\t\t"))
	c := Checksum([]byte("2\t\t1\t\t"))
	if a != b {
		t.Errorf("El mismo contenido dio checksums distintos: %x vs %x", a, b)
	}
	if a == c {
		t.Errorf("Contenidos distintos dieron el mismo checksum: %x", a)
	}
}

func TestNewRunReport_UniqueIDs(t *testing.T) {
	r1 := NewRunReport("out.txt", []string{"a"}, 2)
	r2 := NewRunReport("out.txt", []string{"a"}, 2)
	if r1.RunID == "" || r1.RunID == r2.RunID {
		t.Errorf("RunID invalido o repetido: %q %q", r1.RunID, r2.RunID)
	}
}

func TestPublish(t *testing.T) {
	var buf bytes.Buffer
	original := Output
	Output = &buf
	defer func() { Output = original }()

	rep := common.RunReport{OutputPath: "out.txt", TotalSize: 5, Threads: 2, DurationMS: 1500, Checksum: 0xabc}
	if err := Publish(rep); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"out.txt" generado`, "Total de entradas: 5", "Threads: 2", "Tiempo: 1.5s", "0000000000000abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("Falta %q en el reporte:\n%s", want, out)
		}
	}
}

func TestPublishJSON(t *testing.T) {
	var buf bytes.Buffer
	rep := common.RunReport{RunID: "r-1", TotalSize: 3, EffectiveThreads: 3}
	if err := PublishJSON(&buf, rep); err != nil {
		t.Fatal(err)
	}
	var back common.RunReport
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("JSON invalido: %v", err)
	}
	if back.RunID != "r-1" || back.EffectiveThreads != 3 {
		t.Errorf("Reporte decodificado incorrecto: %+v", back)
	}
}
