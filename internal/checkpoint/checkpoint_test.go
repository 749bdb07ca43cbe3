package checkpoint

import (
	"path/filepath"
	"testing"

	"admissao/internal/models"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "logreg.gob")
	m := models.NewLogisticRegression()
	m.W = []float64{0.25, -1.5, 3.0}
	m.B = 0.125
	if err := Save(path, m); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.W {
		if got.W[i] != m.W[i] {
			t.Fatalf("pesos restaurados %v, esperado %v", got.W, m.W)
		}
	}
	if got.B != m.B {
		t.Fatalf("viés restaurado %g, esperado %g", got.B, m.B)
	}
}

func TestLoadDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logreg.gob")
	m := models.NewLogisticRegression()
	m.W = []float64{1, 2}
	if err := Save(path, m); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, 6); err == nil {
		t.Fatal("esperado erro de dimensão ao restaurar checkpoint")
	}
	if _, err := Load(path, 0); err != nil {
		t.Fatalf("wantDim=0 deveria pular a checagem: %v", err)
	}
}

func TestLoadMissingOrEmpty(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "nope.gob"), 2); err == nil {
		t.Fatal("esperado erro para arquivo inexistente")
	}
	empty := models.NewLogisticRegression()
	path := filepath.Join(dir, "empty.gob")
	if err := Save(path, empty); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, 2); err == nil {
		t.Fatal("esperado erro para checkpoint sem pesos")
	}
}
