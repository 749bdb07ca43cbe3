package features

import (
	"testing"

	"admissao/internal/data"
)

func TestOneHot(t *testing.T) {
	v, err := OneHot(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0, 1, 0}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("OneHot(2,4) = %v, esperado %v", v, want)
		}
	}
}

func TestOneHotInvalid(t *testing.T) {
	cases := []struct{ index, width int }{
		{-1, 4},
		{4, 4},
		{0, 0},
	}
	for _, c := range cases {
		if _, err := OneHot(c.index, c.width); err == nil {
			t.Fatalf("OneHot(%d,%d) deveria falhar", c.index, c.width)
		}
	}
}

func TestVectorize(t *testing.T) {
	v, names := Vectorize(data.Admission{GRE: 400, GPA: 2.0, Rank: 2})
	if len(v) != Dim() || len(names) != Dim() {
		t.Fatalf("esperadas %d features, veio %d (%d nomes)", Dim(), len(v), len(names))
	}
	if v[0] != 0.5 {
		t.Fatalf("GRE 400 deveria normalizar para 0.5, veio %g", v[0])
	}
	if v[1] != 0.5 {
		t.Fatalf("GPA 2.0 deveria normalizar para 0.5, veio %g", v[1])
	}
	if v[2] != 0 || v[3] != 1 || v[4] != 0 || v[5] != 0 {
		t.Fatalf("rank 2 deveria acender só Rank_2: %v", v[2:])
	}
	if names[3] != "Rank_2" {
		t.Fatalf("nome inesperado: %v", names)
	}
}

func TestVectorizeClampsRank(t *testing.T) {
	lo, _ := Vectorize(data.Admission{Rank: 0})
	if lo[2] != 1 {
		t.Fatalf("rank abaixo de 1 deveria virar Rank_1: %v", lo[2:])
	}
	hi, _ := Vectorize(data.Admission{Rank: 9})
	if hi[5] != 1 {
		t.Fatalf("rank acima de 4 deveria virar Rank_4: %v", hi[2:])
	}
}
