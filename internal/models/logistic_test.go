package models

import (
	"math/rand"
	"testing"
)

func blobDataset(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, 0, n)
	y := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			X = append(X, []float64{2 + rng.NormFloat64()*0.5, 2 + rng.NormFloat64()*0.5})
			y = append(y, 1)
		} else {
			X = append(X, []float64{-2 + rng.NormFloat64()*0.5, -2 + rng.NormFloat64()*0.5})
			y = append(y, 0)
		}
	}
	return X, y
}

func TestLogisticRegressionConverges(t *testing.T) {
	X, y := blobDataset(400, 7)
	m := NewLogisticRegression()
	m.Epochs = 50
	m.LearningRate = 0.1
	m.Seed = 7
	losses, err := m.FitTrace(X, y)
	if err != nil {
		t.Fatal(err)
	}
	if len(losses) != 50 {
		t.Fatalf("esperadas 50 épocas de trace, veio %d", len(losses))
	}
	if losses[len(losses)-1] >= losses[0] {
		t.Fatalf("loss não caiu: inicial=%g final=%g", losses[0], losses[len(losses)-1])
	}
	acc := 0
	for i, p := range m.Predict(X) {
		if p == y[i] {
			acc++
		}
	}
	if float64(acc)/float64(len(y)) < 0.95 {
		t.Fatalf("acurácia baixa em dados separáveis: %d/%d", acc, len(y))
	}
}

func TestLogisticRegressionDeterministicWithSeed(t *testing.T) {
	X, y := blobDataset(200, 3)
	a := NewLogisticRegression()
	b := NewLogisticRegression()
	a.Epochs, b.Epochs = 20, 20
	a.Seed, b.Seed = 11, 11
	if err := a.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	for i := range a.W {
		if a.W[i] != b.W[i] {
			t.Fatalf("mesma semente deveria dar os mesmos pesos: %v vs %v", a.W, b.W)
		}
	}
	if a.B != b.B {
		t.Fatalf("mesma semente deveria dar o mesmo viés: %g vs %g", a.B, b.B)
	}
}

func TestLogisticRegressionRaggedInput(t *testing.T) {
	X := [][]float64{{1, 2}, {1}}
	y := []int{1, 0}
	m := NewLogisticRegression()
	m.Epochs = 1
	if err := m.Fit(X, y); err == nil {
		t.Fatal("esperado erro com linhas de dimensões diferentes")
	}
}

func TestLogisticRegressionUnfitted(t *testing.T) {
	m := NewLogisticRegression()
	ps := m.PredictProba([][]float64{{1, 2}, {3, 4}})
	for _, p := range ps {
		if p != 0.5 {
			t.Fatalf("modelo sem treino deveria prever 0.5, veio %g", p)
		}
	}
}

func TestEnsembleAveragesMembers(t *testing.T) {
	X, y := blobDataset(200, 5)
	en := NewEnsemble()
	en.NEstimators = 3
	en.Epochs = 20
	en.Seed = 5
	if err := en.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	if len(en.Members) != 3 {
		t.Fatalf("esperados 3 membros, veio %d", len(en.Members))
	}
	ps := en.PredictProba(X)
	for i, p := range ps {
		if p < 0 || p > 1 {
			t.Fatalf("probabilidade fora de [0,1] no índice %d: %g", i, p)
		}
	}
	acc := 0
	for i, p := range en.Predict(X) {
		if p == y[i] {
			acc++
		}
	}
	if float64(acc)/float64(len(y)) < 0.95 {
		t.Fatalf("ensemble com acurácia baixa: %d/%d", acc, len(y))
	}
}

func TestPriorRate(t *testing.T) {
	pr := NewPrior()
	if err := pr.Fit(nil, []int{1, 1, 1, 0}); err != nil {
		t.Fatal(err)
	}
	if pr.Rate != 0.75 {
		t.Fatalf("taxa esperada 0.75, veio %g", pr.Rate)
	}
	ps := pr.PredictProba(make([][]float64, 3))
	for _, p := range ps {
		if p != 0.75 {
			t.Fatalf("Prior deveria prever a taxa do treino, veio %g", p)
		}
	}
	for _, c := range pr.Predict(make([][]float64, 2)) {
		if c != 1 {
			t.Fatalf("com taxa 0.75 a classe prevista deveria ser 1, veio %d", c)
		}
	}
}
