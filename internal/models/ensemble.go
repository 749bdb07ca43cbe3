package models

import (
    "math/rand"
)

type Ensemble struct {
    NEstimators  int
    Epochs       int
    LearningRate float64
    Seed         int64
    Members      []*LogisticRegression
}

func NewEnsemble() *Ensemble {
    return &Ensemble{NEstimators: 10, Epochs: 100, LearningRate: 0.1, Seed: 42, Members: []*LogisticRegression{}}
}

func (en *Ensemble) Name() string { return "EnsembleLogistic" }

func (en *Ensemble) Fit(X [][]float64, y []int) error {
    if en.NEstimators <= 0 { en.NEstimators = 10 }
    n := len(X)
    rng := rand.New(rand.NewSource(en.Seed))
    en.Members = make([]*LogisticRegression, 0, en.NEstimators)
    for k := 0; k < en.NEstimators; k++ {
        idx := make([]int, n)
        for i := 0; i < n; i++ { idx[i] = rng.Intn(n) }
        Xb := make([][]float64, n)
        yb := make([]int, n)
        for i := 0; i < n; i++ { Xb[i] = X[idx[i]]; yb[i] = y[idx[i]] }
        m := NewLogisticRegression()
        m.Epochs = en.Epochs
        m.LearningRate = en.LearningRate
        m.Seed = en.Seed + int64(k+1)
        if err := m.Fit(Xb, yb); err != nil { return err }
        en.Members = append(en.Members, m)
    }
    return nil
}

func (en *Ensemble) Predict(X [][]float64) []int {
    ps := en.PredictProba(X)
    out := make([]int, len(ps))
    for i := range ps { if ps[i] >= 0.5 { out[i] = 1 } }
    return out
}

func (en *Ensemble) PredictProba(X [][]float64) []float64 {
    n := len(X)
    if len(en.Members) == 0 { out := make([]float64, n); for i := range out { out[i] = 0.5 }; return out }
    out := make([]float64, n)
    for _, m := range en.Members {
        p := m.PredictProba(X)
        for i := 0; i < n; i++ { out[i] += p[i] }
    }
    k := float64(len(en.Members))
    for i := 0; i < n; i++ { out[i] /= k }
    return out
}
