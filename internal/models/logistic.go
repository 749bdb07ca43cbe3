package models

import (
    "fmt"
    "math"
    "math/rand"

    "admissao/internal/logreg"
)

type LogisticRegression struct {
    W []float64
    B float64

    Epochs       int
    LearningRate float64
    Seed         int64
}

func NewLogisticRegression() *LogisticRegression {
    return &LogisticRegression{Epochs: 100, LearningRate: 0.1, Seed: 42}
}

func (m *LogisticRegression) Name() string { return "LogisticRegression" }

func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
    _, err := m.FitTrace(X, y)
    return err
}

// FitTrace treina e devolve a log-loss média ao fim de cada época.
func (m *LogisticRegression) FitTrace(X [][]float64, y []int) ([]float64, error) {
    n := len(X)
    if n == 0 { return nil, nil }
    d := len(X[0])
    if m.Epochs <= 0 { m.Epochs = 100 }

    rng := rand.New(rand.NewSource(m.Seed))
    m.W = make([]float64, d)
    for i := range m.W { m.W[i] = rng.NormFloat64() / math.Sqrt(float64(d)) }
    m.B = 0

    order := make([]int, n)
    for i := range order { order[i] = i }

    losses := make([]float64, 0, m.Epochs)
    for e := 0; e < m.Epochs; e++ {
        rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
        for _, i := range order {
            w2, b2, err := logreg.Update(X[i], y[i], m.W, m.B, m.LearningRate)
            if err != nil { return nil, err }
            m.W, m.B = w2, b2
        }
        if !m.finite() {
            return nil, fmt.Errorf("parâmetros não finitos após a época %d (learning rate %g alto demais?)", e+1, m.LearningRate)
        }
        losses = append(losses, m.meanLoss(X, y))
    }
    return losses, nil
}

func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    if m.W == nil {
        for i := range out { out[i] = 0.5 }
        return out
    }
    for i := range X {
        p, err := logreg.Predict(X[i], m.W, m.B)
        if err != nil { panic(err) }
        out[i] = p
    }
    return out
}

func (m *LogisticRegression) Predict(X [][]float64) []int {
    ps := m.PredictProba(X)
    out := make([]int, len(ps))
    for i := range ps { if ps[i] >= 0.5 { out[i] = 1 } }
    return out
}

func (m *LogisticRegression) meanLoss(X [][]float64, y []int) float64 {
    if len(X) == 0 { return 0 }
    sum := 0.0
    ps := m.PredictProba(X)
    for i := range ps { sum += logreg.LogLoss(y[i], ps[i]) }
    return sum / float64(len(X))
}

func (m *LogisticRegression) finite() bool {
    for _, w := range m.W {
        if math.IsNaN(w) || math.IsInf(w, 0) { return false }
    }
    return !math.IsNaN(m.B) && !math.IsInf(m.B, 0)
}
