package models

// Prior prevê a taxa de positivos do treino para qualquer amostra.
// Serve de linha de base e de fallback quando não há checkpoint.
type Prior struct {
    Rate float64
}

func NewPrior() *Prior { return &Prior{Rate: 0.5} }

func (pr *Prior) Name() string { return "Prior" }

func (pr *Prior) Fit(X [][]float64, y []int) error {
    if len(y) == 0 { return nil }
    pos := 0
    for _, v := range y { if v == 1 { pos++ } }
    pr.Rate = float64(pos) / float64(len(y))
    return nil
}

func (pr *Prior) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    if pr.Rate >= 0.5 {
        for i := range out { out[i] = 1 }
    }
    return out
}

func (pr *Prior) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range out { out[i] = pr.Rate }
    return out
}
