package logreg

import (
    "fmt"
    "math"
)

// eps mantém a probabilidade longe de 0 e 1 antes do logaritmo.
const eps = 1e-12

func Activate(z float64) float64 {
    if z >= 0 {
        return 1.0 / (1.0 + math.Exp(-z))
    }
    e := math.Exp(z)
    return e / (1.0 + e)
}

func Predict(x, w []float64, b float64) (float64, error) {
    if len(x) != len(w) {
        return 0, fmt.Errorf("logreg: dimensões incompatíveis: features=%d pesos=%d", len(x), len(w))
    }
    z := b
    for i := range x { z += w[i] * x[i] }
    return Activate(z), nil
}

func LogLoss(y int, p float64) float64 {
    if p < eps { p = eps }
    if p > 1-eps { p = 1 - eps }
    if y == 1 { return -math.Log(p) }
    return -math.Log(1 - p)
}

// Update aplica um passo de gradiente sobre a log-verossimilhança de uma
// única amostra. O sinal do gradiente é (y - p); invertê-lo diverge.
func Update(x []float64, y int, w []float64, b, lr float64) ([]float64, float64, error) {
    p, err := Predict(x, w, b)
    if err != nil { return nil, 0, err }
    g := float64(y) - p
    w2 := make([]float64, len(w))
    for i := range w { w2[i] = w[i] + lr*g*x[i] }
    return w2, b + lr*g, nil
}
