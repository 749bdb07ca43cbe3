package features

import (
    "fmt"

    "admissao/internal/data"
)

const numRanks = 4

// OneHot devolve um vetor de largura width com 1.0 na posição index.
func OneHot(index, width int) ([]float64, error) {
    if width <= 0 {
        return nil, fmt.Errorf("features: largura inválida %d", width)
    }
    if index < 0 || index >= width {
        return nil, fmt.Errorf("features: índice %d fora de [0,%d)", index, width)
    }
    out := make([]float64, width)
    out[index] = 1.0
    return out, nil
}

// Vectorize normaliza as notas e aplica one-hot no rank da escola.
func Vectorize(a data.Admission) ([]float64, []string) {
    names := []string{"GreNorm", "GpaNorm"}
    vec := []float64{a.GRE / 800.0, a.GPA / 4.0}

    rank := a.Rank
    if rank < 1 { rank = 1 }
    if rank > numRanks { rank = numRanks }
    hot, _ := OneHot(rank-1, numRanks)
    for r := 1; r <= numRanks; r++ {
        names = append(names, fmt.Sprintf("Rank_%d", r))
    }
    vec = append(vec, hot...)

    return vec, names
}

// Dim é a largura do vetor produzido por Vectorize.
func Dim() int { return 2 + numRanks }

func BuildAdmission(gre, gpa float64, rank int) data.Admission {
    return data.Admission{GRE: gre, GPA: gpa, Rank: rank}
}
