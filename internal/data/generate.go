package data

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// Pesos do modelo verdadeiro usado para sortear os rótulos sintéticos.
// Quanto melhor a nota e o rank da escola, maior a chance de admissão.
var trueRankEffect = [4]float64{1.0, 0.4, -0.3, -0.9}

const (
    trueGRECoef = 3.2
    trueGPACoef = 2.6
    trueBias    = -4.2
)

func GenerateSyntheticAdmissions(n int, seed int64, outPath string) error {
    if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
        return err
    }
    f, err := os.Create(outPath)
    if err != nil {
        return err
    }
    defer f.Close()

    w := csv.NewWriter(f)
    defer w.Flush()

    header := []string{"gre", "gpa", "rank", "admit"}
    if err := w.Write(header); err != nil {
        return err
    }

    rng := rand.New(rand.NewSource(seed))
    for i := 0; i < n; i++ {
        gre := clamp(math.Round((580+115*rng.NormFloat64())/10)*10, 220, 800)
        gpa := clamp(math.Round((3.4+0.38*rng.NormFloat64())*100)/100, 2.0, 4.0)
        rank := 1 + rng.Intn(4)

        z := trueGRECoef*(gre/800) + trueGPACoef*(gpa/4) + trueRankEffect[rank-1] + trueBias
        p := 1.0 / (1.0 + math.Exp(-z))
        admit := 0
        if rng.Float64() < p { admit = 1 }

        rec := []string{
            strconv.FormatFloat(gre, 'f', 0, 64),
            strconv.FormatFloat(gpa, 'f', 2, 64),
            strconv.Itoa(rank),
            strconv.Itoa(admit),
        }
        if err := w.Write(rec); err != nil {
            return err
        }
    }
    return nil
}

func LoadAdmissions(path string) ([]Admission, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()

    r := csv.NewReader(f)
    rows, err := r.ReadAll()
    if err != nil {
        return nil, err
    }
    if len(rows) < 2 {
        return nil, fmt.Errorf("csv %s vazio", path)
    }

    out := make([]Admission, 0, len(rows)-1)
    for i := 1; i < len(rows); i++ {
        row := rows[i]
        if len(row) < 4 {
            return nil, fmt.Errorf("csv %s: linha %d com %d colunas", path, i+1, len(row))
        }
        gre, err := strconv.ParseFloat(row[0], 64)
        if err != nil { return nil, fmt.Errorf("csv %s: linha %d: gre: %w", path, i+1, err) }
        gpa, err := strconv.ParseFloat(row[1], 64)
        if err != nil { return nil, fmt.Errorf("csv %s: linha %d: gpa: %w", path, i+1, err) }
        rank, err := strconv.Atoi(row[2])
        if err != nil { return nil, fmt.Errorf("csv %s: linha %d: rank: %w", path, i+1, err) }
        admit, err := strconv.Atoi(row[3])
        if err != nil { return nil, fmt.Errorf("csv %s: linha %d: admit: %w", path, i+1, err) }
        out = append(out, Admission{GRE: gre, GPA: gpa, Rank: rank, Admit: admit})
    }
    return out, nil
}

func clamp(v, lo, hi float64) float64 {
    if v < lo { return lo }
    if v > hi { return hi }
    return v
}
