package checkpoint

import (
    "encoding/gob"
    "fmt"
    "os"
    "path/filepath"

    "admissao/internal/models"
)

func Save(path string, m *models.LogisticRegression) error {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return err
    }
    f, err := os.Create(path)
    if err != nil {
        return err
    }
    defer f.Close()
    if err := gob.NewEncoder(f).Encode(m); err != nil {
        return fmt.Errorf("serializar modelo em %s: %w", path, err)
    }
    return nil
}

// Load restaura um checkpoint e confere que a dimensão dos pesos bate com
// a das features que serão passadas depois. wantDim <= 0 pula a checagem.
func Load(path string, wantDim int) (*models.LogisticRegression, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()
    var m models.LogisticRegression
    if err := gob.NewDecoder(f).Decode(&m); err != nil {
        return nil, fmt.Errorf("ler modelo de %s: %w", path, err)
    }
    if len(m.W) == 0 {
        return nil, fmt.Errorf("checkpoint %s sem pesos", path)
    }
    if wantDim > 0 && len(m.W) != wantDim {
        return nil, fmt.Errorf("checkpoint %s: pesos com dimensão %d, esperado %d", path, len(m.W), wantDim)
    }
    return &m, nil
}
