package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"admissao/internal/data"
	"admissao/internal/features"
	"admissao/internal/metrics"
	"admissao/internal/models"
)

func main() {
    lrs := flag.String("lrs", "0.001,0.01,0.1,0.5", "Learning rates a comparar (separados por vírgula)")
    epochs := flag.Int("epochs", 200, "Número de épocas por treino")
    seed := flag.Int64("seed", 42, "Semente para embaralhamento e inicialização")
    estimators := flag.Int("estimators", 10, "Número de membros do ensemble")
    dataPath := flag.String("data", "data/admissions.csv", "CSV de entrada")
    outImg := flag.String("out_img", "cmd/api/static/lr_curves.png", "PNG de saída")
    outCsv := flag.String("out_csv", "data/lr_curves.csv", "CSV de saída")
    flag.Parse()

    X, y, err := loadXY(*dataPath)
    if err != nil { fmt.Println("Falha ao carregar dataset:", err); return }
    if len(X) == 0 { fmt.Println("Dataset vazio"); return }

    rng := rand.New(rand.NewSource(*seed))
    idx := rng.Perm(len(X))
    shX := make([][]float64, len(X))
    shY := make([]int, len(y))
    for i, j := range idx { shX[i] = X[j]; shY[i] = y[j] }
    split := int(0.8 * float64(len(shX)))
    Xtrain, ytrain := shX[:split], shY[:split]
    Xtest, ytest := shX[split:], shY[split:]

    var rates []float64
    for _, s := range strings.Split(*lrs, ",") {
        v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
        if err != nil { fmt.Println("Learning rate inválido:", s); return }
        rates = append(rates, v)
    }

    curves := make([][]float64, len(rates))
    bestLR := rates[0]
    bestLoss := -1.0
    for k, lr := range rates {
        mdl := models.NewLogisticRegression()
        mdl.Epochs = *epochs
        mdl.LearningRate = lr
        mdl.Seed = *seed
        losses, err := mdl.FitTrace(Xtrain, ytrain)
        if err != nil { fmt.Printf("lr=%g: falha no treino: %v\n", lr, err); continue }
        curves[k] = losses
        holdout := metrics.MeanLogLoss(ytest, mdl.PredictProba(Xtest))
        fmt.Printf("%s | lr=%g | loss_final=%.4f | loss_holdout=%.4f\n", mdl.Name(), lr, losses[len(losses)-1], holdout)
        if bestLoss < 0 || holdout < bestLoss { bestLoss = holdout; bestLR = lr }
    }

    if err := writeCurvesCSV(*outCsv, rates, curves); err != nil {
        fmt.Println("Falha ao salvar CSV:", err)
    }
    if err := plotCurvesPNG(*outImg, rates, curves); err != nil {
        fmt.Println("Falha ao salvar PNG:", err)
    } else {
        fmt.Println("Curvas salvas em", *outImg)
    }

    single := models.NewLogisticRegression()
    single.Epochs = *epochs
    single.LearningRate = bestLR
    single.Seed = *seed
    if err := single.Fit(Xtrain, ytrain); err != nil { fmt.Println("Falha treino:", err); return }

    en := models.NewEnsemble()
    en.NEstimators = *estimators
    en.Epochs = *epochs
    en.LearningRate = bestLR
    en.Seed = *seed
    if err := en.Fit(Xtrain, ytrain); err != nil { fmt.Println("Falha treino ensemble:", err); return }

    for _, mdl := range []models.Model{single, en} {
        ps := mdl.PredictProba(Xtest)
        thr, _ := metrics.BestThresholdF1(ytest, ps)
        acc := metrics.Accuracy(ytest, metrics.ProbaToPred(ps, thr))
        _, _, f1 := metrics.PRF1(ytest, ps, thr)
        fmt.Printf("%s | lr=%g | acc=%.3f | f1=%.3f | roc_auc=%.3f | log_loss=%.4f\n",
            mdl.Name(), bestLR, acc, f1, metrics.ROCAUC(ytest, ps), metrics.MeanLogLoss(ytest, ps))
    }
}

func loadXY(path string) ([][]float64, []int, error) {
    recs, err := data.LoadAdmissions(path)
    if err != nil { return nil, nil, err }
    X := make([][]float64, 0, len(recs))
    y := make([]int, 0, len(recs))
    for _, rec := range recs {
        v, _ := features.Vectorize(rec)
        X = append(X, v)
        y = append(y, rec.Admit)
    }
    return X, y, nil
}

func writeCurvesCSV(path string, rates []float64, curves [][]float64) error {
    if err := os.MkdirAll("data", 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    defer w.Flush()
    header := []string{"epoch"}
    for _, lr := range rates { header = append(header, fmt.Sprintf("loss_lr_%g", lr)) }
    if err := w.Write(header); err != nil { return err }
    maxLen := 0
    for _, c := range curves { if len(c) > maxLen { maxLen = len(c) } }
    for e := 0; e < maxLen; e++ {
        rec := []string{strconv.Itoa(e + 1)}
        for _, c := range curves {
            if e < len(c) { rec = append(rec, fmt.Sprintf("%.6f", c[e])) } else { rec = append(rec, "") }
        }
        if err := w.Write(rec); err != nil { return err }
    }
    return nil
}

func plotCurvesPNG(path string, rates []float64, curves [][]float64) error {
    p := plot.New()
    p.Title.Text = "Log-loss por Época"
    p.X.Label.Text = "Época"
    p.Y.Label.Text = "Log-loss média (treino)"

    args := make([]interface{}, 0, 2*len(rates))
    for k, c := range curves {
        if len(c) == 0 { continue }
        pts := make(plotter.XYs, len(c))
        for i := range c { pts[i].X = float64(i + 1); pts[i].Y = c[i] }
        args = append(args, fmt.Sprintf("lr=%g", rates[k]), pts)
    }
    if err := plotutil.AddLinePoints(p, args...); err != nil { return err }
    if err := os.MkdirAll("cmd/api/static", 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
