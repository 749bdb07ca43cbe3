package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.uber.org/zap"

	"admissao/internal/checkpoint"
	"admissao/internal/data"
	"admissao/internal/features"
	"admissao/internal/metrics"
	"admissao/internal/models"
	"admissao/pkg/utils"
)

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    regen := flag.Bool("regen", true, "Regenerar dataset sintético")
    n := flag.Int("n", 20000, "Número de registros sintéticos")
    out := flag.String("out", "data/admissions.csv", "Caminho do CSV de entrada/saída")
    epochs := flag.Int("epochs", 200, "Número de épocas de treino")
    lr := flag.Float64("lr", 0.1, "Learning rate do gradiente")
    seed := flag.Int64("seed", 42, "Semente para embaralhamento e inicialização")
    modelPath := flag.String("model_out", "models/logreg_model.gob", "Checkpoint do modelo")
    lossImg := flag.String("loss_out_img", "cmd/api/static/loss_curve.png", "PNG da curva de perda")
    lossCsv := flag.String("loss_out_csv", "data/loss_curve.csv", "CSV da curva de perda")
    curve := flag.Bool("curve", true, "Gerar curva de aprendizagem (PNG e CSV)")
    curvePoints := flag.Int("curve_points", 8, "Quantidade de pontos na curva")
    curveImg := flag.String("curve_out_img", "cmd/api/static/learning_curve.png", "PNG da curva")
    curveCsv := flag.String("curve_out_csv", "data/learning_curve.csv", "CSV da curva")
    curveMin := flag.Int("curve_min", 200, "Tamanho mínimo inicial da curva")
    threshold := flag.Float64("threshold", 0.5, "Threshold para classificação")
    thresholdAuto := flag.Bool("threshold_auto", true, "Escolher o threshold que maximiza F1 no holdout")
    thresholdMetric := flag.String("threshold_metric", "f1", "Métrica para escolher threshold: f1|acc")
    flag.Parse()

    if *regen {
        logger.Info("Gerando dataset sintético", zap.Int("n", *n), zap.String("out", *out))
        if err := data.GenerateSyntheticAdmissions(*n, *seed, *out); err != nil {
            logger.Fatal("Falha ao gerar dataset", zap.Error(err))
        }
    }

    recs, err := data.LoadAdmissions(*out)
    if err != nil { logger.Fatal("Falha ao carregar CSV", zap.Error(err)) }

    X := make([][]float64, 0, len(recs))
    y := make([]int, 0, len(recs))
    var names []string
    for _, rec := range recs {
        v, ns := features.Vectorize(rec)
        X = append(X, v)
        y = append(y, rec.Admit)
        names = ns
    }

    rng := rand.New(rand.NewSource(*seed))
    Xtrain, ytrain, Xtest, ytest := stratifiedSplit(X, y, 0.8, rng)

    var pos, neg int
    for i := range ytrain { if ytrain[i] == 1 { pos++ } else { neg++ } }
    logger.Info("Distribuição da classe no treino", zap.Int("positivos", pos), zap.Int("negativos", neg))

    mdl := models.NewLogisticRegression()
    mdl.Epochs = *epochs
    mdl.LearningRate = *lr
    mdl.Seed = *seed
    losses, err := mdl.FitTrace(Xtrain, ytrain)
    if err != nil { logger.Fatal("Falha ao treinar", zap.Error(err)) }
    logger.Info("Treino concluído",
        zap.Int("epochs", len(losses)),
        zap.Float64("loss_inicial", losses[0]),
        zap.Float64("loss_final", losses[len(losses)-1]),
    )
    for i, nm := range names {
        logger.Info("Peso aprendido", zap.String("feature", nm), zap.Float64("w", mdl.W[i]))
    }
    logger.Info("Viés aprendido", zap.Float64("b", mdl.B))

    probaTest := mdl.PredictProba(Xtest)
    thrUsed := *threshold
    if *thresholdAuto {
        if *thresholdMetric == "acc" { thrUsed, _ = metrics.BestThresholdAcc(ytest, probaTest) } else { thrUsed, _ = metrics.BestThresholdF1(ytest, probaTest) }
    }
    preds := metrics.ProbaToPred(probaTest, thrUsed)
    acc := metrics.Accuracy(ytest, preds)
    prec, rec, f1 := metrics.PRF1(ytest, probaTest, thrUsed)
    logger.Info("Métricas holdout",
        zap.String("model", mdl.Name()),
        zap.Float64("accuracy", acc),
        zap.Float64("f1", f1),
        zap.Float64("precision", prec),
        zap.Float64("recall", rec),
        zap.Float64("roc_auc", metrics.ROCAUC(ytest, probaTest)),
        zap.Float64("pr_auc", metrics.PRAUC(ytest, probaTest)),
        zap.Float64("log_loss", metrics.MeanLogLoss(ytest, probaTest)),
        zap.Float64("threshold", thrUsed),
    )

    base := models.NewPrior()
    _ = base.Fit(Xtrain, ytrain)
    baseProba := base.PredictProba(Xtest)
    logger.Info("Linha de base",
        zap.String("model", base.Name()),
        zap.Float64("accuracy", metrics.Accuracy(ytest, base.Predict(Xtest))),
        zap.Float64("log_loss", metrics.MeanLogLoss(ytest, baseProba)),
    )

    if err := checkpoint.Save(*modelPath, mdl); err != nil {
        logger.Fatal("Falha ao salvar checkpoint", zap.Error(err))
    }
    logger.Info("Modelo salvo", zap.String("path", *modelPath))
    fmt.Println("Modelo:", mdl.Name())

    if err := writeLossCSV(*lossCsv, losses); err != nil {
        logger.Warn("Falha ao salvar CSV da perda", zap.Error(err))
    }
    if err := plotLossPNG(*lossImg, losses); err != nil {
        logger.Warn("Falha ao salvar PNG da perda", zap.Error(err))
    }

    if *curve {
        sizes := computeCurveSizes(len(Xtrain), *curvePoints, *curveMin)
        trainAcc := make([]float64, len(sizes))
        testAcc := make([]float64, len(sizes))
        trainF1 := make([]float64, len(sizes))
        testF1 := make([]float64, len(sizes))
        for k, s := range sizes {
            subX := Xtrain[:s]
            subY := ytrain[:s]
            cm := models.NewLogisticRegression()
            cm.Epochs = *epochs
            cm.LearningRate = *lr
            cm.Seed = *seed
            if err := cm.Fit(subX, subY); err != nil { logger.Fatal("Falha ao treinar no ponto da curva", zap.Error(err)) }
            probaTrain := cm.PredictProba(subX)
            probaTest := cm.PredictProba(Xtest)
            pTrain := metrics.ProbaToPred(probaTrain, thrUsed)
            pTest := metrics.ProbaToPred(probaTest, thrUsed)
            trainAcc[k] = metrics.Accuracy(subY, pTrain)
            testAcc[k] = metrics.Accuracy(ytest, pTest)
            _, _, f1 := metrics.PRF1(subY, probaTrain, thrUsed)
            trainF1[k] = f1
            _, _, f1 = metrics.PRF1(ytest, probaTest, thrUsed)
            testF1[k] = f1
        }
        if err := writeCurveCSV(*curveCsv, sizes, trainAcc, testAcc, trainF1, testF1); err != nil {
            logger.Warn("Falha ao salvar CSV da curva", zap.Error(err))
        }
        if err := plotCurvePNG(*curveImg, sizes, trainAcc, testAcc, trainF1, testF1); err != nil {
            logger.Warn("Falha ao salvar PNG da curva", zap.Error(err))
        } else {
            logger.Info("Curva de aprendizagem gerada", zap.String("png", *curveImg), zap.String("csv", *curveCsv))
        }
    }
}

func stratifiedSplit(X [][]float64, y []int, frac float64, rng *rand.Rand) (Xtrain [][]float64, ytrain []int, Xtest [][]float64, ytest []int) {
    var posIdx, negIdx []int
    for i := range y { if y[i] == 1 { posIdx = append(posIdx, i) } else { negIdx = append(negIdx, i) } }
    rng.Shuffle(len(posIdx), func(i, j int) { posIdx[i], posIdx[j] = posIdx[j], posIdx[i] })
    rng.Shuffle(len(negIdx), func(i, j int) { negIdx[i], negIdx[j] = negIdx[j], negIdx[i] })
    pTrain := int(frac * float64(len(posIdx)))
    nTrain := int(frac * float64(len(negIdx)))
    trainIdx := append(append([]int{}, posIdx[:pTrain]...), negIdx[:nTrain]...)
    testIdx := append(append([]int{}, posIdx[pTrain:]...), negIdx[nTrain:]...)
    rng.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
    rng.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })
    Xtrain, ytrain = make([][]float64, len(trainIdx)), make([]int, len(trainIdx))
    Xtest, ytest = make([][]float64, len(testIdx)), make([]int, len(testIdx))
    for i, idx := range trainIdx { Xtrain[i] = X[idx]; ytrain[i] = y[idx] }
    for i, idx := range testIdx { Xtest[i] = X[idx]; ytest[i] = y[idx] }
    return
}

func writeLossCSV(path string, losses []float64) error {
    if err := os.MkdirAll("data", 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"epoch", "train_loss"}); err != nil { return err }
    for i, l := range losses {
        if err := w.Write([]string{strconv.Itoa(i + 1), fmt.Sprintf("%.6f", l)}); err != nil { return err }
    }
    return nil
}

func plotLossPNG(path string, losses []float64) error {
    p := plot.New()
    p.Title.Text = "Perda por Época"
    p.X.Label.Text = "Época"
    p.Y.Label.Text = "Log-loss média"

    pts := make(plotter.XYs, len(losses))
    for i := range losses { pts[i].X = float64(i + 1); pts[i].Y = losses[i] }
    if err := plotutil.AddLinePoints(p, "Treino", pts); err != nil { return err }
    if err := os.MkdirAll("cmd/api/static", 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func writeCurveCSV(path string, sizes []int, trainAcc, testAcc, trainF1, testF1 []float64) error {
    if err := os.MkdirAll("data", 0o755); err != nil { return err }
    f, err := os.Create(path)
    if err != nil { return err }
    defer f.Close()
    w := csv.NewWriter(f)
    defer w.Flush()
    if err := w.Write([]string{"size", "train_acc", "test_acc", "train_f1", "test_f1"}); err != nil { return err }
    for i := range sizes {
        rec := []string{strconv.Itoa(sizes[i]),
            fmt.Sprintf("%.6f", trainAcc[i]), fmt.Sprintf("%.6f", testAcc[i]),
            fmt.Sprintf("%.6f", trainF1[i]), fmt.Sprintf("%.6f", testF1[i]),
        }
        if err := w.Write(rec); err != nil { return err }
    }
    return nil
}

func plotCurvePNG(path string, sizes []int, trainAcc, testAcc, trainF1, testF1 []float64) error {
    p := plot.New()
    p.Title.Text = "Curva de Aprendizagem"
    p.X.Label.Text = "Amostras de treino"
    p.Y.Label.Text = "Métrica"
    p.Y.Min = 0
    p.Y.Max = 1

    toXY := func(xs []int, ys []float64) plotter.XYs {
        pts := make(plotter.XYs, len(xs))
        for i := range xs { pts[i].X = float64(xs[i]); pts[i].Y = ys[i] }
        return pts
    }
    if err := plotutil.AddLinePoints(p,
        "Treino (Acc)", toXY(sizes, trainAcc),
        "Teste (Acc)", toXY(sizes, testAcc),
        "Treino (F1)", toXY(sizes, trainF1),
        "Teste (F1)", toXY(sizes, testF1),
    ); err != nil { return err }
    if err := os.MkdirAll("cmd/api/static", 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func computeCurveSizes(totalTrain, points, min int) []int {
    if points <= 1 { points = 2 }
    if min < 10 { min = 10 }
    if min > totalTrain { min = int(math.Max(10, float64(totalTrain)/2)) }
    ratio := math.Pow(float64(totalTrain)/float64(min), 1.0/float64(points-1))
    sizes := make([]int, 0, points)
    last := -1
    for i := 0; i < points; i++ {
        s := int(math.Round(float64(min) * math.Pow(ratio, float64(i))))
        if s > totalTrain { s = totalTrain }
        if s <= last { s = last + 1 }
        if s > totalTrain { s = totalTrain }
        if s != last { sizes = append(sizes, s); last = s }
    }
    if sizes[len(sizes)-1] != totalTrain {
        sizes[len(sizes)-1] = totalTrain
    }
    return sizes
}
