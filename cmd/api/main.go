package main

import (
    "net/http"
    "os"
    "path/filepath"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "admissao/internal/checkpoint"
    "admissao/internal/features"
    "admissao/internal/models"
    "admissao/pkg/utils"
)

var model models.Model
var featureNames []string

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    path := os.Getenv("MODEL_PATH")
    if path == "" { path = filepath.Join("models", "logreg_model.gob") }
    if m, err := checkpoint.Load(path, features.Dim()); err == nil {
        model = m
        logger.Info("Checkpoint carregado", zap.String("path", path))
    } else {
        logger.Warn("Sem checkpoint utilizável, usando linha de base", zap.String("path", path), zap.Error(err))
        model = models.NewPrior()
    }
    _, featureNames = features.Vectorize(features.BuildAdmission(0, 0, 1))

    r := gin.Default()

    r.GET("/health", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok", "model": model.Name()})
    })
    r.GET("/model", handleModel)

    api := r.Group("/")
    api.Use(apiKeyMiddleware)
    api.POST("/predict", handlePredict)
    api.POST("/batch", handleBatch)

    port := os.Getenv("PORT")
    if port == "" { port = "8080" }
    r.Run(":" + port)
}

func apiKeyMiddleware(c *gin.Context) {
    key := os.Getenv("API_KEY")
    if key == "" { c.Next(); return }
    got := c.GetHeader("X-API-Key")
    if got != key { c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }
    c.Next()
}

type predictReq struct {
    GRE  float64 `json:"gre"`
    GPA  float64 `json:"gpa"`
    Rank int     `json:"rank"`
}

func handleModel(c *gin.Context) {
    out := gin.H{"model": model.Name()}
    if lr, ok := model.(*models.LogisticRegression); ok {
        ws := gin.H{}
        for i, nm := range featureNames {
            if i < len(lr.W) { ws[nm] = lr.W[i] }
        }
        out["weights"] = ws
        out["bias"] = lr.B
    }
    c.JSON(http.StatusOK, out)
}

func handlePredict(c *gin.Context) {
    var req predictReq
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return
    }
    v, _ := features.Vectorize(features.BuildAdmission(req.GRE, req.GPA, req.Rank))
    p := model.PredictProba([][]float64{v})[0]
    c.JSON(http.StatusOK, gin.H{"score": p, "chance": chanceBand(p), "model": model.Name()})
}

func handleBatch(c *gin.Context) {
    var items []predictReq
    if err := c.BindJSON(&items); err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return }
    X := make([][]float64, 0, len(items))
    for _, it := range items {
        v, _ := features.Vectorize(features.BuildAdmission(it.GRE, it.GPA, it.Rank))
        X = append(X, v)
    }
    ps := model.PredictProba(X)
    out := make([]gin.H, len(items))
    for i := range items {
        out[i] = gin.H{"score": ps[i], "chance": chanceBand(ps[i])}
    }
    c.JSON(http.StatusOK, out)
}

func chanceBand(p float64) string {
    switch {
    case p >= 0.8:
        return "alta"
    case p >= 0.5:
        return "media"
    case p >= 0.25:
        return "baixa"
    default:
        return "muito_baixa"
    }
}
