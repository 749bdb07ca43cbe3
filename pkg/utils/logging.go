package utils

import (
    "os"
    "path/filepath"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var logger *zap.Logger

func Logger() *zap.Logger {
    if logger != nil { return logger }
    logger = buildLogger()
    return logger
}

func buildLogger() *zap.Logger {
    lvl := parseLevel(os.Getenv("LOG_LEVEL"))
    enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

    logFile := os.Getenv("LOG_FILE")
    if logFile == "" {
        return zap.New(zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
    }
    _ = os.MkdirAll(filepath.Dir(logFile), 0o755)
    f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return zap.New(zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
    }
    fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
    consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
    return zap.New(zapcore.NewTee(fileCore, consoleCore))
}

func parseLevel(s string) zapcore.Level {
    switch s {
    case "debug":
        return zapcore.DebugLevel
    case "warn":
        return zapcore.WarnLevel
    case "error":
        return zapcore.ErrorLevel
    default:
        return zapcore.InfoLevel
    }
}
