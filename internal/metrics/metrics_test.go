package metrics

import (
	"math"
	"testing"
)

func TestAccuracy(t *testing.T) {
	y := []int{1, 0, 1, 1}
	pred := []int{1, 0, 0, 1}
	if got := Accuracy(y, pred); got != 0.75 {
		t.Fatalf("Accuracy = %g, esperado 0.75", got)
	}
	if got := Accuracy(nil, nil); got != 0 {
		t.Fatalf("Accuracy vazia = %g, esperado 0", got)
	}
}

func TestConfusionAndPRF1(t *testing.T) {
	y := []int{1, 1, 0, 0, 1}
	ps := []float64{0.9, 0.4, 0.8, 0.2, 0.7}
	tp, fp, tn, fn := Confusion(y, ps, 0.5)
	if tp != 2 || fp != 1 || tn != 1 || fn != 1 {
		t.Fatalf("confusão errada: tp=%d fp=%d tn=%d fn=%d", tp, fp, tn, fn)
	}
	prec, rec, f1 := PRF1(y, ps, 0.5)
	if math.Abs(prec-2.0/3.0) > 1e-12 || math.Abs(rec-2.0/3.0) > 1e-12 {
		t.Fatalf("precision/recall errados: %g %g", prec, rec)
	}
	if math.Abs(f1-2.0/3.0) > 1e-12 {
		t.Fatalf("f1 = %g, esperado 2/3", f1)
	}
}

func TestROCAUCPerfectAndInverted(t *testing.T) {
	y := []int{0, 0, 1, 1}
	perfect := []float64{0.1, 0.2, 0.8, 0.9}
	if got := ROCAUC(y, perfect); math.Abs(got-1) > 1e-12 {
		t.Fatalf("ROC-AUC perfeito = %g, esperado 1", got)
	}
	inverted := []float64{0.9, 0.8, 0.2, 0.1}
	if got := ROCAUC(y, inverted); math.Abs(got) > 1e-12 {
		t.Fatalf("ROC-AUC invertido = %g, esperado 0", got)
	}
	if got := ROCAUC([]int{1, 1}, []float64{0.5, 0.6}); got != 0 {
		t.Fatalf("ROC-AUC com uma classe só = %g, esperado 0", got)
	}
}

func TestPRAUCPerfect(t *testing.T) {
	y := []int{0, 1, 1, 0}
	ps := []float64{0.1, 0.9, 0.8, 0.2}
	if got := PRAUC(y, ps); math.Abs(got-1) > 1e-12 {
		t.Fatalf("PR-AUC perfeito = %g, esperado 1", got)
	}
}

func TestMeanLogLoss(t *testing.T) {
	y := []int{1, 0}
	ps := []float64{0.5, 0.5}
	want := math.Log(2)
	if got := MeanLogLoss(y, ps); math.Abs(got-want) > 1e-12 {
		t.Fatalf("MeanLogLoss = %g, esperado ln(2)=%g", got, want)
	}
}

func TestBestThreshold(t *testing.T) {
	y := []int{0, 0, 1, 1}
	ps := []float64{0.1, 0.45, 0.55, 0.9}
	thr, f1 := BestThresholdF1(y, ps)
	if f1 != 1 {
		t.Fatalf("deveria existir threshold com F1=1, veio %g (thr=%g)", f1, thr)
	}
	if thr <= 0.45 || thr > 0.55 {
		t.Fatalf("threshold fora da janela separadora: %g", thr)
	}
	_, acc := BestThresholdAcc(y, ps)
	if acc != 1 {
		t.Fatalf("deveria existir threshold com acc=1, veio %g", acc)
	}
}

func TestProbaToPred(t *testing.T) {
	got := ProbaToPred([]float64{0.2, 0.5, 0.8}, 0.5)
	want := []int{0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ProbaToPred = %v, esperado %v", got, want)
		}
	}
}
