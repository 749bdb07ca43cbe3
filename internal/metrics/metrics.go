package metrics

import (
    "math"
    "sort"

    "admissao/internal/logreg"
)

func Accuracy(y, pred []int) float64 {
    if len(y) == 0 { return 0 }
    c := 0
    for i := range y { if y[i] == pred[i] { c++ } }
    return float64(c) / float64(len(y))
}

func ProbaToPred(ps []float64, thr float64) []int {
    out := make([]int, len(ps))
    for i := range ps { if ps[i] >= thr { out[i] = 1 } }
    return out
}

func Confusion(y []int, ps []float64, thr float64) (tp, fp, tn, fn int) {
    for i := range y {
        pred := 0
        if ps[i] >= thr { pred = 1 }
        switch {
        case pred == 1 && y[i] == 1:
            tp++
        case pred == 1 && y[i] == 0:
            fp++
        case pred == 0 && y[i] == 0:
            tn++
        default:
            fn++
        }
    }
    return
}

func PRF1(y []int, ps []float64, thr float64) (precision, recall, f1 float64) {
    tp, fp, _, fn := Confusion(y, ps, thr)
    if tp+fp > 0 { precision = float64(tp) / float64(tp+fp) }
    if tp+fn > 0 { recall = float64(tp) / float64(tp+fn) }
    if precision+recall > 0 { f1 = 2 * precision * recall / (precision + recall) }
    return
}

func MeanLogLoss(y []int, ps []float64) float64 {
    if len(y) == 0 { return 0 }
    sum := 0.0
    for i := range y { sum += logreg.LogLoss(y[i], ps[i]) }
    return sum / float64(len(y))
}

func ROCAUC(y []int, ps []float64) float64 {
    type pair struct {
        s float64
        y int
    }
    n := len(y)
    pairs := make([]pair, n)
    for i := 0; i < n; i++ { pairs[i] = pair{ps[i], y[i]} }
    sort.Slice(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
    var pos, neg int
    for _, p := range pairs { if p.y == 1 { pos++ } else { neg++ } }
    if pos == 0 || neg == 0 { return 0 }
    tp, fp := 0, 0
    prevS := math.Inf(1)
    var auc float64
    prevTPR, prevFPR := 0.0, 0.0
    for i := 0; i < n; i++ {
        if pairs[i].s != prevS {
            tpr := float64(tp) / float64(pos)
            fpr := float64(fp) / float64(neg)
            auc += (fpr - prevFPR) * (tpr + prevTPR) / 2.0
            prevTPR, prevFPR = tpr, fpr
            prevS = pairs[i].s
        }
        if pairs[i].y == 1 { tp++ } else { fp++ }
    }
    tpr := float64(tp) / float64(pos)
    fpr := float64(fp) / float64(neg)
    auc += (fpr - prevFPR) * (tpr + prevTPR) / 2.0
    return auc
}

func PRAUC(y []int, ps []float64) float64 {
    type pair struct {
        s float64
        y int
    }
    n := len(y)
    pairs := make([]pair, n)
    for i := 0; i < n; i++ { pairs[i] = pair{ps[i], y[i]} }
    sort.Slice(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
    var tp, fp, fn int
    for _, p := range pairs { if p.y == 1 { fn++ } }
    var prevRec, auc float64
    for i := 0; i < n; i++ {
        if pairs[i].y == 1 { tp++; fn-- } else { fp++ }
        var prec, rec float64
        if tp+fp > 0 { prec = float64(tp) / float64(tp+fp) }
        if tp+fn > 0 { rec = float64(tp) / float64(tp+fn) }
        auc += (rec - prevRec) * prec
        prevRec = rec
    }
    return auc
}

func BestThresholdF1(y []int, ps []float64) (thr float64, best float64) {
    if len(ps) == 0 { return 0.5, 0 }
    steps := 200
    best = -1
    thr = 0.5
    for i := 0; i <= steps; i++ {
        t := float64(i) / float64(steps)
        _, _, f1 := PRF1(y, ps, t)
        if f1 > best { best = f1; thr = t }
    }
    return
}

func BestThresholdAcc(y []int, ps []float64) (thr float64, best float64) {
    if len(ps) == 0 { return 0.5, 0 }
    steps := 200
    best = -1
    thr = 0.5
    for i := 0; i <= steps; i++ {
        t := float64(i) / float64(steps)
        a := Accuracy(y, ProbaToPred(ps, t))
        if a > best { best = a; thr = t }
    }
    return
}
