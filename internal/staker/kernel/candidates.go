package kernel

import (
	"bytes"
	"sort"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

// CandidateTimes lists every t in [minTime, maxTime] with t&mask == 0, ascending.
func CandidateTimes(minTime, maxTime, mask uint32) []uint32 {
	if minTime > maxTime {
		return nil
	}
	step := uint64(mask) + 1
	first := uint64(minTime)
	if rem := first & uint64(mask); rem != 0 {
		first += step - rem
	}
	var out []uint32
	for t := first; t <= uint64(maxTime); t += step {
		out = append(out, uint32(t))
	}
	return out
}

// OrderOutputs returns a copy of outputs sorted by value descending, then outpoint hash bytes,
// then output index.
func OrderOutputs(outputs []model.UnspentOutput) []model.UnspentOutput {
	ordered := make([]model.UnspentOutput, len(outputs))
	copy(ordered, outputs)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if c := bytes.Compare(a.OutPoint.Hash[:], b.OutPoint.Hash[:]); c != 0 {
			return c < 0
		}
		return a.OutPoint.Index < b.OutPoint.Index
	})
	return ordered
}
