// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Axis labelling follows Talbot, Lin and Hanrahan, doi:10.1109/TVCG.2010.130,
// restricted to labels that lie within the data range.

package plot

import "github.com/chewxy/math32"

// labelEps is the smallest data range that is labelled by search
// rather than by evenly dividing it.
const labelEps = 100 * 2.0 / (1 << 53)

// maxLabelExp bounds the power of ten of a label step, so that
// every step is a finite float32.
const maxLabelExp = 38

// niceSteps are the preferred leading digits of a label step,
// most preferred first.
var niceSteps = []float32{1, 5, 2, 2.5, 4, 3}

// Weights of the simplicity, coverage and density scores.
const (
	simplicityWeight = 0.25
	coverageWeight   = 0.2
	densityWeight    = 0.5
	legibilityWeight = 0.05
)

// labelling is a set of evenly spaced axis labels. The step between
// labels is nice * 10^mag; nice is 0 when the range was too small
// to search and step is the spacing itself.
type labelling struct {
	values []float32
	step   float32
	nice   float32
	mag    int
}

// labelScore is the weighted total of the label scores.
// Legibility is always scored as 1.
func labelScore(simp, cov, dens float32) float32 {
	return simplicityWeight*simp + coverageWeight*cov + densityWeight*dens + legibilityWeight
}

// labelsWithin returns about want nicely spaced labels that lie
// within [dMin, dMax]. It returns no labels if either end or the
// range itself is not a finite float32.
func labelsWithin(dMin, dMax float32, want int) labelling {
	if dMin > dMax {
		dMin, dMax = dMax, dMin
	}
	r := dMax - dMin
	if !isFinite32(dMin) || !isFinite32(dMax) || !isFinite32(r) {
		return labelling{}
	}
	if r < labelEps {
		return evenLabels(dMin, dMax, want)
	}

	type candidate struct {
		n                int
		lMin, step, nice float32
		score            float32
		mag              int
	}
	best := candidate{score: -2}

search:
	for skip := 1; ; skip++ {
		for qi, q := range niceSteps {
			sm := maxSimplicity(qi, skip)
			if labelScore(sm, 1, 1) < best.score {
				break search
			}
			for have := 2; ; have++ {
				dm := maxDensity(have, want)
				if labelScore(sm, 1, dm) < best.score {
					break
				}
				delta := r / float32(have+1) / float32(skip) / q
				for mag := int(math32.Ceil(math32.Log10(delta))); mag <= maxLabelExp; mag++ {
					step := float32(skip) * q * math32.Pow10(mag)
					span := step * float32(have-1)
					cm := maxCoverage(dMin, dMax, span)
					if labelScore(sm, cm, dm) < best.score {
						break
					}
					frac := step / float32(skip)
					minStart := (math32.Floor(dMax/step) - float32(have-1)) * float32(skip)
					maxStart := math32.Ceil(dMax/step) * float32(skip)
					for start := minStart; start <= maxStart && start != start-1; start++ {
						lMin := start * frac
						lMax := lMin + span
						if lMin < dMin || dMax < lMax {
							continue
						}
						score := labelScore(
							simplicity(qi, skip, lMin, lMax, step),
							coverage(dMin, dMax, lMin, lMax),
							density(have, want, dMin, dMax, lMin, lMax),
						)
						if score > best.score {
							best = candidate{n: have, lMin: lMin, step: float32(skip) * q, nice: q, score: score, mag: mag}
						}
					}
				}
			}
		}
	}
	if best.score == -2 {
		return evenLabels(dMin, dMax, want)
	}

	lb := labelling{values: make([]float32, best.n), step: best.step, nice: best.nice, mag: best.mag}
	step := best.step * math32.Pow10(best.mag)
	for i := range lb.values {
		lb.values[i] = best.lMin + float32(i)*step
	}
	return lb
}

// evenLabels divides [dMin, dMax] into want evenly spaced labels.
func evenLabels(dMin, dMax float32, want int) labelling {
	step := (dMax - dMin) / float32(want-1)
	lb := labelling{values: make([]float32, want), step: step, mag: minAbsMag(dMin, dMax)}
	for i := range lb.values {
		lb.values[i] = dMin + float32(i)*step
	}
	return lb
}

func isFinite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// minAbsMag returns the smaller power of ten of |a| and |b|.
func minAbsMag(a, b float32) int {
	return int(math32.Min(math32.Floor(math32.Log10(math32.Abs(a))), math32.Floor(math32.Log10(math32.Abs(b)))))
}

// simplicity scores how early niceSteps[qi] is in the preference list,
// how small skip is, and whether zero is one of the labels.
func simplicity(qi, skip int, lMin, lMax, step float32) float32 {
	zero := float32(0)
	m := math32.Mod(lMin, step)
	if (m < labelEps || step-m < labelEps) && lMin <= 0 && 0 <= lMax {
		zero = 1
	}
	return 1 - float32(qi)/float32(len(niceSteps)-1) - float32(skip) + zero
}

// maxSimplicity is the best simplicity possible for qi and skip.
func maxSimplicity(qi, skip int) float32 {
	return 2 - float32(qi)/float32(len(niceSteps)-1) - float32(skip)
}

// coverage scores how close the extreme labels are to the extreme data.
func coverage(dMin, dMax, lMin, lMax float32) float32 {
	r := 0.1 * (dMax - dMin)
	hi := dMax - lMax
	lo := dMin - lMin
	return 1 - 0.5*(hi*hi+lo*lo)/(r*r)
}

// maxCoverage is the best coverage possible for labels spanning span.
func maxCoverage(dMin, dMax, span float32) float32 {
	r := dMax - dMin
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density scores how close the label density is to want labels
// over the data range.
func density(have, want int, dMin, dMax, lMin, lMax float32) float32 {
	rho := float32(have-1) / (lMax - lMin)
	target := float32(want-1) / (math32.Max(lMax, dMax) - math32.Min(dMin, lMin))
	if d := rho / target; d >= 1 {
		return 2 - d
	}
	return 2 - target/rho
}

// maxDensity is the best density possible for have of want labels.
func maxDensity(have, want int) float32 {
	if have < want {
		return 1
	}
	return 2 - float32(have-1)/float32(want-1)
}
