// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"math"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SmallAngle 為「小旋轉」門檻（弧度）。均勻旋轉下 P(θ ≤ π/2) = (π/2 - 1)/π。
const SmallAngle = math.Pi / 2

// Uniformity 累積單位 quaternion 樣本，檢驗其是否在旋轉群上均勻分佈。
//
// 檢驗三件事：
//   - w 分量：均勻分佈下密度 ∝ √(1-w²)，CDF 見 WCDF
//   - 旋轉軸 z 分量：旋轉軸在球面上均勻，z 在 [-1,1] 均勻
//   - norm 偏移 |‖q‖-1|
//
// 非並行安全；每個 Sampler 持有自己的 Uniformity。
type Uniformity struct {
	bins   *Bins
	wCnt   []int
	axCnt  []int
	drift  []float64
	small  int
	degens int
}

// NewUniformity 以 bins 個區間建立累積器。
func NewUniformity(bins int) *Uniformity {
	b := NewBins(bins)
	return &Uniformity{
		bins:  b,
		wCnt:  make([]int, b.Len()),
		axCnt: make([]int, b.Len()),
	}
}

// Add 記錄一個樣本。
func (u *Uniformity) Add(q quat.Quaternion[num.Real]) {
	n := quat.NormFloat(q)
	u.drift = append(u.drift, math.Abs(n-1))

	w := float64(q.W) / n
	u.wCnt[u.bins.Index(w)]++

	v := math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z))
	if v == 0 {
		// 單位元素沒有旋轉軸，不計入軸分佈
		u.degens++
	} else {
		u.axCnt[u.bins.Index(float64(q.Z)/v)]++
	}

	if 2*math.Acos(math.Min(math.Abs(w), 1)) <= SmallAngle {
		u.small++
	}
}

// Merge 將 o 的樣本併入 u。兩者的區間數必須相同。
func (u *Uniformity) Merge(o *Uniformity) error {
	if o.bins.Len() != u.bins.Len() {
		return errs.NewWarn("merge uniformity failed: bin count mismatch")
	}
	for i := range u.wCnt {
		u.wCnt[i] += o.wCnt[i]
		u.axCnt[i] += o.axCnt[i]
	}
	u.drift = append(u.drift, o.drift...)
	u.small += o.small
	u.degens += o.degens
	return nil
}

// Count 回傳已記錄的樣本數。
func (u *Uniformity) Count() int { return len(u.drift) }

// WCDF 為均勻單位 quaternion 的 w 分量 CDF：
//
//	F(x) = 1/2 + (x√(1-x²) + asin x)/π,  x ∈ [-1,1]
func WCDF(x float64) float64 {
	x = math.Max(-1, math.Min(1, x))
	return 0.5 + (x*math.Sqrt(1-x*x)+math.Asin(x))/math.Pi
}

// UniformCDF 為 [-1,1] 上均勻分佈的 CDF。
func UniformCDF(x float64) float64 {
	return (math.Max(-1, math.Min(1, x)) + 1) / 2
}

// ChiSquare 回傳 Pearson χ² 統計量與 p 值（自由度 len-1）。期望值為 0 的區間略過。
func ChiSquare(obs []int, exp []float64) (chi2, p float64) {
	df := -1
	for i, o := range obs {
		if exp[i] <= 0 {
			continue
		}
		d := float64(o) - exp[i]
		chi2 += d * d / exp[i]
		df++
	}
	if df < 1 {
		return chi2, 1
	}
	return chi2, distuv.ChiSquared{K: float64(df)}.Survival(chi2)
}

// Report 依目前累積的樣本產生報告。
func (u *Uniformity) Report(meta Meta) *Report {
	n := u.Count()
	axN := n - u.degens

	wExp := u.bins.Expected(n, WCDF)
	axExp := u.bins.Expected(axN, UniformCDF)
	wChi, wP := ChiSquare(u.wCnt, wExp)
	axChi, axP := ChiSquare(u.axCnt, axExp)

	var mean, std, mx float64
	if n > 0 {
		mean, std = stat.MeanStdDev(u.drift, nil)
		mx = floats.Max(u.drift)
	}
	if n < 2 {
		std = 0
	}

	want := (SmallAngle - math.Sin(SmallAngle)) / math.Pi
	pHat, ci := proportionCICP(u.small, n, 0.95)

	meta.Samples = n
	meta.Bins = u.bins.Len()
	return &Report{
		Summary: &Summary{
			Meta:          meta,
			NormDriftMean: mean,
			NormDriftStd:  std,
			NormDriftMax:  mx,
			WChi2:         wChi,
			WPValue:       wP,
			AxisChi2:      axChi,
			AxisPValue:    axP,
			SmallRate:     pHat,
			SmallRateCI:   ci,
			SmallRateWant: want,
		},
		Dist: &Dist{
			Bins:         u.bins.Labels(),
			WCount:       append([]int(nil), u.wCnt...),
			WExpected:    wExp,
			AxisCount:    append([]int(nil), u.axCnt...),
			AxisExpected: axExp,
		},
	}
}

// Clopper–Pearson exact CI for binomial proportion (k successes out of n)
func proportionCICP(k int, n int, confidence float64) (pHat float64, ci CI) {
	if n == 0 {
		return 0, CI{0, 1}
	}
	alpha := 1 - confidence
	pHat = float64(k) / float64(n)

	// Beta PPF 映射，處理邊界
	if k == 0 {
		ci.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		ci.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		ci.Hi = b.Quantile(1 - alpha/2)
	}
	return
}
