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
	"strconv"
)

// Bins 將 [-1,1] 切成等寬區間，Index 為 O(1) 定位。
//
// 區間：[-1, -1+h), [-1+h, -1+2h), ..., [1-h, 1]（最後一格包含右端點）
type Bins struct {
	n     int
	width float64
	edges []float64
}

// NewBins 建立 n 個等寬區間，n < 2 時以 2 計。
func NewBins(n int) *Bins {
	n = max(n, 2)
	w := 2.0 / float64(n)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = -1 + float64(i)*w
	}
	edges[n] = 1
	return &Bins{n: n, width: w, edges: edges}
}

func (b *Bins) Len() int { return b.n }

// Edges 回傳 n+1 個邊界。
func (b *Bins) Edges() []float64 { return b.edges }

// Index 回傳 x 所在區間；超出 [-1,1] 的值（含捨入誤差）歸入兩端。
func (b *Bins) Index(x float64) int {
	i := int(math.Floor((x + 1) / b.width))
	return min(max(i, 0), b.n-1)
}

// Labels 回傳可讀的區間字串，例如 "[-1,-0.5)"。
func (b *Bins) Labels() []string {
	out := make([]string, b.n)
	for i := range out {
		r := ")"
		if i == b.n-1 {
			r = "]"
		}
		out[i] = "[" + fmtEdge(b.edges[i]) + "," + fmtEdge(b.edges[i+1]) + r
	}
	return out
}

// Expected 回傳 CDF 為 cdf、樣本數為 n 時各區間的期望個數。
func (b *Bins) Expected(n int, cdf func(float64) float64) []float64 {
	out := make([]float64, b.n)
	for i := range out {
		out[i] = float64(n) * (cdf(b.edges[i+1]) - cdf(b.edges[i]))
	}
	return out
}

func fmtEdge(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}
