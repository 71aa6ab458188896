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

// Package stats 檢驗隨機單位 quaternion 的分佈，並輸出表格 / JSON / YAML 報告。
package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var lang language.Tag = language.English

// Alpha 為判定「均勻」的顯著水準。
const Alpha = 0.001

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo"`
	Hi float64 `json:"Hi"`
}

// Report 均勻性檢驗報告
type Report struct {
	Summary *Summary `json:"Summary"`
	Dist    *Dist    `json:"Dist"`
}

// Meta 為取樣條件，由 Sampler 填入。
type Meta struct {
	Name    string `json:"Name"`
	PRNG    string `json:"PRNG"`
	Seed    int64  `json:"Seed"`
	Samples int    `json:"Samples"`
	Bins    int    `json:"Bins"`
	Method  string `json:"Method"`
	Run     string `json:"Run"` // 每次抽樣的唯一識別，對應 log 與樣本檔
}

type Summary struct {
	Meta          Meta    `json:"Meta"`
	NormDriftMean float64 `json:"NormDriftMean"`
	NormDriftStd  float64 `json:"NormDriftStd"`
	NormDriftMax  float64 `json:"NormDriftMax"`
	WChi2         float64 `json:"WChi2"`
	WPValue       float64 `json:"WPValue"`
	AxisChi2      float64 `json:"AxisChi2"`
	AxisPValue    float64 `json:"AxisPValue"`
	SmallRate     float64 `json:"SmallRate"` // 旋轉角 ≤ SmallAngle 的比例
	SmallRateCI   CI      `json:"SmallRateCI"`
	SmallRateWant float64 `json:"SmallRateWant"`
}

// Dist 各區間的觀測與期望個數
type Dist struct {
	Bins         []string  `json:"Bins"`
	WCount       []int     `json:"WCount"`
	WExpected    []float64 `json:"WExpected"`
	AxisCount    []int     `json:"AxisCount"`
	AxisExpected []float64 `json:"AxisExpected"`
}

// Uniform 回傳兩個 χ² 檢驗是否都未被拒絕。
func (r *Report) Uniform() bool {
	return r.Summary.WPValue > Alpha && r.Summary.AxisPValue > Alpha
}

func (r *Report) WriteWith(w io.Writer, rep Render) error {
	return rep.Write(w, r)
}

// StdOut 將耗時與摘要表格寫到 w。
func (r *Report) StdOut(w io.Writer, ut time.Duration) {
	fmt.Fprint(w, formatDuration(ut, r.Summary.Meta.Samples))
	keys, msg := r.fmtBasic()
	fmt.Fprintln(w, Table(r.Summary.Meta.Name, keys, msg))
}

// Table 將 keys 依序排成兩欄表格，寬度以顯示寬度（runewidth）計算。
func Table(title string, keys []string, msg map[string]string) string {
	return fmtTable(title, keys, msg)
}

// ============================================================
// ** 內部方法 **
// ============================================================

func formatDuration(d time.Duration, samples int) string {
	p := message.NewPrinter(lang)
	if d < 0 {
		d = -d
	}
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	qps := int(float64(samples) / sec)
	if sec < 60.0 {
		return p.Sprintf("used: %.2f seconds\nqps : %d samples/sec\n", sec, qps)
	}
	s := int(d.Seconds()) % 60
	m := int(d.Minutes()) % 60
	h := int(d.Hours())
	if h == 0 {
		return p.Sprintf("used: %dm %ds\nqps : %d samples/sec\n", m, s, qps)
	}
	return p.Sprintf("used: %dh:%dm:%ds\nqps : %d samples/sec\n", h, m, s, qps)
}

func (r *Report) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	s := r.Summary
	verdict := "yes"
	if !r.Uniform() {
		verdict = "NO"
	}
	basic := map[string]string{
		"Run":          s.Meta.Run,
		"PRNG":         s.Meta.PRNG,
		"Method":       s.Meta.Method,
		"Seed":         fmt.Sprintf("%d", s.Meta.Seed),
		"Samples":      p.Sprintf("%d", s.Meta.Samples),
		"Bins":         p.Sprintf("%d", s.Meta.Bins),
		"Norm Drift":   p.Sprintf("%.3e ± %.3e", s.NormDriftMean, s.NormDriftStd),
		"Max Drift":    p.Sprintf("%.3e", s.NormDriftMax),
		"w χ²":         p.Sprintf("%.2f (p=%.4f)", s.WChi2, s.WPValue),
		"axis χ²":      p.Sprintf("%.2f (p=%.4f)", s.AxisChi2, s.AxisPValue),
		"θ ≤ 90°":      p.Sprintf("%.4f [%.4f,%.4f]", s.SmallRate, s.SmallRateCI.Lo, s.SmallRateCI.Hi),
		"θ ≤ 90° want": p.Sprintf("%.4f", s.SmallRateWant),
		"Uniform":      verdict,
	}
	keys := []string{"Run", "PRNG", "Method", "Seed", "Samples", "Bins", "Norm Drift", "Max Drift", "w χ²", "axis χ²", "θ ≤ 90°", "θ ≤ 90° want", "Uniform"}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := runewidth.StringWidth(title) - 3
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString(p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right)))
	sb.WriteString(divider)
	for _, k := range keys {
		sb.WriteString(p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k]))))
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
