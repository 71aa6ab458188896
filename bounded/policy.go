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

package bounded

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/interval"
	"github.com/zintix-labs/numlab/logger"
	"github.com/zintix-labs/numlab/num"
)

// Policy 決定越界值如何處理。實作應為零大小的型別，於編譯期選定。
//
// Apply 回傳落在 iv 內的值；回傳 error 時呼叫端不得更新原值。
type Policy[T num.Numbers] interface {
	Apply(v T, iv interval.Interval[T]) (T, error)
}

// SilentClip 截斷到邊界，不回報。NaN 視為 min。
type SilentClip[T num.Numbers] struct{}

func (SilentClip[T]) Apply(v T, iv interval.Interval[T]) (T, error) {
	return iv.Clamp(v), nil
}

// SilentWrap 以週期方式繞回區間內。
// 區間內的值不變；區間外的值，浮點數以週期 max-min 繞回，整數以週期 max-min+1 繞回。
// NaN 與 ±Inf 沒有週期位置，視為 min。
type SilentWrap[T num.Numbers] struct{}

func (SilentWrap[T]) Apply(v T, iv interval.Interval[T]) (T, error) {
	if iv.Contains(v) {
		return v, nil
	}
	lo := iv.Min()
	if num.IsFloat[T]() {
		w := float64(iv.Width())
		if w == 0 || math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return lo, nil
		}
		r := math.Mod(float64(v)-float64(lo), w)
		if r < 0 {
			r += w
		}
		return lo + T(r), nil
	}
	w := int64(iv.Width()) + 1
	r := (int64(v) - int64(lo)) % w
	if r < 0 {
		r += w
	}
	return lo + T(r), nil
}

// ClipAndReport 截斷到邊界，並透過 reporter 記錄越界事件。
type ClipAndReport[T num.Numbers] struct{}

func (ClipAndReport[T]) Apply(v T, iv interval.Interval[T]) (T, error) {
	if side := outside(v, iv); side != "" {
		Reporter().Warn("value out of bounds",
			slog.String("side", side),
			slog.Any("value", v),
			slog.String("bounds", iv.String()),
		)
	}
	return iv.Clamp(v), nil
}

// ThrowIfOutOfBounds 越界時回傳 *OutOfRangeError（以 errs.E 包裝，等級 Warn）。
type ThrowIfOutOfBounds[T num.Numbers] struct{}

func (ThrowIfOutOfBounds[T]) Apply(v T, iv interval.Interval[T]) (T, error) {
	if outside(v, iv) != "" {
		oor := &OutOfRangeError[T]{Value: v, Bounds: iv}
		return v, errs.Attach(errs.Warn, oor, "bounded value rejected")
	}
	return v, nil
}

// OutOfRangeError 攜帶越界值與區間。
type OutOfRangeError[T num.Numbers] struct {
	Value  T
	Bounds interval.Interval[T]
}

func (e *OutOfRangeError[T]) Error() string {
	return fmt.Sprintf("%v %s %s", e.Value, outside(e.Value, e.Bounds), e.Bounds.String())
}

func outside[T num.Numbers](v T, iv interval.Interval[T]) string {
	switch {
	case v != v:
		return "nan"
	case v < iv.Min():
		return "below"
	case v > iv.Max():
		return "above"
	default:
		return ""
	}
}

//---------------------------------------
// reporter
//---------------------------------------

var reporter atomic.Pointer[slog.Logger]

func init() {
	reporter.Store(logger.NewDefaultLogger(logger.ModeDev))
}

// Reporter 回傳 ClipAndReport 使用的 logger（預設為 stderr 文字格式）。
func Reporter() *slog.Logger {
	return reporter.Load()
}

// SetReporter 替換 ClipAndReport 使用的 logger，nil 代表靜默。
func SetReporter(l *slog.Logger) {
	if l == nil {
		l = logger.NewDefaultLogger(logger.ModeSilence)
	}
	reporter.Store(l)
}
