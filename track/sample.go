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

package track

import (
	"iter"
	"math"

	"github.com/zintix-labs/numlab/angle"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

// Frame 一個取樣點。Q 為 [w,x,y,z]，Degrees 為相對於單位元素的旋轉角。
type Frame struct {
	Index   int        `yaml:"index" json:"index"`
	Segment int        `yaml:"segment" json:"segment"`
	T       float64    `yaml:"t" json:"t"`
	Q       [4]float64 `yaml:"q" json:"q"`
	Degrees float64    `yaml:"degrees" json:"degrees"`
}

// At 回傳第 seg 個區段在參數 t 的旋轉。
func (t *Track) At(seg int, u float64) Q {
	a, b := t.rots[seg], t.rots[seg+1]
	x := num.Real(u)
	switch t.Mode {
	case Lerp:
		return quat.Lerp(a, b, x)
	case Squad:
		return quat.Squad(a, t.control(seg), t.control(seg+1), b, x)
	default:
		return quat.Slerp(a, b, x)
	}
}

// control 回傳第 i 個影格的 squad 控制點，端點以自身作為缺少的鄰居。
func (t *Track) control(i int) Q {
	prev, next := t.rots[max(i-1, 0)], t.rots[min(i+1, len(t.rots)-1)]
	return quat.SquadControl(prev, t.rots[i], next)
}

// All 依序產生所有取樣點，最後一點為最後一個關鍵影格。
func (t *Track) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		idx := 0
		emit := func(seg int, u float64, q Q) bool {
			f := Frame{Index: idx, Segment: seg, T: u, Q: [4]float64{float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)}}
			w := math.Max(-1, math.Min(1, f.Q[0]))
			f.Degrees = angle.Rad(2 * math.Acos(w)).Degrees()
			idx++
			return yield(f)
		}
		for seg := range len(t.rots) - 1 {
			for s := range t.Steps {
				u := float64(s) / float64(t.Steps)
				if !emit(seg, u, t.At(seg, u)) {
					return
				}
			}
		}
		last := len(t.rots) - 1
		emit(last-1, 1, t.rots[last])
	}
}

// Frames 收集所有取樣點。
func (t *Track) Frames() []Frame {
	out := make([]Frame, 0, t.Len())
	for f := range t.All() {
		out = append(out, f)
	}
	return out
}
