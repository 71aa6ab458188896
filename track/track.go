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

// Package track 讀取 YAML / JSON 關鍵影格軌道，並以 lerp、slerp 或 squad 取樣旋轉。
package track

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/zintix-labs/numlab/angle"
	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
	"gopkg.in/yaml.v3"
)

// Q 為軌道使用的旋轉型別
type Q = quat.Quaternion[num.Real]

// Mode 插值方式
type Mode string

const (
	Lerp  Mode = "lerp"
	Slerp Mode = "slerp"
	Squad Mode = "squad"
)

// Key 一個關鍵影格。q 與 axis+degrees 二擇一。
type Key struct {
	Q       []float64 `yaml:"q,omitempty" json:"q,omitempty"`             // [w,x,y,z]，不需為單位長度
	Axis    []float64 `yaml:"axis,omitempty" json:"axis,omitempty"`       // 旋轉軸 [x,y,z]
	Degrees *float64  `yaml:"degrees,omitempty" json:"degrees,omitempty"` // 旋轉角（度）
}

// Track 關鍵影格軌道
type Track struct {
	Name  string `yaml:"name" json:"name"`
	Mode  Mode   `yaml:"mode" json:"mode"`
	Steps int    `yaml:"steps" json:"steps"` // 每個區段的取樣數
	Keys  []Key  `yaml:"keys" json:"keys"`

	rots []Q // 已正規化並對齊半球的關鍵影格
}

// FromYAML 嚴格解碼 YAML 軌道：未知欄位視為錯誤。
func FromYAML(data []byte) (*Track, error) {
	t := &Track{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 嚴格檢查：多寫/拼錯欄位就報錯
	if err := dec.Decode(t); err != nil {
		return nil, errs.Wrap(err, "track: decode yaml failed")
	}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromJSON 嚴格解碼 JSON 軌道。
func FromJSON(data []byte) (*Track, error) {
	t := &Track{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		return nil, errs.Wrap(err, "track: decode json failed")
	}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromTOML 嚴格解碼 TOML 軌道，欄位名稱與 YAML 相同（keys 寫成 [[keys]]）。
func FromTOML(data []byte) (*Track, error) {
	t := &Track{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		return nil, errs.Wrap(err, "track: decode toml failed")
	}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load 依副檔名讀取軌道檔（.yaml / .yml / .json / .toml）。
func Load(path string) (*Track, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.WrapWithExtra(err, "track: read file failed", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(raw)
	case ".json":
		return FromJSON(raw)
	case ".toml":
		return FromTOML(raw)
	default:
		return nil, errs.Warnf("track: unsupported file type %q", filepath.Ext(path))
	}
}

// New 以已知的旋轉建立軌道。
func New(name string, mode Mode, steps int, keys ...Q) (*Track, error) {
	t := &Track{Name: name, Mode: mode, Steps: steps}
	for _, k := range keys {
		t.Keys = append(t.Keys, Key{Q: []float64{float64(k.W), float64(k.X), float64(k.Y), float64(k.Z)}})
	}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Track) init() error {
	switch t.Mode {
	case "":
		t.Mode = Slerp
	case Lerp, Slerp, Squad:
	default:
		return errs.Warnf("track %q: unknown mode %q", t.Name, t.Mode)
	}
	if t.Steps < 1 {
		return errs.Warnf("track %q: steps must >= 1", t.Name)
	}
	if len(t.Keys) < 2 {
		return errs.Warnf("track %q: need at least 2 keys", t.Name)
	}
	t.rots = make([]Q, len(t.Keys))
	for i, k := range t.Keys {
		q, err := k.rotation()
		if err != nil {
			return errs.WrapWithExtra(err, fmt.Sprintf("track %q: bad key", t.Name), fmt.Sprintf("keys[%d]", i))
		}
		// 與前一個影格同半球，squad 的控制點才不會繞遠路
		if i > 0 && quat.Dot(t.rots[i-1], q) < 0 {
			q = quat.Neg(q)
		}
		t.rots[i] = q
	}
	return nil
}

func (k Key) rotation() (Q, error) {
	switch {
	case k.Q != nil && (k.Axis != nil || k.Degrees != nil):
		return Q{}, errs.NewWarn("q and axis/degrees are exclusive")
	case k.Q != nil:
		if len(k.Q) != 4 {
			return Q{}, errs.Warnf("q needs 4 components, got %d", len(k.Q))
		}
		q := quat.New(num.Real(k.Q[0]), num.Real(k.Q[1]), num.Real(k.Q[2]), num.Real(k.Q[3]))
		if n := quat.NormFloat(q); n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return Q{}, errs.NewWarn("q must have a finite non-zero norm")
		}
		return quat.Normalized(q), nil
	case k.Axis != nil:
		if len(k.Axis) != 3 {
			return Q{}, errs.Warnf("axis needs 3 components, got %d", len(k.Axis))
		}
		if k.Degrees == nil {
			return Q{}, errs.NewWarn("axis without degrees")
		}
		if k.Axis[0] == 0 && k.Axis[1] == 0 && k.Axis[2] == 0 {
			return Q{}, errs.NewWarn("axis must be non-zero")
		}
		axis := [3]num.Real{num.Real(k.Axis[0]), num.Real(k.Axis[1]), num.Real(k.Axis[2])}
		return quat.FromAxisAngle(axis, num.Real(angle.Deg(*k.Degrees).Radians())), nil
	default:
		return Q{}, errs.NewWarn("key needs q or axis+degrees")
	}
}

// Keyframes 回傳正規化後的關鍵影格。
func (t *Track) Keyframes() []Q { return append([]Q(nil), t.rots...) }

// Len 回傳取樣總數：(len(keys)-1)·steps + 1。
func (t *Track) Len() int { return (len(t.rots)-1)*t.Steps + 1 }
