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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/stats"
	"github.com/zintix-labs/numlab/track"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	path    string
	mode    string
	steps   int
	format  string
	logmode string
}

// output 為 json / yaml 的輸出結構
type output struct {
	Name   string        `yaml:"name" json:"name"`
	Mode   track.Mode    `yaml:"mode" json:"mode"`
	Frames []track.Frame `yaml:"frames" json:"frames"`
}

func run(w io.Writer, c *config) error {
	if c.path == "" {
		return errs.NewWarn("value err : -track is required")
	}
	tr, err := track.Load(c.path)
	if err != nil {
		return err
	}
	// 覆寫設定後重新建立，讓檢查一併套用
	if c.mode != "" || c.steps != 0 {
		mode, steps := tr.Mode, tr.Steps
		if c.mode != "" {
			mode = track.Mode(c.mode)
		}
		if c.steps != 0 {
			steps = c.steps
		}
		if tr, err = track.New(tr.Name, mode, steps, tr.Keyframes()...); err != nil {
			return err
		}
	}

	out := &output{Name: tr.Name, Mode: tr.Mode, Frames: tr.Frames()}
	switch c.format {
	case "", "table":
		keys, msg := table(out.Frames)
		_, err = fmt.Fprintln(w, stats.Table(fmt.Sprintf("%s (%s)", out.Name, out.Mode), keys, msg))
	case "json":
		err = json.NewEncoder(w).Encode(out)
	case "yaml", "yml":
		err = stats.ForceReadableList(w, out)
	default:
		return errs.Warnf("unknown format: %q", c.format)
	}
	if err != nil {
		return errs.Wrap(err, "write frames failed")
	}
	return nil
}

func table(frames []track.Frame) ([]string, map[string]string) {
	p := message.NewPrinter(language.English)
	keys := make([]string, 0, len(frames))
	msg := make(map[string]string, len(frames))
	for _, f := range frames {
		k := p.Sprintf("#%d seg %d t=%.3f", f.Index, f.Segment, f.T)
		keys = append(keys, k)
		msg[k] = p.Sprintf("(%+.5f, %+.5f, %+.5f, %+.5f) %7.2f°", f.Q[0], f.Q[1], f.Q[2], f.Q[3], f.Degrees)
	}
	return keys, msg
}
