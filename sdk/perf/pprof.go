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

// Package perf 為 CLI 提供 pprof 取樣，輸出檔可直接餵給 go tool pprof 或作為 PGO 的 profile。
package perf

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/zintix-labs/numlab/errs"
)

// Dir 為 pprof 檔案寫入路徑
var Dir = "build/profiling"

// Modes 為支援的 profile 種類，空字串代表不取樣。
var Modes = []string{"", "cpu", "heap", "allocs"}

// ValidMode 回傳 mode 是否為支援的 profile 種類。
func ValidMode(mode string) bool {
	for _, m := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Run 根據 mode 決定以哪種 profiling 包住 exe。exe 的錯誤優先回傳。
//
// Usage like:
//
//	go run ./cmd/quatsample -p cpu
//	go tool pprof build/profiling/cpu.pprof
func Run(exe func() error, mode string) error {
	switch mode {
	case "":
		return exe()
	case "cpu":
		return profileCPU(exe)
	case "heap":
		return snapshot(exe, "heap", true)
	case "allocs":
		return snapshot(exe, "allocs", false)
	default:
		return errs.Warnf("unknown profile mode: %q", mode)
	}
}

func create(name string) (*os.File, error) {
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create profiling dir")
	}
	f, err := os.Create(filepath.Join(Dir, name+".pprof"))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create "+name+".pprof")
	}
	return f, nil
}

func profileCPU(exe func() error) error {
	f, err := create("cpu")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return errs.Wrap(err, "failed to start cpu profile")
	}
	defer pprof.StopCPUProfile()

	return exe()
}

// snapshot 在 exe 執行完後寫出一次 profile。
// heap 為 in-use 快照，寫出前先 GC 以貼近 live objects；allocs 為累積配置。
func snapshot(exe func() error, name string, gc bool) error {
	if err := exe(); err != nil {
		return err
	}
	f, err := create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if gc {
		runtime.GC()
	}
	if err := pprof.Lookup(name).WriteTo(f, 0); err != nil {
		return errs.Wrap(err, "failed to write "+name+" profile")
	}
	return nil
}
