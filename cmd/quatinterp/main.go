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

// quatinterp 讀取關鍵影格軌道並輸出插值結果。
//
// Usage like:
//
//	go run ./cmd/quatinterp -track arm.yaml -format yaml
package main

import (
	"flag"
	"os"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/logger"
)

func main() {
	flag.StringVar(&cfg.path, "track", "", "track file (.yaml, .yml, .json, .toml)")
	flag.StringVar(&cfg.mode, "mode", "", "override interpolation mode: lerp, slerp, squad")
	flag.IntVar(&cfg.steps, "steps", 0, "override samples per segment")
	flag.StringVar(&cfg.format, "format", "table", "output format: table, json, yaml")
	flag.StringVar(&cfg.logmode, "log", "dev", "log mode: dev, prod, silence")
	flag.Parse()

	mode, err := logger.ParseMode(cfg.logmode)
	lg := logger.NewDefaultLogger(mode)
	if err != nil {
		lg.Error("invalid flag", "err", err)
		os.Exit(2)
	}
	if err := run(os.Stdout, cfg); err != nil {
		lg.Error("quatinterp failed", "track", cfg.path, "err", err)
		os.Exit(errs.ExitCode(err))
	}
}
