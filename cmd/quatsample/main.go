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

// quatsample 抽樣均勻隨機旋轉並檢驗其分佈。
//
// Usage like:
//
//	go run ./cmd/quatsample -n 1000000 -w 4 -format yaml -out build/samples.zst
package main

import (
	"os"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/sdk/perf"
)

func main() {
	bindVar()
	if err := perf.Run(execute, cfg.pprofmode); err != nil {
		lg.Error("quatsample failed", "err", err)
		os.Exit(errs.ExitCode(err))
	}
}
