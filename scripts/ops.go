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

// ops 為開發用的任務腳本。
//
// Usage like:
//
//	go run scripts/ops.go test
//	go run scripts/ops.go interp
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// ANSI 顏色代碼 (Windows 10+ 的 cmd/powershell 皆支援)
type ansiColor string

const (
	colorYellow ansiColor = "\033[33m"
	colorGreen  ansiColor = "\033[32m"
	colorRed    ansiColor = "\033[31m"
	colorNone   ansiColor = ""
	colorReset            = "\033[0m"
)

func printColor(color ansiColor, msg string) {
	fmt.Printf("%s%s%s\n", color, msg, colorReset)
}

// task 一個腳本任務。filter 回傳 false 的行不印出。
type task struct {
	desc       string
	cleanCache bool
	args       []string
	filter     func(line string) (ansiColor, bool)
}

var tasks = map[string]task{
	"test": {
		desc:       "run all tests, print package results only",
		cleanCache: true,
		args:       []string{"test", "./...", "-cover", "-count=1"},
		filter:     brief,
	},
	"test-detail": {
		desc:       "run all tests verbosely",
		cleanCache: true,
		args:       []string{"test", "./...", "-v", "-count=1"},
		filter:     detail,
	},
	"sample": {
		desc:   "draw 1M rotations with 4 workers and print the uniformity report",
		args:   []string{"run", "./cmd/quatsample", "-n", "250000", "-w", "4", "-log", "silence"},
		filter: detail,
	},
	"interp": {
		desc:   "interpolate the example track",
		args:   []string{"run", "./cmd/quatinterp", "-track", "scripts/tracks/arm.yaml"},
		filter: detail,
	},
}

func main() {
	// 如果沒有送任何參數進來，我們告訴用戶需要帶上 task
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	t, ok := tasks[os.Args[1]]
	if !ok {
		printColor(colorYellow, fmt.Sprintf("Unknown task: %s", os.Args[1]))
		usage()
		os.Exit(1)
	}
	if err := t.run(); err != nil {
		printColor(colorRed, fmt.Sprintf("\n%s finished with errors: %v", os.Args[1], err))
		os.Exit(1) // 告訴 Makefile 失敗了
	}
}

func usage() {
	fmt.Println("Usage: go run scripts/ops.go [task]")
	names := make([]string, 0, len(tasks))
	for n := range tasks {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %-12s %s\n", n, tasks[n].desc)
	}
}

func (t task) run() error {
	if t.cleanCache {
		clean := exec.Command("go", "clean", "-testcache")
		clean.Stdout, clean.Stderr = os.Stdout, os.Stderr
		if err := clean.Run(); err != nil {
			return err
		}
	}

	cmd := exec.Command("go", t.args...)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	// 對應 Shell 的 "2>&1"，編譯錯誤通常在 Stderr
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		if c, ok := t.filter(scanner.Text()); ok {
			printColor(c, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		printColor(colorRed, fmt.Sprintf("scanner error: %v", err))
	}
	return cmd.Wait()
}

// brief 等同 grep -E '^(ok|FAIL)'，另外保留建置失敗的訊息
func brief(line string) (ansiColor, bool) {
	switch {
	case strings.HasPrefix(line, "ok"):
		return colorGreen, true
	case strings.HasPrefix(line, "FAIL"):
		return colorRed, true
	case strings.Contains(line, "build failed"), strings.Contains(line, "setup failed"):
		return colorRed, true
	}
	return colorNone, false
}

// detail 等同 grep -v '\[no test files\]'
func detail(line string) (ansiColor, bool) {
	if strings.Contains(line, "[no test files]") {
		return colorNone, false
	}
	if c, ok := brief(line); ok {
		return c, true
	}
	return colorNone, true
}
