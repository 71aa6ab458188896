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

package perf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRunModes(t *testing.T) {
	Dir = t.TempDir()
	defer func() { Dir = "build/profiling" }()

	work := func() error {
		s := 0
		for i := range 100000 {
			s += i
		}
		_ = s
		return nil
	}
	for _, m := range []string{"cpu", "heap", "allocs"} {
		if err := Run(work, m); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if _, err := os.Stat(filepath.Join(Dir, m+".pprof")); err != nil {
			t.Fatalf("%s profile not written: %v", m, err)
		}
	}
	if err := Run(work, "block"); err == nil {
		t.Fatalf("expected unknown mode error")
	}
	if ValidMode("block") || !ValidMode("") {
		t.Fatalf("ValidMode mismatch")
	}
}

func TestRunPropagatesError(t *testing.T) {
	Dir = t.TempDir()
	defer func() { Dir = "build/profiling" }()

	boom := errors.New("boom")
	if err := Run(func() error { return boom }, ""); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if err := Run(func() error { return boom }, "heap"); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if _, err := os.Stat(filepath.Join(Dir, "heap.pprof")); err == nil {
		t.Fatalf("heap profile should not be written when exe fails")
	}
}
