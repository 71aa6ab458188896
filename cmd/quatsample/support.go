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
	"flag"
	"log/slog"
	"os"

	"github.com/zintix-labs/numlab"
	"github.com/zintix-labs/numlab/bounded"
	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/interval"
	"github.com/zintix-labs/numlab/logger"
	"github.com/zintix-labs/numlab/qcodec"
	"github.com/zintix-labs/numlab/sdk/perf"
	"github.com/zintix-labs/numlab/stats"
)

const maxBins = 1024

var (
	cfg *config = new(config)
	lg  *slog.Logger
)

type config struct {
	samples   int
	worker    int
	seed      int64
	prng      string
	method    string
	bins      int
	format    string
	out       string
	logmode   string
	pprofmode string
	quiet     bool
}

func bindVar() {
	// 綁定 Flag 到本地變數的指標 (&)
	flag.IntVar(&cfg.samples, "n", 100000, "samples per worker")
	flag.IntVar(&cfg.worker, "w", 1, "number of workers")
	flag.Int64Var(&cfg.seed, "seed", 0, "int64 seed, 0 draws a random seed")
	flag.StringVar(&cfg.prng, "prng", "pcg64", "prng: pcg64, pcg32")
	flag.StringVar(&cfg.method, "method", numlab.Shoemake, "sampling method: shoemake, normal")
	flag.IntVar(&cfg.bins, "bins", 20, "histogram bins")
	flag.StringVar(&cfg.format, "format", "table", "report format: table, json, yaml")
	flag.StringVar(&cfg.out, "out", "", "write samples as a zstd compressed frame to this path")
	flag.StringVar(&cfg.logmode, "log", "dev", "log mode: dev, prod, silence")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")
	flag.BoolVar(&cfg.quiet, "q", false, "hide progress bar")

	flag.Parse()

	mode, err := logger.ParseMode(cfg.logmode)
	lg = logger.NewDefaultLogger(mode)
	if err != nil {
		lg.Error("invalid flag", "err", err)
		os.Exit(2)
	}
	bounded.SetReporter(lg)
}

func execute() error {
	if err := cfg.valid(); err != nil {
		return err
	}
	rd, err := stats.RenderByName(cfg.format)
	if err != nil {
		return err
	}

	s, err := numlab.NewSampler("quaternion uniformity", cfg.prng, cfg.seed, cfg.bins)
	if err != nil {
		return err
	}
	s.Keep = cfg.out != ""
	s.Method = cfg.method
	lg.Info("sampling", "prng", cfg.prng, "method", cfg.method, "seed", s.Seed(), "workers", cfg.worker, "samples", cfg.worker*cfg.samples)

	var res *numlab.Result
	if cfg.worker == 1 {
		res, err = s.Sample(cfg.samples, !cfg.quiet)
	} else {
		res, err = s.SampleMP(cfg.samples, cfg.worker, !cfg.quiet)
	}
	if err != nil {
		return err
	}

	if cfg.format == "" || cfg.format == "table" {
		res.Report.StdOut(os.Stdout, res.Used)
	} else if err := res.Report.WriteWith(os.Stdout, rd); err != nil {
		return errs.Wrap(err, "write report failed")
	}
	if !res.Report.Uniform() {
		lg.Warn("samples rejected as non-uniform", "run", res.Report.Summary.Meta.Run, "wP", res.Report.Summary.WPValue, "axisP", res.Report.Summary.AxisPValue)
	}

	if cfg.out == "" {
		return nil
	}
	f, err := os.Create(cfg.out)
	if err != nil {
		return errs.WrapWithExtra(err, "create dump failed", cfg.out)
	}
	if err := qcodec.WriteCompressed(f, res.Samples); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errs.WrapWithExtra(err, "close dump failed", cfg.out)
	}
	lg.Info("samples written", "run", res.Report.Summary.Meta.Run, "path", cfg.out, "count", len(res.Samples))
	return nil
}

func (cfg *config) valid() error {
	// 工作協程檢查(併發數)
	if cfg.worker < 1 {
		return errs.NewWarn("value err : workers must > 0")
	}
	if cfg.samples < 1 {
		return errs.NewWarn("value err : samples must > 0")
	}
	if !perf.ValidMode(cfg.pprofmode) {
		return errs.Warnf("value err : unknown pprof mode %q", cfg.pprofmode)
	}
	// 區間數超出範圍時截斷並記錄
	b, err := bounded.New[int, bounded.ClipAndReport[int]](cfg.bins, interval.New(2, maxBins))
	if err != nil {
		return errs.Wrap(err, "value err : bins")
	}
	cfg.bins = b.Value()
	return nil
}
