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

package qcodec

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
	"github.com/zintix-labs/numlab/sdk/core"
)

func sample(n int) []Q {
	src := core.Default().New(7)
	out := make([]Q, n)
	for i := range out {
		out[i] = quat.RandomUnit[num.Real](src)
	}
	out = append(out, quat.New[num.Real](num.Real(math.Inf(1)), -0, 1e-310, num.Real(math.NaN())))
	return out
}

func sameBits(t *testing.T, got, want []Q) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len %d want %d", len(got), len(want))
	}
	for i := range want {
		g := [4]float64{float64(got[i].W), float64(got[i].X), float64(got[i].Y), float64(got[i].Z)}
		w := [4]float64{float64(want[i].W), float64(want[i].X), float64(want[i].Y), float64(want[i].Z)}
		for k := range 4 {
			if math.Float64bits(g[k]) != math.Float64bits(w[k]) {
				t.Fatalf("record %d component %d: %v want %v", i, k, g[k], w[k])
			}
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	qs := sample(64)
	frame := EncodeFrame(qs)
	if len(frame) != 1+len(qs)*recordSize {
		t.Fatalf("unexpected frame size %d", len(frame))
	}
	got, err := DecodeFrame(frame)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	sameBits(t, got, qs)

	var buf bytes.Buffer
	if err := WriteFrame(&buf, qs); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), frame) {
		t.Fatalf("WriteFrame and EncodeFrame disagree")
	}
	got, err = ReadFrame(&buf, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	sameBits(t, got, qs)
}

func TestMalformedFrames(t *testing.T) {
	frame := EncodeFrame(sample(3))
	if _, err := DecodeFrame(frame[:len(frame)-1]); err == nil {
		t.Fatalf("expected truncation error")
	}
	if _, err := DecodeFrame(append(frame, 0)); err == nil {
		t.Fatalf("expected trailing bytes error")
	}
	if _, err := DecodeFrame(nil); err == nil {
		t.Fatalf("expected varint error")
	}
	if _, err := ReadFrame(bytes.NewReader(frame), 2); err == nil {
		t.Fatalf("expected maxCount error")
	}
}

func TestCompressed(t *testing.T) {
	qs := sample(200)
	var buf bytes.Buffer
	if err := WriteCompressed(&buf, qs); err != nil {
		t.Fatalf("write compressed: %v", err)
	}
	got, err := ReadCompressed(&buf, 0)
	if err != nil {
		t.Fatalf("read compressed: %v", err)
	}
	sameBits(t, got, qs)

	txt, err := EncodeText(qs)
	if err != nil {
		t.Fatalf("encode text: %v", err)
	}
	got, err = DecodeText(txt)
	if err != nil {
		t.Fatalf("decode text: %v", err)
	}
	sameBits(t, got, qs)

	if _, err := Decompress([]byte("not zstd"), 0); err == nil {
		t.Fatalf("expected decompress error")
	}
	c, _ := Compress(EncodeFrame(qs))
	if _, err := Decompress(c, 16); err == nil {
		t.Fatalf("expected maxBytes error")
	}
}

func TestReadFrameHugeCount(t *testing.T) {
	hdr := binary.AppendUvarint(nil, 1<<60)
	if _, err := ReadFrame(bytes.NewReader(hdr), 0); err == nil {
		t.Fatalf("expected error for header without payload")
	}

	// 宣告 5 筆，實際只有 2 筆
	frame := binary.AppendUvarint(nil, 5)
	frame = append(frame, EncodeFrame(sample(1))[1:]...)
	if _, err := ReadFrame(bytes.NewReader(frame), 0); err == nil {
		t.Fatalf("expected truncated payload error")
	}

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write(hdr); err != nil {
		t.Fatalf("zstd write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	if _, err := ReadCompressed(&buf, 0); err == nil {
		t.Fatalf("expected error from compressed header without payload")
	}
}

func TestDecompressLimit(t *testing.T) {
	bomb, err := Compress(make([]byte, 1<<20))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if _, err := Decompress(bomb, 1024); !errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		t.Fatalf("expected size exceeded, got %v", err)
	}
	out, err := Decompress(bomb, 1<<20)
	if err != nil || len(out) != 1<<20 {
		t.Fatalf("decompress at exact limit: len=%d err=%v", len(out), err)
	}

	big, err := Compress(make([]byte, MaxTextBytes+1))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	if _, err := DecodeText(base64.StdEncoding.EncodeToString(big)); !errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		t.Fatalf("DecodeText should cap output, got %v", err)
	}
}
