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
	"errors"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/numlab/errs"
)

// Level 為壓縮等級，預設最快。
var Level = zstd.SpeedFastest

const (
	// MaxDecodedBytes 為未指定上限時單次解壓的上限。
	MaxDecodedBytes = 256 << 20
	// MaxTextBytes 為 DecodeText 解壓後的上限。
	MaxTextBytes = 8 << 20
)

// --- Pools ---
var (
	encPool sync.Pool
	decPool sync.Pool
)

func getEncoder(w io.Writer) (*zstd.Encoder, error) {
	if v := encPool.Get(); v != nil {
		zw := v.(*zstd.Encoder)
		zw.Reset(w)
		return zw, nil
	}
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(Level),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, errs.Wrap(err, "create zstd encoder failed")
	}
	return zw, nil
}

func releaseEncoder(zw *zstd.Encoder) {
	encPool.Put(zw)
}

func getDecoder() (*zstd.Decoder, error) {
	if v := decPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return newDecoder(MaxDecodedBytes)
}

func newDecoder(limit uint64) (*zstd.Decoder, error) {
	zr, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(limit),
	)
	if err != nil {
		return nil, errs.Wrap(err, "create zstd decoder failed")
	}
	return zr, nil
}

// Compress 以 zstd 壓縮整段資料。
func Compress(b []byte) ([]byte, error) {
	zw, err := getEncoder(nil)
	if err != nil {
		return nil, err
	}
	defer releaseEncoder(zw)
	return zw.EncodeAll(b, nil), nil
}

// Decompress 解壓整段資料，解壓結果不得超過 maxBytes；maxBytes <= 0 時以 MaxDecodedBytes 為上限。
//
// 上限由解碼器在解壓過程中檢查，超過時回傳的錯誤可用 errors.Is(err, zstd.ErrDecoderSizeExceeded) 判斷。
func Decompress(b []byte, maxBytes int) ([]byte, error) {
	limit := uint64(MaxDecodedBytes)
	if maxBytes > 0 {
		limit = uint64(maxBytes)
	}

	var zr *zstd.Decoder
	var err error
	if limit == MaxDecodedBytes {
		if zr, err = getDecoder(); err != nil {
			return nil, err
		}
		defer decPool.Put(zr)
	} else {
		if zr, err = newDecoder(limit); err != nil {
			return nil, err
		}
		defer zr.Close()
	}

	out, err := zr.DecodeAll(b, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, errs.Attach(errs.Warn, err, "zstd decompress failed: output exceeds limit")
	}
	if err != nil {
		return nil, errs.Wrap(err, "zstd decompress failed")
	}
	return out, nil
}

// WriteCompressed 以串流方式寫出壓縮後的 frame。
func WriteCompressed(w io.Writer, qs []Q) error {
	zw, err := getEncoder(w)
	if err != nil {
		return err
	}
	defer releaseEncoder(zw)
	if err := WriteFrame(zw, qs); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return errs.Wrap(err, "close zstd stream failed")
	}
	return nil
}

// ReadCompressed 讀取 WriteCompressed 寫出的串流。
func ReadCompressed(r io.Reader, maxCount uint64) ([]Q, error) {
	zr, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(MaxDecodedBytes),
	)
	if err != nil {
		return nil, errs.Wrap(err, "open zstd stream failed")
	}
	defer zr.Close()
	return ReadFrame(zr, maxCount)
}
