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

// Package qcodec 將一批 float64 quaternion 編成二進位 frame，可選 zstd 壓縮。
//
// frame 格式：
//
//	frame := uvarint(count) || count × (w, x, y, z) float64 little-endian
//
// 這不是 JSON 友善的格式；需要文字傳輸時使用 EncodeText / DecodeText（Base64）。
package qcodec

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"

	"github.com/zintix-labs/numlab/errs"
	"github.com/zintix-labs/numlab/num"
	"github.com/zintix-labs/numlab/quat"
)

// Q 為 frame 內的元素型別。
type Q = quat.Quaternion[num.Real]

const (
	recordSize = 4 * 8
	readChunk  = 4096
)

// EncodeFrame 將 qs 編成 frame。
func EncodeFrame(qs []Q) []byte {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(qs)))

	out := make([]byte, n, n+len(qs)*recordSize)
	copy(out, hdr[:n])
	for _, q := range qs {
		out = appendRecord(out, q)
	}
	return out
}

// DecodeFrame 解出 EncodeFrame 產生的 frame。frame 長度不符時回傳錯誤。
func DecodeFrame(frame []byte) ([]Q, error) {
	cnt, size := binary.Uvarint(frame)
	if size <= 0 {
		return nil, errs.NewWarn("decode quaternion frame failed: invalid varint count")
	}
	body := frame[size:]
	if uint64(len(body))/recordSize < cnt {
		return nil, errs.NewWarn("decode quaternion frame failed: truncated payload")
	}
	if uint64(len(body)) != cnt*recordSize {
		return nil, errs.NewWarn("decode quaternion frame failed: trailing bytes")
	}
	out := make([]Q, cnt)
	for i := range out {
		out[i] = readRecord(body[i*recordSize:])
	}
	return out, nil
}

// WriteFrame 將 frame 寫入 w。
func WriteFrame(w io.Writer, qs []Q) error {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(qs)))
	if _, err := w.Write(hdr[:n]); err != nil {
		return errs.Wrap(err, "write quaternion frame header failed")
	}
	var rec [recordSize]byte
	for _, q := range qs {
		if _, err := w.Write(appendRecord(rec[:0], q)); err != nil {
			return errs.Wrap(err, "write quaternion frame payload failed")
		}
	}
	return nil
}

// ReadFrame 從 r 讀出一個 frame。
//
// maxCount 為筆數上限，避免讀取不可信輸入時無上限配置記憶體；0 表示不限制。
func ReadFrame(r io.Reader, maxCount uint64) ([]Q, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		b := bufio.NewReader(r)
		br, r = b, b
	}
	cnt, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, errs.Wrap(err, "read quaternion frame header failed")
	}
	if maxCount > 0 && cnt > maxCount {
		return nil, errs.NewWarn("read quaternion frame failed: count exceeds maxCount")
	}
	// 筆數來自輸入，不能直接用來配置；邊讀邊長
	out := make([]Q, 0, min(cnt, readChunk))
	var rec [recordSize]byte
	for range cnt {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, errs.Wrap(err, "read quaternion frame payload failed")
		}
		out = append(out, readRecord(rec[:]))
	}
	return out, nil
}

// EncodeText 回傳壓縮後 frame 的 Base64 字串，適合放進 JSON 或 log。
func EncodeText(qs []Q) (string, error) {
	b, err := Compress(EncodeFrame(qs))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeText 為 EncodeText 的反向。解壓後超過 MaxTextBytes 時回傳錯誤。
func DecodeText(s string) ([]Q, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.Wrap(err, "decode base64 failed")
	}
	frame, err := Decompress(b, MaxTextBytes)
	if err != nil {
		return nil, err
	}
	return DecodeFrame(frame)
}

func appendRecord(dst []byte, q Q) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(q.W)))
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(q.X)))
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(q.Y)))
	dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(q.Z)))
	return dst
}

func readRecord(b []byte) Q {
	f := func(i int) num.Real {
		return num.Real(math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:])))
	}
	return quat.New(f(0), f(1), f(2), f(3))
}
