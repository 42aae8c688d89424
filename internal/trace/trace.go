// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package trace reads capture traces: a small binary container recording a
// sequence of DDC/CI GET VCP exchanges, so vcpcat can replay them through
// the catalog's formatters without a real I2C/DDC transport. It memory-maps
// the trace file the same way the teacher memory-maps the PE file it
// dumps.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/text/encoding/unicode"

	vcp "github.com/saferwall/vcpcat"
)

// magic identifies a capture trace file; formatVersion is the container
// format's own version, independent of the MCCS versions recorded inside it.
const (
	magic         = "VCPT"
	formatVersion = 1
)

// Record tags, one byte each, preceding every record in the trace body.
const (
	tagNonTable = 0x01
	tagTable    = 0x02
	tagString   = 0x03
)

// String record kinds.
const (
	KindModel  = 0x01
	KindSerial = 0x02
)

// ErrBadMagic is returned by Open when the file does not start with the
// capture-trace magic bytes.
var ErrBadMagic = errors.New("trace: not a capture trace file (bad magic)")

// ErrUnsupportedVersion is returned by Open when the trace's container
// format version is newer than this reader understands.
var ErrUnsupportedVersion = errors.New("trace: unsupported capture trace format version")

// Kind identifies what a Record carries.
type Kind int

const (
	NonTable Kind = iota
	Table
	ModelString
	SerialString
)

// Record is one decoded entry from a capture trace.
type Record struct {
	Kind     Kind
	Code     vcp.FeatureCode
	Version  vcp.Version
	NonTable vcp.NonTableResponse
	Table    []byte
	Text     string
}

// Reader iterates the records of a memory-mapped capture trace.
type Reader struct {
	data   mmap.MMap
	f      *os.File
	pos    int
	logger *log.Helper
}

// Open memory-maps path and validates its header. logger may be nil, in
// which case a stderr logger filtered to errors is used, mirroring the
// teacher's file.go default.
func Open(path string, logger log.Logger) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	if logger == nil {
		logger = log.NewStdLogger(os.Stderr)
	}

	r := &Reader{
		data:   data,
		f:      f,
		logger: log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError))),
	}

	if err := r.readHeader(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Reader) readHeader() error {
	if len(r.data) < len(magic)+1 {
		return ErrBadMagic
	}
	if string(r.data[:len(magic)]) != magic {
		return ErrBadMagic
	}
	r.pos = len(magic)

	version := r.data[r.pos]
	r.pos++
	if version > formatVersion {
		return ErrUnsupportedVersion
	}
	return nil
}

// Close unmaps the trace and closes the underlying file.
func (r *Reader) Close() error {
	if r.data != nil {
		_ = r.data.Unmap()
	}
	if r.f != nil {
		return r.f.Close()
	}
	return nil
}

// Next decodes the record at the current position, advancing past it. It
// returns ok=false once the trace is exhausted.
func (r *Reader) Next() (rec Record, ok bool, err error) {
	if r.pos >= len(r.data) {
		return Record{}, false, nil
	}

	tag := r.data[r.pos]
	r.pos++

	switch tag {
	case tagNonTable:
		if r.pos+7 > len(r.data) {
			return Record{}, false, fmt.Errorf("trace: truncated non-table record at offset %d", r.pos)
		}
		b := r.data[r.pos : r.pos+7]
		r.pos += 7
		rec = Record{
			Kind: NonTable,
			Code: b[0],
			Version: vcp.Version{
				Major: b[5],
				Minor: b[6],
			},
			NonTable: vcp.NonTableResponse{
				VCPCode: b[0],
				MH:      b[1],
				ML:      b[2],
				SH:      b[3],
				SL:      b[4],
			},
		}
		return rec, true, nil

	case tagTable:
		if r.pos+5 > len(r.data) {
			return Record{}, false, fmt.Errorf("trace: truncated table record header at offset %d", r.pos)
		}
		code := r.data[r.pos]
		major := r.data[r.pos+1]
		minor := r.data[r.pos+2]
		length := binary.BigEndian.Uint16(r.data[r.pos+3 : r.pos+5])
		r.pos += 5
		if r.pos+int(length) > len(r.data) {
			return Record{}, false, fmt.Errorf("trace: truncated table payload at offset %d", r.pos)
		}
		buf := make([]byte, length)
		copy(buf, r.data[r.pos:r.pos+int(length)])
		r.pos += int(length)
		rec = Record{
			Kind:    Table,
			Code:    code,
			Version: vcp.Version{Major: major, Minor: minor},
			Table:   buf,
		}
		return rec, true, nil

	case tagString:
		if r.pos+3 > len(r.data) {
			return Record{}, false, fmt.Errorf("trace: truncated string record header at offset %d", r.pos)
		}
		kind := r.data[r.pos]
		length := binary.BigEndian.Uint16(r.data[r.pos+1 : r.pos+3])
		r.pos += 3
		if r.pos+int(length) > len(r.data) {
			return Record{}, false, fmt.Errorf("trace: truncated string payload at offset %d", r.pos)
		}
		raw := r.data[r.pos : r.pos+int(length)]
		r.pos += int(length)

		text, decErr := decodeUTF16LE(raw)
		if decErr != nil {
			r.logger.Errorf("trace: dropping malformed UTF-16 string record: %v", decErr)
			text = ""
		}

		k := ModelString
		if kind == KindSerial {
			k = SerialString
		}
		return Record{Kind: k, Text: text}, true, nil

	default:
		return Record{}, false, fmt.Errorf("trace: unknown record tag 0x%02x at offset %d", tag, r.pos-1)
	}
}

func decodeUTF16LE(b []byte) (string, error) {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
