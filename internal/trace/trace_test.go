// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package trace

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	vcp "github.com/saferwall/vcpcat"
)

func writeTrace(t *testing.T, records []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.vcpt")

	buf := append([]byte(magic), byte(formatVersion))
	buf = append(buf, records...)

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("writing test trace: %v", err)
	}
	return path
}

func TestOpenRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.vcpt")
	if err := os.WriteFile(path, []byte("nope"), 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	_, err := Open(path, nil)
	if err != ErrBadMagic {
		t.Errorf("Open() = %v, want ErrBadMagic", err)
	}
}

func TestNonTableRecordRoundTrip(t *testing.T) {
	record := []byte{tagNonTable, 0x10, 0x00, 0xFF, 0x00, 0x80, 2, 2}
	path := writeTrace(t, record)

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	rec, ok, err := r.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if rec.Kind != NonTable {
		t.Errorf("Kind = %v, want NonTable", rec.Kind)
	}
	if rec.Code != 0x10 {
		t.Errorf("Code = 0x%02x, want 0x10", rec.Code)
	}
	if rec.Version != (vcp.Version{Major: 2, Minor: 2}) {
		t.Errorf("Version = %v, want 2.2", rec.Version)
	}
	if rec.NonTable.SH != 0x00 || rec.NonTable.SL != 0x80 {
		t.Errorf("NonTable SH/SL = %#v", rec.NonTable)
	}

	if _, ok, err := r.Next(); err != nil || ok {
		t.Errorf("expected EOF after one record, got ok=%v err=%v", ok, err)
	}
}

func TestTableRecordRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	header := []byte{tagTable, 0x73, 2, 1}
	length := make([]byte, 2)
	binary.BigEndian.PutUint16(length, uint16(len(payload)))
	record := append(header, length...)
	record = append(record, payload...)

	path := writeTrace(t, record)
	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	rec, ok, err := r.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if rec.Kind != Table {
		t.Errorf("Kind = %v, want Table", rec.Kind)
	}
	if rec.Code != 0x73 {
		t.Errorf("Code = 0x%02x, want 0x73", rec.Code)
	}
	if string(rec.Table) != string(payload) {
		t.Errorf("Table = %v, want %v", rec.Table, payload)
	}
}

func TestTableRecordHeaderTruncatedReturnsError(t *testing.T) {
	// tagTable + code + major + minor + one length byte: the second length
	// byte is missing, so the 5-byte header cannot be decoded. This must
	// return an error rather than slice out of the mmap.
	record := []byte{tagTable, 0x73, 2, 1, 0}
	path := writeTrace(t, record)

	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if _, ok, err := r.Next(); err == nil || ok {
		t.Errorf("Next() on a truncated table header = ok=%v err=%v, want an error", ok, err)
	}
}

func TestMultipleRecordsInSequence(t *testing.T) {
	nonTable := []byte{tagNonTable, 0x10, 0, 0xFF, 0, 128, 2, 2}
	tableHeader := []byte{tagTable, 0x73, 2, 1, 0, 1}
	tablePayload := []byte{0xAB}
	records := append(append([]byte{}, nonTable...), tableHeader...)
	records = append(records, tablePayload...)

	path := writeTrace(t, records)
	r, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	var kinds []Kind
	for {
		rec, ok, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		kinds = append(kinds, rec.Kind)
	}

	if len(kinds) != 2 || kinds[0] != NonTable || kinds[1] != Table {
		t.Errorf("decoded kinds = %v, want [NonTable Table]", kinds)
	}
}
