package bdf

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func lines(s string) *lineReader {
	return newLineReader(strings.NewReader(s))
}

func TestParseBitmap(t *testing.T) {
	rd := lines("BITMAP\n00\n18\n3C\n7E\nFF\n00\n00\n00\nENDCHAR\n")
	bm, err := parseBitmap(rd, 8, 8, "")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Stride() != 1 {
		t.Errorf("expected stride 1, got %d", bm.Stride())
	}
	want := []byte{0x00, 0x18, 0x3C, 0x7E, 0xFF, 0x00, 0x00, 0x00}
	if !bytes.Equal(bm.Data, want) {
		t.Errorf("expected % X, got % X", want, bm.Data)
	}
}

func TestParseBitmapNarrowWidth(t *testing.T) {
	// 5 pixels still occupy a whole byte per row.
	rd := lines("BITMAP\nF8\nF8\nF8\nF8\nF8\nF8\nF8\nF8\n")
	bm, err := parseBitmap(rd, 5, 8, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(bm.Data) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(bm.Data))
	}
}

func TestParseBitmapWideRows(t *testing.T) {
	rd := lines("BITMAP\nFFE0\n0100\n")
	bm, err := parseBitmap(rd, 13, 2, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xE0, 0x01, 0x00}
	if !bytes.Equal(bm.Data, want) {
		t.Errorf("expected % X, got % X", want, bm.Data)
	}
}

func TestParseBitmapMissingHeader(t *testing.T) {
	rd := lines("00\n18\n")
	if _, err := parseBitmap(rd, 8, 2, ""); !errors.Is(err, ErrExpectedBitmap) {
		t.Fatalf("expected ErrExpectedBitmap, got %v", err)
	}
}

func TestParseBitmapOddDigits(t *testing.T) {
	rd := lines("BITMAP\n0\n")
	if _, err := parseBitmap(rd, 8, 1, ""); !errors.Is(err, ErrMalformedBitmapRow) {
		t.Fatalf("expected ErrMalformedBitmapRow, got %v", err)
	}
}

func TestParseBitmapBadHex(t *testing.T) {
	rd := lines("BITMAP\nZZ\n")
	if _, err := parseBitmap(rd, 8, 1, ""); !errors.Is(err, ErrMalformedBitmapRow) {
		t.Fatalf("expected ErrMalformedBitmapRow, got %v", err)
	}
}

func TestParseBitmapTruncated(t *testing.T) {
	rd := lines("BITMAP\n00\n")
	if _, err := parseBitmap(rd, 8, 4, ""); !errors.Is(err, ErrMalformedBitmapRow) {
		t.Fatalf("expected ErrMalformedBitmapRow, got %v", err)
	}
}

func TestBitmapString(t *testing.T) {
	bm := &Bitmap{Width: 8, Height: 2, Data: []byte{0x80, 0x01}}
	want := "█       \n       █\n"
	if got := bm.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
