package bdf

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const miniBDF = `STARTFONT 2.1
COMMENT generated by hand
FONT -gnu-unifont-medium-r-normal--8-80-75-75-c-80-iso10646-1
SIZE 8 75 75
FONTBOUNDINGBOX 8 8 0 0
STARTPROPERTIES 3
FAMILY_NAME "Unifont"
WEIGHT_NAME "Medium"
COPYRIGHT "Public domain"
ENDPROPERTIES
CHARS 1
STARTCHAR A
ENCODING 65
DWIDTH 8 0
BBX 8 8 0 0
BITMAP
00
18
24
42
7E
42
42
00
ENDCHAR
ENDFONT
`

func TestParseRecordTree(t *testing.T) {
	rec, err := ParseRecord(strings.NewReader(miniBDF), "FONT")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Kind != "FONT" {
		t.Errorf("expected FONT, got %s", rec.Kind)
	}
	if !reflect.DeepEqual(rec.Args, []string{"2.1"}) {
		t.Errorf("unexpected args %v", rec.Args)
	}
	if len(rec.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(rec.Children))
	}
	if rec.Children[0].Kind != "PROPERTIES" || rec.Children[1].Kind != "CHAR" {
		t.Fatalf("unexpected children %v / %v", rec.Children[0].Kind, rec.Children[1].Kind)
	}

	char := rec.Children[1]
	if !reflect.DeepEqual(char.Args, []string{"A"}) {
		t.Errorf("unexpected CHAR args %v", char.Args)
	}
	if enc := char.Items["ENCODING"]; !reflect.DeepEqual(enc, Property{Int(65)}) {
		t.Errorf("unexpected ENCODING %#v", enc)
	}
	bm, ok := char.Items["BITMAP"].(*Bitmap)
	if !ok {
		t.Fatalf("expected a Bitmap, got %#v", char.Items["BITMAP"])
	}
	if len(bm.Data) != 8 || bm.Data[3] != 0x42 {
		t.Errorf("unexpected bitmap data % X", bm.Data)
	}
}

func TestParseRecordUnexpectedKind(t *testing.T) {
	_, err := ParseRecord(strings.NewReader("STARTCHAR A\nENDCHAR\n"), "FONT")
	if !errors.Is(err, ErrUnexpectedRecordKind) {
		t.Fatalf("expected ErrUnexpectedRecordKind, got %v", err)
	}

	_, err = ParseRecord(strings.NewReader("FOO 1\n"), "")
	if !errors.Is(err, ErrUnexpectedRecordKind) {
		t.Fatalf("expected ErrUnexpectedRecordKind, got %v", err)
	}
}

func TestParseRecordMismatchedEndTag(t *testing.T) {
	_, err := ParseRecord(strings.NewReader("STARTFONT\nENDCHAR\n"), "")
	if !errors.Is(err, ErrMismatchedEndTag) {
		t.Fatalf("expected ErrMismatchedEndTag, got %v", err)
	}

	// The nested close must match the nested open.
	_, err = ParseRecord(strings.NewReader("STARTFONT\nSTARTPROPERTIES\nENDFONT\n"), "")
	if !errors.Is(err, ErrMismatchedEndTag) {
		t.Fatalf("expected ErrMismatchedEndTag, got %v", err)
	}
}

func TestParseRecordUnterminated(t *testing.T) {
	_, err := ParseRecord(strings.NewReader("STARTFONT\nSIZE 8 75 75\n"), "")
	if !errors.Is(err, ErrUnterminatedRecord) {
		t.Fatalf("expected ErrUnterminatedRecord, got %v", err)
	}
}

func TestParseRecordDuplicateKey(t *testing.T) {
	_, err := ParseRecord(strings.NewReader("STARTFONT\nSIZE 8 75 75\nSIZE 8 75 75\nENDFONT\n"), "")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestParseRecordBitmapNeedsBBX(t *testing.T) {
	_, err := ParseRecord(strings.NewReader("STARTCHAR A\nBITMAP\n00\nENDCHAR\n"), "")
	if !errors.Is(err, ErrMissingBBX) {
		t.Fatalf("expected ErrMissingBBX, got %v", err)
	}
}

func TestParseRecordDuplicateBitmap(t *testing.T) {
	const text = "STARTCHAR A\nBBX 8 1 0 0\nBITMAP\n00\nBITMAP\n00\nENDCHAR\n"
	_, err := ParseRecord(strings.NewReader(text), "")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}
