package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestWriteHeader(t *testing.T) {
	type testRow struct {
		name   string
		ft     FrequencyTable
		expect string
	}

	testData := [...]testRow{
		{name: "abracadabra", ft: makeTestTable(), expect: "5 a5 b2 c1 d1 r2 "},
		{name: "empty", ft: FrequencyTable{EndMarker: 1}, expect: "0 "},
		{name: "digits-and-spaces", ft: FrequencyTable{' ': 2, '5': 3, EndMarker: 1}, expect: "2  2 53 "},
		{name: "binary", ft: FrequencyTable{0x00: 1, 0xff: 1234567890123, EndMarker: 1}, expect: "2 \x001 \xff1234567890123 "},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteHeader(&buf, row.ft); err != nil {
				t.Fatalf("WriteHeader failed: %v", err)
			}
			if actual := buf.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}

			ft, err := ReadHeader(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("ReadHeader failed: %v", err)
			}
			if !ft.Equal(row.ft) {
				t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", row.ft, ft)
			}
		})
	}
}

func TestWriteHeader_MissingEndMarker(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHeader(&buf, FrequencyTable{'a': 3})
	if !errors.Is(err, ErrMissingEndMarker) {
		t.Errorf("expected ErrMissingEndMarker, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestReadHeader_LeavesBody(t *testing.T) {
	r := bytes.NewReader([]byte("1 a4 \xf0"))
	ft, err := ReadHeader(r)
	if err != nil {
		t.Fatalf("ReadHeader failed: %v", err)
	}
	if !ft.Equal(FrequencyTable{'a': 4, EndMarker: 1}) {
		t.Errorf("wrong table: %v", ft)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 body byte left unread, got %d", r.Len())
	}
}

func TestReadHeader_Malformed(t *testing.T) {
	testData := [...]string{
		"",
		" ",
		"x ",
		"-1 ",
		"1",
		"257 ",
		"2 a5 ",
		"1 a",
		"1 a5",
		"1 a5x",
		"1 a-5 ",
		"1 a ",
		"1 a0 ",
		"2 a1 a2 ",
		"1 a99999999999999999999999 ",
		"99999999999999999999999 ",
		"01 a4 ",
		"1 a004 ",
		"00 ",
		"2 b1 a1 ",
	}
	for _, input := range testData {
		t.Run(input, func(t *testing.T) {
			ft, err := ReadHeader(bytes.NewReader([]byte(input)))
			if !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("expected ErrMalformedHeader, got %v", err)
			}
			if ft != nil {
				t.Errorf("expected no table, got %v", ft)
			}
		})
	}
}

func TestReadHeader_ReadError(t *testing.T) {
	errBoom := errors.New("boom")
	_, err := ReadHeader(&failingByteReader{data: []byte("3 a"), err: errBoom})
	if !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
	if errors.Is(err, ErrMalformedHeader) {
		t.Errorf("I/O error reported as malformed header: %v", err)
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 100; iter++ {
		ft := randomTable(rng)

		var buf bytes.Buffer
		if err := WriteHeader(&buf, ft); err != nil {
			t.Fatalf("iter %d: WriteHeader failed: %v", iter, err)
		}
		actual, err := ReadHeader(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("iter %d: ReadHeader failed: %v", iter, err)
		}
		if !actual.Equal(ft) {
			t.Errorf("iter %d: round trip mismatch:\n\texpect: %v\n\tactual: %v", iter, ft, actual)
		}
	}
}
