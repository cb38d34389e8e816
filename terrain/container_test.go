package terrain

import (
	"bytes"
	"testing"
)

func TestEncodeGridEmptyGrid(t *testing.T) {
	// Scenario 1: empty grid.
	data, err := EncodeGrid(nil)
	if err != nil {
		t.Fatalf("EncodeGrid(nil) error: %v", err)
	}
	want := append([]byte{}, magic[:]...)
	want = append(want, 0x00) // varint(0) row count
	if !bytes.Equal(data, want) {
		t.Errorf("EncodeGrid(nil) = %x, want %x", data, want)
	}

	rows, err := DecodeGrid(data)
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("DecodeGrid(empty) = %v, want no rows", rows)
	}
}

func TestEncodeGridSingleSample(t *testing.T) {
	// Scenario 2: single row, single sample "42".
	rows := [][]int32{{42}}
	data, err := EncodeGrid(rows)
	if err != nil {
		t.Fatalf("EncodeGrid error: %v", err)
	}

	got, err := DecodeGrid(data)
	if err != nil {
		t.Fatalf("DecodeGrid error: %v", err)
	}
	if !equalGrid(got, rows) {
		t.Errorf("DecodeGrid(EncodeGrid(%v)) = %v", rows, got)
	}
}

func TestContainerRoundtripScenarios(t *testing.T) {
	scenarios := [][][]int32{
		{{10, 11, 12, 13, 14}},                     // scenario 3
		{{5, 6, 7}, {5, 6, 7}},                     // scenario 4
		{{-1, -2, -3}, {-4, -5, -6}},                // scenario 5
		{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}},           // scenario 6
	}
	for _, rows := range scenarios {
		data, err := EncodeGrid(rows)
		if err != nil {
			t.Fatalf("EncodeGrid(%v) error: %v", rows, err)
		}
		got, err := DecodeGrid(data)
		if err != nil {
			t.Fatalf("DecodeGrid error: %v", err)
		}
		if !equalGrid(got, rows) {
			t.Errorf("roundtrip mismatch for %v: got %v", rows, got)
		}
	}
}

func TestContainerMagicStability(t *testing.T) {
	inputs := [][][]int32{
		nil,
		{{1}},
		{{1, 2, 3}, {4, 5, 6}},
	}
	for _, rows := range inputs {
		data, err := EncodeGrid(rows)
		if err != nil {
			t.Fatalf("EncodeGrid error: %v", err)
		}
		if len(data) < 4 || !bytes.Equal(data[:4], magic[:]) {
			t.Errorf("EncodeGrid(%v) does not start with magic: %x", rows, data[:min4(len(data))])
		}
	}
}

func TestContainerHeaderIntegrity(t *testing.T) {
	rows := [][]int32{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}}
	data, err := EncodeGrid(rows)
	if err != nil {
		t.Fatalf("EncodeGrid error: %v", err)
	}
	r := bytes.NewReader(data[4:])
	rowCount, err := ReadVarint(r)
	if err != nil {
		t.Fatalf("ReadVarint(row count) error: %v", err)
	}
	if int(rowCount) != len(rows) {
		t.Errorf("row count = %d, want %d", rowCount, len(rows))
	}
	for i, row := range rows {
		l, err := ReadVarint(r)
		if err != nil {
			t.Fatalf("ReadVarint(row length %d) error: %v", i, err)
		}
		if int(l) != len(row) {
			t.Errorf("row %d length = %d, want %d", i, l, len(row))
		}
	}
}

func TestDecodeGridBadMagic(t *testing.T) {
	_, err := DecodeGrid([]byte("XXXX\x00"))
	if err != ErrBadMagic {
		t.Errorf("DecodeGrid(bad magic) = %v, want ErrBadMagic", err)
	}
}

func TestDecodeGridTruncatedHeader(t *testing.T) {
	_, err := DecodeGrid([]byte("BP"))
	if err == nil {
		t.Fatal("DecodeGrid(truncated) expected error, got nil")
	}
}

func TestTruncatedMultiBlockContainerFails(t *testing.T) {
	// Build a grid spanning more than one block (blockRows == 8).
	rows := make([][]int32, 20)
	for i := range rows {
		rows[i] = []int32{int32(i), int32(i + 1), int32(i + 2)}
	}
	data, err := EncodeGrid(rows)
	if err != nil {
		t.Fatalf("EncodeGrid error: %v", err)
	}

	// Truncate the container mid-stream: decoding must fail cleanly, not
	// silently return a short or corrupted grid.
	truncated := data[:len(data)-5]
	if _, err := DecodeGrid(truncated); err == nil {
		t.Error("DecodeGrid(truncated container) expected error, got nil")
	}
}

func equalGrid(a, b [][]int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInt32(a[i], b[i]) {
			return false
		}
	}
	return true
}

func min4(n int) int {
	if n < 4 {
		return n
	}
	return 4
}
