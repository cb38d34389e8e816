package terrain_test

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-terrain-codec/codec"
	"github.com/cocosip/go-terrain-codec/terrain"
)

func TestEncodeDecodeTextRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single sample", "42\n"},
		{"arithmetic progression", "10 11 12 13 14\n"},
		{"identical rows", "5 6 7\n5 6 7\n"},
		{"negative values", "-1 -2 -3\n-4 -5 -6\n"},
		{"ragged rows", "1 2 3\n4 5\n6 7 8 9\n"},
		{"messy whitespace", "1    2\t3\n4  5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var container bytes.Buffer
			if err := terrain.Encode(bytes.NewReader([]byte(tt.input)), &container); err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if !bytes.HasPrefix(container.Bytes(), []byte("BPR5")) {
				t.Errorf("Encode output missing BPR5 magic: %x", container.Bytes())
			}

			var decoded bytes.Buffer
			if err := terrain.Decode(bytes.NewReader(container.Bytes()), &decoded); err != nil {
				t.Fatalf("Decode error: %v", err)
			}

			want := normalizeExpected(tt.input)
			if decoded.String() != want {
				t.Errorf("roundtrip = %q, want %q", decoded.String(), want)
			}
		})
	}
}

func TestDecodeRejectsMalformedContainer(t *testing.T) {
	var out bytes.Buffer
	err := terrain.Decode(bytes.NewReader([]byte("NOPE")), &out)
	if err == nil {
		t.Fatal("Decode(bad magic) expected error, got nil")
	}
}

func TestGridCodecRegistered(t *testing.T) {
	c, err := codec.Get("terrain-bpr5")
	if err != nil {
		t.Fatalf("codec.Get(terrain-bpr5) error: %v", err)
	}

	var encoded, decoded bytes.Buffer
	if err := c.Encode(bytes.NewReader([]byte("1 2 3\n")), &encoded); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if err := c.Decode(bytes.NewReader(encoded.Bytes()), &decoded); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if decoded.String() != "1 2 3\n" {
		t.Errorf("roundtrip = %q, want %q", decoded.String(), "1 2 3\n")
	}
}

// normalizeExpected mirrors the codec's whitespace normalization: samples
// joined by single spaces, every row (including a final line without a
// newline) terminated by exactly one newline; a trailing newline adds no
// blank row.
func normalizeExpected(input string) string {
	if input == "" {
		return ""
	}
	lines := splitLines(input)
	var out bytes.Buffer
	for _, line := range lines {
		fields := fieldsOf(line)
		for i, f := range fields {
			if i > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(f)
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func fieldsOf(line string) []string {
	var fields []string
	var cur []byte
	flush := func() {
		if len(cur) > 0 {
			fields = append(fields, string(cur))
			cur = nil
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' || c == '\r' {
			flush()
			continue
		}
		cur = append(cur, c)
	}
	flush()
	return fields
}
