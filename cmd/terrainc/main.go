// Command terrainc compresses and decompresses whitespace-separated integer
// height grids using the BPR5 codec.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cocosip/go-terrain-codec/terrain"
	"github.com/cocosip/go-terrain-codec/text"
)

const usage = `usage: terrainc <input> <output> [--verify]

Encodes a whitespace-separated integer grid (input) into a BPR5 container
(output), or decodes a BPR5 container back into text, depending on which
form the input file is in.

  -h, --help   print this message and exit
  --verify     after encoding, decode the freshly written container and
               byte-compare it against the input text
`

const (
	exitIOError    = 1
	exitMalformed  = 2
	exitVerifyFail = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var input, output string
	var verify bool

	for _, a := range args {
		switch a {
		case "-h", "--help":
			fmt.Print(usage)
			return 0
		case "--verify":
			verify = true
		default:
			switch {
			case input == "":
				input = a
			case output == "":
				output = a
			default:
				fmt.Fprintln(os.Stderr, "terrainc: too many arguments")
				fmt.Fprint(os.Stderr, usage)
				return exitIOError
			}
		}
	}
	if input == "" || output == "" {
		fmt.Fprint(os.Stderr, usage)
		return exitIOError
	}

	in, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terrainc: %v\n", err)
		return exitIOError
	}
	defer in.Close()

	header := make([]byte, 4)
	n, err := io.ReadFull(in, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		fmt.Fprintf(os.Stderr, "terrainc: %v\n", err)
		return exitIOError
	}
	if _, err := in.Seek(0, io.SeekStart); err != nil {
		fmt.Fprintf(os.Stderr, "terrainc: %v\n", err)
		return exitIOError
	}
	isContainer := n == 4 && string(header) == "BPR5"

	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terrainc: %v\n", err)
		return exitIOError
	}
	defer out.Close()

	inInfo, _ := in.Stat()
	inSize := int64(0)
	if inInfo != nil {
		inSize = inInfo.Size()
	}

	start := time.Now()
	if isContainer {
		if err := terrain.Decode(in, out); err != nil {
			fmt.Fprintf(os.Stderr, "terrainc: decode: %v\n", err)
			return exitCodeFor(err)
		}
		reportTiming("decode", start, inSize, output)
		return 0
	}

	if err := terrain.Encode(in, out); err != nil {
		fmt.Fprintf(os.Stderr, "terrainc: encode: %v\n", err)
		return exitCodeFor(err)
	}
	reportTiming("encode", start, inSize, output)

	if verify {
		if err := verifyRoundtrip(input, output); err != nil {
			fmt.Fprintf(os.Stderr, "terrainc: verify: %v\n", err)
			return exitVerifyFail
		}
		fmt.Println("verify: OK")
	}
	return 0
}

func exitCodeFor(err error) int {
	if errors.Is(err, terrain.ErrBadMagic) ||
		errors.Is(err, terrain.ErrTruncatedHeader) ||
		errors.Is(err, terrain.ErrTruncatedVarint) ||
		errors.Is(err, terrain.ErrUnknownPredictor) ||
		errors.Is(err, terrain.ErrUnknownDeltaMode) ||
		errors.Is(err, terrain.ErrBlockLengthOverflow) ||
		errors.Is(err, terrain.ErrResidualUnderflow) ||
		errors.Is(err, terrain.ErrResidualOverflow) ||
		errors.Is(err, text.ErrInvalidToken) {
		return exitMalformed
	}
	return exitIOError
}

func reportTiming(stage string, start time.Time, inSize int64, outputPath string) {
	elapsed := time.Since(start)
	outInfo, err := os.Stat(outputPath)
	var outSize int64
	if err == nil {
		outSize = outInfo.Size()
	}

	ratio := 0.0
	if outSize > 0 {
		ratio = float64(inSize) / float64(outSize)
	}
	throughput := 0.0
	if elapsed > 0 {
		throughput = float64(inSize) / 1024 / elapsed.Seconds()
	}

	fmt.Printf("%s: %s -> %d bytes in %s (ratio %.2fx, %.1f kB/s)\n",
		stage, humanBytes(inSize), outSize, elapsed.Round(time.Millisecond), ratio, throughput)
}

func humanBytes(n int64) string {
	return fmt.Sprintf("%d bytes", n)
}
