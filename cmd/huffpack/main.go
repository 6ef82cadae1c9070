package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/huffpack/huffman"
)

type stats struct {
	Input   string  `json:"input"`
	Output  string  `json:"output"`
	InSize  int     `json:"in_size"`
	OutSize int     `json:"out_size"`
	Ratio   float64 `json:"ratio"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprint(os.Stderr, "Compress: huffpack <input-file>\nDecompress: huffpack <input.huff>\n")
		os.Exit(1)
	}

	inputPath := os.Args[1]
	ext := strings.ToLower(filepath.Ext(inputPath))

	// If input is .huff → decompress
	if ext == ".huff" {
		outPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		if err := decompressFile(inputPath, outPath); err != nil {
			fmt.Fprintln(os.Stderr, "decompress error:", err)
			os.Exit(1)
		}
		fmt.Printf("Decompressed %s → %s\n", inputPath, outPath)
		return
	}

	// Otherwise: compress and report stats
	outPath := inputPath + ".huff"
	st, err := compressFile(inputPath, outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "compress error:", err)
		os.Exit(1)
	}

	line, err := jsoniter.Marshal(st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stats error:", err)
		os.Exit(1)
	}
	fmt.Println(string(line))
}

func compressFile(inPath, outPath string) (stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return stats{}, err
	}

	enc, err := huffman.Encode(data)
	if err != nil {
		return stats{}, err
	}

	if err := os.WriteFile(outPath, enc, 0o644); err != nil {
		return stats{}, err
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(len(enc)) / float64(len(data))
	}
	return stats{
		Input:   inPath,
		Output:  outPath,
		InSize:  len(data),
		OutSize: len(enc),
		Ratio:   ratio,
	}, nil
}

func decompressFile(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	dec, err := huffman.Decode(data)
	if err != nil {
		return err
	}

	return os.WriteFile(outPath, dec, 0o644)
}
