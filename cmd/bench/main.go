package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/zkconv"
	"github.com/aretw0/zkconv/pkg/adapters/fs"
)

func main() {
	sections := flag.Int("sections", 100, "Number of sections to generate")
	notes := flag.Int("notes", 50, "Number of notes per section")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "zkconv_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	fmt.Printf("Generating %d sections x %d notes in %s...\n", *sections, *notes, benchDir)
	startGen := time.Now()

	var b strings.Builder
	b.WriteString("Benchmark archive\n")
	for s := range *sections {
		fmt.Fprintf(&b, "\nSection %d\n\n", s)
		for n := range *notes {
			fmt.Fprintf(&b, "[index] %d.%d [title] Note %d of section %d [zettel] Generated body text for note %d. [keyword] bench\n", s, n, n, s, n)
		}
	}
	b.WriteString("\nEnd\n\n.")

	input := filepath.Join(benchDir, "zettelkasten.txt")
	if err := os.WriteFile(input, []byte(b.String()), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), b.Len())

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Run 1: text to table
	fmt.Println("Running Convert (txt -> csv)...")
	start := time.Now()
	res, err := zkconv.Convert(input, zkconv.WithLogger(logger), zkconv.WithHeader(true))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Run 1 Result: %v (Records: %d, Pruned: %d, Issues: %d)\n", time.Since(start), res.Records, res.Pruned, len(res.Issues))

	// Run 2: table to text, reading the semicolon separated export back
	fmt.Println("Running Convert (csv -> txt)...")
	start = time.Now()
	res, err = zkconv.Convert(res.Output,
		zkconv.WithLogger(logger),
		zkconv.WithSerializer(".csv", &fs.CSVSerializer{ReadComma: ';', WriteComma: ';', Header: true}),
	)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Run 2 Result: %v (Records: %d, Issues: %d)\n", time.Since(start), res.Records, len(res.Issues))
}
