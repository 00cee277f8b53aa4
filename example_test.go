package zkconv_test

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/zkconv"
)

// Example_convert turns a text archive into a semicolon separated table.
func Example_convert() {
	dir, err := os.MkdirTemp("", "zkconv-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "notes.txt")
	text := "\nChunking\n\n[index] 43900.000001 [zettel] compact units: grouped by meaning\n"
	if err := os.WriteFile(input, []byte(text), 0o644); err != nil {
		log.Fatal(err)
	}

	res, err := zkconv.Convert(input,
		zkconv.WithClock(time.Date(2020, 8, 17, 0, 0, 0, 0, time.UTC)),
		zkconv.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(res.Output)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(filepath.Base(res.Output))
	fmt.Print(string(data))
	// Output:
	// notes_44060.000000.csv
	// 44060.000040;44060.000000;Chunking;Index card;;
	// 43900.000001;44060.000040;Compact units;Grouped by meaning;;
}

// ExampleLoad reads an archive into memory without writing anything.
func ExampleLoad() {
	dir, err := os.MkdirTemp("", "zkconv-load-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "notes.csv")
	table := "Index,Title,Zettel\n43900.000001,Focused mode,attention on one thing\n"
	if err := os.WriteFile(input, []byte(table), 0o644); err != nil {
		log.Fatal(err)
	}

	lib, err := zkconv.Load(input, zkconv.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		log.Fatal(err)
	}

	for key, z := range lib.All() {
		fmt.Printf("%s %s: %s\n", key, z.Title, z.Body)
	}
	// Output:
	// 43900.000001 Focused mode: Attention on one thing
}
