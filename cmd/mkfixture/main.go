// mkfixture builds a Parquet address fixture from a text file.
// Each non-blank input line is either a bare eircode or "address|eircode".
// Usage: go run ./cmd/mkfixture --in testdata/addresses.txt --out testdata/addresses.parquet
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/model"
)

func main() {
	in := flag.String("in", "testdata/addresses.txt", "input text file")
	out := flag.String("out", "testdata/addresses.parquet", "output parquet")
	maxRows := flag.Int("rows", 0, "max rows to output (0 = all)")
	checkOnly := flag.Bool("check", false, "only print stats of --out, don't write")
	flag.Parse()

	if *checkOnly {
		if err := printStats(*out); err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(f, *maxRows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.AddressRow](outFile)
	if _, err := writer.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
}

// readRows parses the fixture text format. Row ids are 1-based line order.
func readRows(r io.Reader, maxRows int) ([]model.AddressRow, error) {
	var rows []model.AddressRow
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}

		id := strconv.Itoa(len(rows) + 1)
		row := model.AddressRow{AddressID: &id}
		if addr, code, ok := strings.Cut(line, "|"); ok {
			addr, code = strings.TrimSpace(addr), strings.TrimSpace(code)
			row.Address = &addr
			if code != "" {
				row.Eircode = &code
			}
		} else {
			row.Eircode = &line
		}
		rows = append(rows, row)
	}
	return rows, sc.Err()
}

func printStats(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return err
	}
	pf, err := goparquet.OpenFile(f, stat.Size())
	if err != nil {
		return err
	}

	reader := goparquet.NewGenericReader[model.AddressRow](pf)
	defer reader.Close()

	modes := []struct {
		name string
		opts eircode.Options
	}{
		{"default", eircode.Options{}},
		{"strict", eircode.Options{Strict: true}},
		{"lax", eircode.Options{Lax: true}},
	}
	valid := make([]int, len(modes))
	total, missing := 0, 0

	buf := make([]model.AddressRow, 1024)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			total++
			if buf[i].Eircode == nil {
				missing++
				continue
			}
			for j, m := range modes {
				if ok, _ := eircode.Check(*buf[i].Eircode, m.opts); ok {
					valid[j]++
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	fmt.Printf("Total: %d, Missing: %d\n", total, missing)
	for j, m := range modes {
		fmt.Printf("  %-8s %d valid\n", m.name, valid[j])
	}
	return nil
}
