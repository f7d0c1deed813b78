package main

import (
	"strings"
	"testing"
)

func TestReadRows(t *testing.T) {
	input := `# fixture
A65 B2CD
1 Main St, Athenry | h65 x2y3

No code |
`
	rows, err := readRows(strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("readRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if *rows[0].Eircode != "A65 B2CD" || rows[0].Address != nil {
		t.Errorf("row 0: %+v", rows[0])
	}
	if *rows[1].Address != "1 Main St, Athenry" || *rows[1].Eircode != "h65 x2y3" {
		t.Errorf("row 1: %+v", rows[1])
	}
	if rows[2].Eircode != nil || *rows[2].AddressID != "3" {
		t.Errorf("row 2: %+v", rows[2])
	}

	limited, err := readRows(strings.NewReader(input), 1)
	if err != nil || len(limited) != 1 {
		t.Errorf("limited: %d rows, err=%v", len(limited), err)
	}
}
