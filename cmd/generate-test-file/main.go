package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/pstuifzand/tui-datagrid/internal/memtable"
	"github.com/pstuifzand/tui-datagrid/internal/schema"
	"github.com/pstuifzand/tui-datagrid/internal/storage"
)

var (
	months = []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	words = []string{"Locus", "Solus", "Lanark", "Winter", "Night", "Traveller",
		"Invisible", "Cities", "Pale", "Fire", "Ficciones", "Aleph", "Zazie", "Metro"}
)

func main() {
	numRows := flag.Int("rows", 1000, "Number of rows to generate")
	output := flag.String("output", "large_test.json", "Output file path")
	textEvery := flag.Int("text-every", 50, "Insert a text banner row every n rows (0 for none)")
	badRate := flag.Float64("bad", 0.05, "Fraction of cells given out-of-range values")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	if *numRows < 1 {
		fmt.Fprintf(os.Stderr, "rows must be at least 1\n")
		os.Exit(1)
	}

	t := generateTable(rand.New(rand.NewSource(*seed)), *numRows, *textEvery, *badRate)
	store := storage.NewJSONStore(*output)
	if err := store.Save(t); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write file: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to stat file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated grid with %d rows\n", t.RowCount())
	fmt.Printf("Saved to: %s\n", *output)
	fmt.Printf("File size: %.2f MB\n", float64(info.Size())/(1024*1024))
}

func generateTable(rng *rand.Rand, n, textEvery int, badRate float64) *memtable.Table {
	t := memtable.New(
		schema.ColDefinition{Name: "Year", Width: 4, Type: schema.TypeYear, Editable: schema.EditableYes},
		schema.ColDefinition{Name: "Month", Width: 9, Type: schema.TypeMonth, Editable: schema.EditableYes},
		schema.ColDefinition{Name: "Day", Width: 3, Type: schema.TypeDay, Editable: schema.EditableYes},
		schema.ColDefinition{Name: "Display Name", PreferredName: "Title", Width: 30, Type: schema.TypeString, Editable: schema.EditableMaybe},
		schema.ColDefinition{Name: "Pages", Width: 5, Type: schema.TypeInt, Editable: schema.EditableYes},
		schema.ColDefinition{Name: "Rating", Width: 6, Type: schema.TypeFloat, Editable: schema.EditableYes},
	)
	t.AllowAddColumns = true
	t.AllowHeaderEdits = true

	bad := func() bool { return rng.Float64() < badRate }
	for i := 0; i < n; i++ {
		if textEvery > 0 && i%textEvery == 0 {
			banner := memtable.NewRow(fmt.Sprintf("Section %d", i/textEvery+1))
			banner.Text = true
			t.AppendRow(banner)
			continue
		}

		year := strconv.Itoa(1926 + rng.Intn(100))
		if bad() {
			year = strconv.Itoa(1800 + rng.Intn(100))
		}
		month := months[rng.Intn(len(months))]
		if bad() {
			month = month[:3] + "x"
		}
		day := strconv.Itoa(1 + rng.Intn(28))
		if bad() {
			day = "32"
		}
		pages := strconv.Itoa(100 + rng.Intn(900))
		if bad() {
			pages = "many"
		}
		title := words[rng.Intn(len(words))] + " " + words[rng.Intn(len(words))]
		rating := strconv.FormatFloat(rng.Float64()*5, 'f', 1, 64)

		r := memtable.NewRow(year, month, day, title, pages, rating)
		if rng.Intn(20) == 0 {
			r.Link = true
		}
		t.AppendRow(r)
	}
	return t
}
