package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"actlog/pkg/record"
)

const layoutLocal = "Jan 2 15:04"

type PrettyPrint struct {
	ShowTimestamps bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Log renders records newest-first, numbered by display position. The input
// is creation order; reversal happens here, at read time.
func (pp *PrettyPrint) Log(records ...record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	idx := color.New(color.FgHiYellow, color.Faint)
	act := color.New(color.Bold)
	ts := color.New(color.Faint)

	table := uitable.New()
	table.MaxColWidth = 72
	table.Wrap = true

	for displayed := 0; displayed < len(records); displayed++ {
		r := records[len(records)-1-displayed]
		row := []interface{}{
			idx.Sprintf("%d", displayed),
			act.Sprint(r.Activity),
		}
		if pp.ShowTimestamps {
			row = append(row, ts.Sprint(r.Timestamp.Local().Format(layoutLocal)))
		}
		row = append(row, strings.Join(r.Comments, "; "))
		table.AddRow(row...)
	}
	fmt.Println(table)
	fmt.Println("")
}
