package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/meghashyamc/advocates/models"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var TableHeaders = []string{"First Name", "Last Name", "City", "Degree", "Specialties", "Years of Experience", "Phone Number"}

// TableRow flattens an advocate into the cells of one table row, in TableHeaders order.
func TableRow(advocate models.Advocate) []string {
	return []string{
		advocate.FirstName,
		advocate.LastName,
		advocate.City,
		advocate.Degree,
		strings.Join(advocate.Specialties, ", "),
		strconv.Itoa(advocate.YearsOfExperience),
		models.FormatPhone(advocate.PhoneNumber),
	}
}

// Table writes the advocates as a plain text table.
func Table(w io.Writer, advocates []models.Advocate) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(advocates))
	for _, advocate := range advocates {
		rows = append(rows, TableRow(advocate))
	}

	table.Header(TableHeaders)
	if err := table.Bulk(rows); err != nil {
		return err
	}

	return table.Render()
}
