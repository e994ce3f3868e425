package tui

import (
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

var countryColumns = []table.Column{
	{Title: "Code", Width: 4},
	{Title: "Country", Width: 22},
	{Title: "Family", Width: 16},
	{Title: "Languages", Width: 30},
}

func newCountryTable() table.Model {
	t := table.New(table.WithColumns(countryColumns))
	t.SetHeight(12)
	return t
}

// refreshCountries fills the table with every region that has data.
func (m *Model) refreshCountries() {
	m.tblRows = m.data.Regions()
	rows := make([]table.Row, 0, len(m.tblRows))
	for _, r := range m.tblRows {
		names := make([]string, 0, len(r.Languages))
		for _, code := range r.Languages {
			names = append(names, m.data.LanguageName(code))
		}
		rows = append(rows, table.Row{r.Code, r.Name, r.Family, strings.Join(names, ", ")})
	}
	// clear rows first so the column count never mismatches mid-update
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(countryColumns)
	m.tbl.SetRows(rows)
}
