package models

// SheetSummary describes one generated sheet.
type SheetSummary struct {
	// Name is the worksheet tab name.
	Name string `json:"name"`
	// Label is the title shown in the console summary.
	Label string `json:"label"`
	// Charts is the number of charts attached to the sheet.
	Charts int `json:"charts"`
}

// Summary describes a generated report workbook.
type Summary struct {
	// Path is where the workbook was written.
	Path string `json:"path"`
	// Sheets lists the generated sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
	// Styles is the number of distinct cell style presets in the workbook.
	Styles int `json:"styles"`
}
