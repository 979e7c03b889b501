package models

// SheetData represents structured data for a single sheet.
type SheetData struct {
	// Rows contains non-empty rows with raw cell values and links.
	Rows []CellRow `json:"rows,omitempty"`
	// Charts contains charts anchored on the sheet.
	Charts []Chart `json:"charts,omitempty"`
	// PrintAreas contains the sheet's print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
