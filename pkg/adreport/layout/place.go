package layout

// Placement is where a block lands on its sheet. Rows and columns are 1-based.
type Placement struct {
	// Top is the first row of the block.
	Top int
	// HeaderRow is the table header row, or 0 when there is none.
	HeaderRow int
	// FirstDataRow is the first data row of a table.
	FirstDataRow int
	// Bottom is the last row of the block.
	Bottom int
	// Right is the last column of the block.
	Right int
}

// Place stacks the blocks of the sheet and returns one placement per block.
func (s Sheet) Place() []Placement {
	out := make([]Placement, len(s.Blocks))
	next := 1
	for i, b := range s.Blocks {
		top := next + b.Space
		p := Placement{
			Top:    top,
			Bottom: top + b.Height() - 1,
			Right:  b.Width(),
		}
		if b.Kind == KindTable {
			p.FirstDataRow = top
			if len(b.Header) > 0 {
				p.HeaderRow = top
				p.FirstDataRow = top + 1
			}
		}
		out[i] = p
		next = p.Bottom + 1
	}
	return out
}

// Extent returns the last written row and column of the sheet.
func (s Sheet) Extent() (lastRow, lastCol int) {
	for _, p := range s.Place() {
		if p.Bottom > lastRow {
			lastRow = p.Bottom
		}
		if p.Right > lastCol {
			lastCol = p.Right
		}
	}
	return lastRow, lastCol
}

// ColumnOffset returns the 1-based sheet column of table column idx.
func (b Block) ColumnOffset(idx int) int {
	col := 1
	for i := 0; i < idx && i < len(b.Columns); i++ {
		col += b.Columns[i].SheetSpan()
	}
	return col
}

// ChartRows returns the number of data rows a chart on this table reads.
func (c Chart) ChartRows(table Block) int {
	if c.Rows > 0 && c.Rows < len(table.Rows) {
		return c.Rows
	}
	return len(table.Rows)
}
