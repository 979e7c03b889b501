package models

// ChartSeries represents series metadata for a chart.
type ChartSeries struct {
	// Name is the series display name when stored literally.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for the category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for the series values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata read back from a drawing part.
type Chart struct {
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Column, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// XAxisTitle is the category axis title.
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
	// Anchor is the top-left cell the chart is attached to (e.g., "A12").
	Anchor string `json:"anchor,omitempty"`
}
