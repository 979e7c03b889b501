package parser

import (
	"encoding/xml"
	"strconv"
	"strings"

	goziputils "github.com/JJJJJJack/go-zip-utils"
	"github.com/ukaji3/adreport-go/pkg/adreport/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartAnchor holds one chart frame of a drawing part.
type chartAnchor struct {
	rID    string
	name   string
	anchor string
}

// ExtractCharts extracts charts from an xlsx file, keyed by sheet name.
// Charts of a sheet are returned in drawing order.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	zm, err := openPackage(xlsxPath)
	if err != nil {
		return nil, err
	}

	sheetFiles, err := sheetParts(zm)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for sheetName, sheetPath := range sheetFiles {
		charts, err := sheetCharts(zm, sheetPath)
		if err != nil {
			return nil, err
		}
		if len(charts) > 0 {
			result[sheetName] = charts
		}
	}

	return result, nil
}

// sheetParts returns sheet name -> worksheet part path.
func sheetParts(zm goziputils.ZipMap) (map[string]string, error) {
	workbookXML, err := readZipFile(zm, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return nil, err
	}
	wbRelsXML, err := readZipFile(zm, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return nil, err
	}
	return parseWorkbookRels(wbRelsXML, parseWorkbookSheets(workbookXML)), nil
}

func sheetCharts(zm goziputils.ZipMap, sheetPath string) ([]models.Chart, error) {
	sheetRelsXML, err := readZipFile(zm, relsPathFor(sheetPath))
	if err != nil || sheetRelsXML == nil {
		return nil, err
	}

	var charts []models.Chart
	for _, target := range parseRelationships(sheetRelsXML, "drawing") {
		drawingPath := resolveRelativePath(target, "xl/worksheets")
		drawingXML, err := readZipFile(zm, drawingPath)
		if err != nil {
			return nil, err
		}
		if drawingXML == nil {
			continue
		}
		drawingRelsXML, err := readZipFile(zm, relsPathFor(drawingPath))
		if err != nil {
			return nil, err
		}
		chartPaths := parseRelationships(drawingRelsXML, "chart")

		for _, a := range parseDrawingForCharts(drawingXML) {
			target, ok := chartPaths[a.rID]
			if !ok {
				continue
			}
			chartXML, err := readZipFile(zm, resolveRelativePath(target, "xl/drawings"))
			if err != nil {
				return nil, err
			}
			if chartXML == nil {
				continue
			}
			chart := parseChartXML(chartXML)
			chart.Name = a.name
			chart.Anchor = a.anchor
			charts = append(charts, chart)
		}
	}
	return charts, nil
}

// parseDrawingForCharts returns the chart frames of a drawing in document order.
func parseDrawingForCharts(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && (se.Name.Local == "twoCellAnchor" || se.Name.Local == "oneCellAnchor") {
			if a := parseAnchor(decoder); a.rID != "" {
				result = append(result, a)
			}
		}
	}

	return result
}

// parseAnchor reads the from-cell and the chart reference of an anchor element.
func parseAnchor(decoder *xml.Decoder) chartAnchor {
	var a chartAnchor
	var col, row int
	var inFrom bool
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				inFrom = true
			case "col", "row":
				if !inFrom {
					continue
				}
				txt, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				n, err := strconv.Atoi(strings.TrimSpace(txt))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					col = n
				} else {
					row = n
				}
			case "cNvPr":
				for _, attr := range t.Attr {
					if attr.Name.Local == "name" {
						a.name = attr.Value
					}
				}
			case "chart":
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						a.rID = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
			if t.Name.Local == "from" {
				inFrom = false
			}
		}
	}

	// Anchor offsets are zero-based.
	if cell, err := excelize.CoordinatesToCellName(col+1, row+1); err == nil {
		a.anchor = cell
	}
	return a
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) models.Chart {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	var chart models.Chart

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var b strings.Builder
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					b.WriteString(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(b.String())
}

// parsePlotArea parses plot area element.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				series, barDir := parseChartSeries(decoder)
				if barDir == "col" {
					ct = strings.Replace(ct, "Bar", "Column", 1)
				}
				if chart.ChartType == "" {
					chart.ChartType = ct
				}
				chart.Series = append(chart.Series, series...)
				depth--
				continue
			}
			switch t.Name.Local {
			case "catAx":
				chart.XAxisTitle = parseAxisTitle(decoder)
				depth--
			case "valAx":
				chart.YAxisTitle = parseAxisTitle(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a chart type. barDir is the
// direction of a bar chart ("bar" or "col").
func parseChartSeries(decoder *xml.Decoder) (series []models.ChartSeries, barDir string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ser":
				series = append(series, parseSingleSeries(decoder))
				depth--
			case "barDir":
				for _, attr := range t.Attr {
					if attr.Name.Local == "val" {
						barDir = attr.Value
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return series, barDir
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the range reference of a cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseAxisTitle returns the title of a catAx or valAx element.
func parseAxisTitle(decoder *xml.Decoder) string {
	var title string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "title" {
				title = parseChartTitle(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return title
}
