// Package parser reads a generated report workbook back into models.
package parser

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	goziputils "github.com/JJJJJJack/go-zip-utils"
)

// openPackage loads every part of an xlsx package into memory.
func openPackage(xlsxPath string) (goziputils.ZipMap, error) {
	data, err := os.ReadFile(xlsxPath)
	if err != nil {
		return nil, err
	}
	zm, err := goziputils.NewZipMapFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx package: %w", err)
	}
	return zm, nil
}

// readZipFile returns the content of a package part, or nil if it is absent.
func readZipFile(zm goziputils.ZipMap, name string) ([]byte, error) {
	f, ok := zm[name]
	if !ok {
		return nil, nil
	}
	return goziputils.ReadZipFileContent(f)
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of a package part.
func relsPathFor(partPath string) string {
	idx := strings.LastIndex(partPath, "/")
	return partPath[:idx] + "/_rels" + partPath[idx:] + ".rels"
}

// parseWorkbookSheets returns rId -> sheet name.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseWorkbookRels returns sheet name -> worksheet part path.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}

// parseRelationships returns rId -> target for relationships whose type contains kind.
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if strings.HasSuffix(strings.ToLower(relType), "/"+kind) {
				result[rID] = target
			}
		}
	}

	return result
}
