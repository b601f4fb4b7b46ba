// Package importer provides CSV, Excel, and DXF import functionality for
// zone polygons. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TileCover/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Zones    []model.Zone
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// Vertex rows carry a zone name plus one x/y coordinate pair; consecutive
// rows with the same zone name form one polygon ring.
type ColumnMapping struct {
	Zone int
	X    int
	Y    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"zone": {"zone", "name", "label", "polygon", "area", "region", "shape"},
	"x":    {"x", "x_mm", "easting", "px"},
	"y":    {"y", "y_mm", "northing", "py"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter that
// produces the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// DetectColumns inspects a row for known header names and returns the column
// mapping plus whether the row was a header at all. Without a header the
// positional fallback is zone, x, y.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Zone: -1, X: -1, Y: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "zone":
					if mapping.Zone == -1 {
						mapping.Zone = i
					}
				case "x":
					if mapping.X == -1 {
						mapping.X = i
					}
				case "y":
					if mapping.Y == -1 {
						mapping.Y = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Zone: 0, X: 1, Y: 2}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports zone polygons from a CSV file of vertex rows.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports zones from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports zone polygons from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data. It
// detects headers, maps columns, parses each vertex row, and groups
// consecutive rows with the same zone name into polygon rings.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	currentName := ""
	var currentRing model.Ring
	zoneCount := 0

	flush := func() {
		if len(currentRing) == 0 {
			return
		}
		if len(currentRing) < 3 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped zone %q with fewer than 3 vertices", currentName))
		} else {
			zoneCount++
			name := currentName
			if name == "" {
				name = fmt.Sprintf("Zone %d", zoneCount)
			}
			result.Zones = append(result.Zones, model.NewZone(name, currentRing))
		}
		currentRing = nil
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			// Blank rows separate zones, like blank lines between stanzas
			flush()
			currentName = ""
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Zone)
		if name != currentName && name != "" {
			flush()
			currentName = name
		}

		xStr := getCell(row, mapping.X)
		yStr := getCell(row, mapping.Y)
		if xStr == "" || yStr == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing coordinate value", rowLabel))
			continue
		}
		x, err := strconv.ParseFloat(xStr, 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid x '%s'", rowLabel, xStr))
			continue
		}
		y, err := strconv.ParseFloat(yStr, 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid y '%s'", rowLabel, yStr))
			continue
		}
		currentRing = append(currentRing, model.Point2D{X: x, Y: y})
	}
	flush()

	if len(result.Zones) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No zones found in file")
	}
	return result
}
