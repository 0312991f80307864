package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateEstimateExcel creates an Excel workbook from the given estimate
// and returns the file contents as a byte slice.
func GenerateEstimateExcel(data EstimateExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Estimate"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 56); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	row := 2
	if data.ClaimNumber != "" {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Claim: "+data.ClaimNumber)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
		row++
	}
	if data.ClientName != "" {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Client: "+sanitizeExcelCell(data.ClientName))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
		row++
	}
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), subtitleStyle)
	row += 2

	// ── Category sections ───────────────────────────────────────────────

	for _, section := range estimateSections(data.Result) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), section.Title)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), sectionStyle)
		row++

		for _, line := range section.Lines {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sanitizeExcelCell(line))
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), lineStyle)
			row++
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), section.Title+" Total:")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), totalLabelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), FormatAUD(section.Total))
		f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), totalValueStyle)
		row += 2
	}

	// ── Totals block ────────────────────────────────────────────────────

	for _, tr := range estimateTotalRows(data.Result) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tr.Label+":")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), totalLabelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), FormatAUD(tr.Value))
		f.SetCellStyle(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), totalValueStyle)
		row++
	}
	row++

	// ── Benchmarks ──────────────────────────────────────────────────────

	if len(data.Result.Benchmarks) > 0 {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Industry Benchmarks")
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), sectionStyle)
		row++

		for _, b := range data.Result.Benchmarks {
			line := fmt.Sprintf("%s %s: %s vs %s reference (%s%%, %s)",
				b.Category, b.Metric, FormatAUD(b.Actual), FormatAUD(b.Reference),
				FormatQty(b.VariancePct), b.Classification)
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line)
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), lineStyle)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
