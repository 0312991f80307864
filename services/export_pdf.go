package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateEstimatePDF creates a PDF document for a cost estimate using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateEstimatePDF(data EstimateExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, data)
	addEstimateSections(m, data)
	addEstimateTotals(m, data)
	addEstimateBenchmarks(m, data)
	addEstimateSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate estimate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addEstimateHeader adds the report title, "COST ESTIMATE" banner, and claim
// metadata.
func addEstimateHeader(m core.Maroto, data EstimateExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("COST ESTIMATE", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	meta := props.Text{
		Size:  8,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}

	left := data.ClientName
	if data.ClaimNumber != "" {
		if left != "" {
			left += " | "
		}
		left += "Claim " + data.ClaimNumber
	}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New(left, meta)),
			col.New(6).Add(text.New("Date: "+data.CreatedDate, props.Text{
				Size:  8,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)

	m.AddRows(row.New(3))
}

// addEstimateSections adds one block per cost category: a dark header row,
// the breakdown lines verbatim, and the category total.
func addEstimateSections(m core.Maroto, data EstimateExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := &props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	lineText := props.Text{Size: 8, Align: align.Left}
	totalLabel := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	totalValue := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for _, section := range estimateSections(data.Result) {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(section.Title, headerText)).WithStyle(headerCell),
			),
		)

		for i, line := range section.Lines {
			c := col.New(12).Add(text.New(line, lineText))
			if i%2 == 1 {
				c = c.WithStyle(&props.Cell{BackgroundColor: altBg})
			}
			m.AddRows(row.New(6).Add(c))
		}

		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(section.Title+" Total", totalLabel)),
				col.New(3).Add(text.New(FormatAUD(section.Total), totalValue)),
			),
		)

		m.AddRows(row.New(2))
	}
}

// addEstimateTotals adds the subtotal → adjustments → GST → grand total block.
func addEstimateTotals(m core.Maroto, data EstimateExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	for _, tr := range estimateTotalRows(data.Result) {
		if tr.Grand {
			m.AddRows(
				row.New(8).Add(
					col.New(9).Add(text.New(tr.Label, grandStyle)).WithStyle(grandCell),
					col.New(3).Add(text.New(FormatAUD(tr.Value), grandStyle)).WithStyle(grandCell),
				),
			)
			continue
		}
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(tr.Label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatAUD(tr.Value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addEstimateBenchmarks adds the advisory benchmark comparison table.
func addEstimateBenchmarks(m core.Maroto, data EstimateExportData) {
	if len(data.Result.Benchmarks) == 0 {
		return
	}

	sectionLabel := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 33, Green: 37, Blue: 41},
	}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	bodyText := props.Text{Size: 7, Align: align.Left}
	bodyRight := props.Text{Size: 7, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("INDUSTRY BENCHMARKS", sectionLabel)),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(3).Add(text.New("Category", headerText)),
			col.New(3).Add(text.New("Metric", headerText)),
			col.New(2).Add(text.New("Actual", headerText)),
			col.New(2).Add(text.New("Reference", headerText)),
			col.New(2).Add(text.New("Variance", headerText)),
		),
	)

	for _, b := range data.Result.Benchmarks {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(b.Category, bodyText)),
				col.New(3).Add(text.New(b.Metric, bodyText)),
				col.New(2).Add(text.New(FormatAUD(b.Actual), bodyRight)),
				col.New(2).Add(text.New(FormatAUD(b.Reference), bodyRight)),
				col.New(2).Add(text.New(fmt.Sprintf("%s%% (%s)", FormatQty(b.VariancePct), b.Classification), bodyRight)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addEstimateSummary adds the headline metrics row at the bottom.
func addEstimateSummary(m core.Maroto, data EstimateExportData) {
	s := data.Result.Summary

	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(3).Add(text.New("LABOUR HOURS", labelStyle)),
			col.New(3).Add(text.New("EQUIPMENT DAYS", labelStyle)),
			col.New(3).Add(text.New("COST / DAY", labelStyle)),
			col.New(3).Add(text.New("COST / HOUR", labelStyle)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(FormatQty(s.TotalLabourHours), valueStyle)),
			col.New(3).Add(text.New(FormatQty(s.TotalEquipmentDays), valueStyle)),
			col.New(3).Add(text.New(FormatAUD(s.CostPerDay), valueStyle)),
			col.New(3).Add(text.New(FormatAUD(s.CostPerHour), valueStyle)),
		),
	)
}
