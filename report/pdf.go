package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"sierra-payroll/converter"
	"sierra-payroll/wbs"
)

// WritePDF renders a human-readable conversion summary: period, bucket
// totals, and every diagnostic the run collected.
func WritePDF(result *converter.Result, meta wbs.Meta, outputPath string) error {
	header := fmt.Sprintf("WBS Payroll Conversion, period ending %s\n\n", meta.PeriodEnd.Format("2006-01-02"))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 16)
	pdf.MultiCell(0, 10, header, "", "", false)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, buildBody(result), "", "", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write pdf report: %w", err)
	}

	return nil
}

func buildBody(result *converter.Result) string {
	body := strings.Builder{}

	body.WriteString("Summary\n")
	body.WriteString("-----------------------\n")
	body.WriteString(fmt.Sprintf("Employees: %d\n", result.Employees))
	body.WriteString(fmt.Sprintf("Total Hours: %.2f\n", result.TotalHours))
	body.WriteString("\n")

	if len(result.Diagnostics) == 0 {
		body.WriteString("No diagnostics. Every row parsed and every employee resolved.\n")
		return body.String()
	}

	body.WriteString(fmt.Sprintf("Diagnostics (%d)\n", len(result.Diagnostics)))
	body.WriteString("-----------------------\n")
	for _, diag := range result.Diagnostics {
		body.WriteString(diag.String())
		body.WriteString("\n")
	}

	return body.String()
}
