package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alertiq/sales-atlas/pkg/export"
	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

type ReportCmd struct {
	cfgPath *string
	output  io.Writer
	date    string
	format  string
}

// NewReportCmd renders the daily report for a date to the terminal.
func NewReportCmd(cfgPath *string, output io.Writer) *cobra.Command {
	rc := &ReportCmd{cfgPath: cfgPath, output: output}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the daily sales report",
		RunE:  rc.run,
	}
	cmd.Flags().StringVar(&rc.date, "date", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&rc.format, "format", "", "Output format: text, markdown or html (defaults to the configured format)")
	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(*rc.cfgPath)
	if err != nil {
		return err
	}

	date, err := parseDateFlag(rc.date)
	if err != nil {
		return err
	}

	format := domain.ReportFormat(rc.format)
	if rc.format == "" {
		format = domain.ReportFormat(d.cfg.Report.Format)
	}
	renderer, err := export.For(format)
	if err != nil {
		return err
	}

	svc, err := d.reportService()
	if err != nil {
		return err
	}

	rep, err := svc.DailyReport(cmd.Context(), date)
	if err != nil {
		return err
	}

	return renderer.Render(rc.output, rep)
}
