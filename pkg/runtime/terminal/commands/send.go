package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alertiq/sales-atlas/pkg/export"
	"github.com/alertiq/sales-atlas/pkg/models/domain"
	"github.com/alertiq/sales-atlas/pkg/services/mailer"
)

type SendCmd struct {
	cfgPath *string
	date    string
	to      string
}

// NewSendCmd renders the daily report and emails it to the configured
// recipient.
func NewSendCmd(cfgPath *string) *cobra.Command {
	sc := &SendCmd{cfgPath: cfgPath}
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Render the daily report and deliver it by email",
		RunE:  sc.run,
	}
	cmd.Flags().StringVar(&sc.date, "date", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&sc.to, "to", "", "Recipient address (defaults to the configured recipient)")
	return cmd
}

func (sc *SendCmd) run(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(*sc.cfgPath)
	if err != nil {
		return err
	}

	date, err := parseDateFlag(sc.date)
	if err != nil {
		return err
	}

	to := sc.to
	if to == "" {
		to = d.cfg.Report.Recipient
	}
	if to == "" {
		return fmt.Errorf("no recipient configured; set report.recipient or pass --to")
	}

	format := domain.ReportFormat(d.cfg.Report.Format)
	if _, err := export.For(format); err != nil {
		return err
	}

	svc, err := d.reportService()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	rep, err := svc.DailyReport(ctx, date)
	if err != nil {
		return err
	}

	body, err := export.RenderString(rep, format)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Daily sales report (%s)", rep.Date.Format("2006-01-02"))
	m := mailer.New(d.cfg.SMTP)
	if err := m.SendReport(ctx, to, subject, body, format); err != nil {
		return err
	}

	cmd.Printf("Report sent to %s\n", to)
	return nil
}
