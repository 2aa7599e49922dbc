package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alertiq/sales-atlas/pkg/models/domain"
)

// Renderer writes one representation of a daily report.
type Renderer interface {
	Format() domain.ReportFormat
	Render(w io.Writer, rep *domain.DailyReport) error
}

// For returns the renderer for a format.
func For(format domain.ReportFormat) (Renderer, error) {
	switch format {
	case domain.FormatText:
		return NewTextRenderer(), nil
	case domain.FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case domain.FormatHTML:
		return NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// RenderString renders a report into a self-contained string.
func RenderString(rep *domain.DailyReport, format domain.ReportFormat) (string, error) {
	r, err := For(format)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := r.Render(&sb, rep); err != nil {
		return "", fmt.Errorf("render %s report: %w", format, err)
	}
	return sb.String(), nil
}
