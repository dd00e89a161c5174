// Package report renders aggregated access-log statistics as a markdown or
// asciidoc document.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/es-debug/log-analyzer/internal/domain"
)

const resourceLimit = 10

// Stats is the read side of an aggregator the renderer needs.
type Stats interface {
	TotalRequests() int
	AverageResponseSize() float64
	Percentile95ResponseSize() int64
	TopResources(limit int) []domain.Resource
	Statuses() []domain.Status
}

// Render returns the report as a string.
func Render(stats Stats, meta domain.Meta, dialect Dialect) (string, error) {
	var sb strings.Builder

	if err := Write(&sb, stats, meta, dialect); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write renders the report into w.
func Write(w io.Writer, stats Stats, meta domain.Meta, dialect Dialect) error {
	if dialect != Markdown && dialect != AsciiDoc {
		return ErrUnsupportedDialect{Dialect: dialect.String()}
	}

	t := newTableWriter(w, dialect)

	t.section("General information")
	t.open("Metric", "Value")
	t.row("File(s)", meta.Source)
	t.row("Start date", orDash(meta.From))
	t.row("End date", orDash(meta.To))
	t.row("Number of requests", formatCount(stats.TotalRequests()))
	t.row("Average response size", formatSize(stats.AverageResponseSize()))
	t.row("95th percentile of response size", formatSize(float64(stats.Percentile95ResponseSize())))
	t.close()

	t.section("Requested resources")
	t.open("Resource", "Count")

	for _, res := range stats.TopResources(resourceLimit) {
		t.row("`"+res.Name+"`", formatCount(res.Quantity))
	}

	t.close()

	t.section("Response codes")
	t.open("Code", "Count")

	for _, status := range stats.Statuses() {
		t.row(strconv.Itoa(status.Code), formatCount(status.Quantity))
	}

	t.close()

	if t.err != nil {
		return fmt.Errorf("write report: %w", t.err)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
