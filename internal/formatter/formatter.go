// Package formatter renders computed tables as text cells: two decimals and
// comma thousands separators.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"upstreamcli/pkg/contracts/domain"
)

var printer = message.NewPrinter(language.English)

// FormatValue renders v with two decimals and thousands separators,
// e.g. 1234567.891 becomes "1,234,567.89".
func FormatValue(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// ParseValue reads a value produced by FormatValue.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid formatted value %q: %w", s, err)
	}
	return v, nil
}

// FormatTable renders every numeric cell of t. Labels and year headers pass
// through unchanged.
func FormatTable(t domain.Table) domain.FormattedTable {
	if t.Kind == domain.TableByYear {
		return formatByYear(t)
	}
	return formatByClassification(t)
}

func formatByClassification(t domain.Table) domain.FormattedTable {
	out := domain.FormattedTable{
		Header: []string{domain.LabelClass, domain.LabelVolume, domain.LabelCountry, domain.LabelShare},
		Rows:   make([][]string, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, []string{r.Label, FormatValue(r.Unit), FormatValue(r.National), FormatValue(r.Percent)})
	}
	return out
}

func formatByYear(t domain.Table) domain.FormattedTable {
	header := make([]string, 0, len(t.Rows)+1)
	header = append(header, domain.LabelClass)

	unit := []string{domain.LabelLote}
	national := []string{domain.LabelCountry}
	share := []string{domain.LabelShare}

	for i, r := range t.Rows {
		label := r.Label
		if i < len(t.Years) {
			label = strconv.Itoa(t.Years[i])
		}
		header = append(header, label)
		unit = append(unit, FormatValue(r.Unit))
		national = append(national, FormatValue(r.National))
		share = append(share, FormatValue(r.Percent))
	}

	return domain.FormattedTable{
		Header: header,
		Rows:   [][]string{unit, national, share},
	}
}
