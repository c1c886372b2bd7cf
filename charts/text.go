package charts

import (
	"fmt"
	"strings"
)

// PlainText renders a chart as tab-separated text, one row per point. Used
// for clipboard export so a chart can be pasted into a doc or spreadsheet.
func PlainText(c Chart) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n")

	switch c.Kind {
	case Pie:
		total := seriesTotal(c)
		for _, s := range c.Series {
			for _, p := range s.Points {
				share := 0.0
				if total > 0 {
					share = p.Value / total * 100
				}
				fmt.Fprintf(&b, "%s\t%s\t%.1f%%\n", p.Label, FormatValue(p.Value), share)
			}
		}
	case GroupedBar:
		for _, s := range c.Series {
			for _, p := range s.Points {
				fmt.Fprintf(&b, "%s\t%s\t%s\n", p.Label, s.Name, FormatValue(p.Value))
			}
		}
	default:
		for _, s := range c.Series {
			for _, p := range s.Points {
				if p.Missing {
					fmt.Fprintf(&b, "%s\tn/a\n", p.Label)
					continue
				}
				fmt.Fprintf(&b, "%s\t%s\n", p.Label, FormatValue(p.Value))
			}
		}
	}
	return b.String()
}

func seriesTotal(c Chart) float64 {
	var total float64
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !p.Missing {
				total += p.Value
			}
		}
	}
	return total
}

// FormatValue prints counts without a decimal and measurements with one.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
