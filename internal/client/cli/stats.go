package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Stats prints the executor's request counters for this process, by HTTP
// method and outcome.
func (a *App) Stats(_ context.Context) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}

	var rows []string
	for _, mf := range families {
		if mf.GetName() != "newsdesk_api_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%.0f", labels["method"], labels["outcome"], m.GetCounter().GetValue()))
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No requests yet")
		return nil
	}
	sort.Strings(rows)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tOUTCOME\tCOUNT")
	fmt.Fprintln(tw, strings.Join(rows, "\n"))
	return tw.Flush()
}
