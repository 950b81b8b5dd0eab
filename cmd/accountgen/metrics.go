package main

import (
	"fmt"

	dto "github.com/prometheus/client_model/go"
)

const accountTypesMetric = "accountgen_sampler_account_types_total"

// DrawSummary returns how many times each account type was drawn in this run,
// read back from the sampler's counters.
func (a *App) DrawSummary() (map[string]int, error) {
	families, err := a.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	counts := make(map[string]int)
	for _, mf := range families {
		if mf.GetName() != accountTypesMetric {
			continue
		}
		for _, m := range mf.GetMetric() {
			counts[labelValue(m, "account_type")] = int(m.GetCounter().GetValue())
		}
	}
	return counts, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
