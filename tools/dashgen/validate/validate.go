// Package validate checks generated dashboards for PromQL syntax errors
// and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Dashboard validates every PromQL expression in the dashboard: each must
// parse, and each metric it selects must be in known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	exprs, err := collectExprs(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("collecting expressions: %v", err))
		return res
	}
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard contains no queries")
		return res
	}

	checkExprs(exprs, known, &res)
	return res
}

// Exprs validates a flat list of PromQL expressions against known metrics.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	checkExprs(exprs, known, &res)
	return res
}

func checkExprs(exprs []string, known map[string]bool, res *Result) {
	for _, expr := range exprs {
		parsed, err := parser.ParseExpr(expr)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("invalid PromQL %q: %v", expr, err))
			continue
		}

		parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
			vs, ok := node.(*parser.VectorSelector)
			if !ok || vs.Name == "" {
				return nil
			}
			if !known[baseMetricName(vs.Name)] {
				res.Errors = append(res.Errors,
					fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
			}
			return nil
		})
	}
}

// baseMetricName strips histogram series suffixes so bucket and summary
// series resolve to their parent metric.
func baseMetricName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}

// collectExprs walks the dashboard's JSON form and gathers every "expr"
// string, which keeps this independent of the SDK's target types.
func collectExprs(dash dashboard.Dashboard) ([]string, error) {
	data, err := json.Marshal(dash)
	if err != nil {
		return nil, fmt.Errorf("marshaling dashboard: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding dashboard: %w", err)
	}

	var exprs []string
	walk(decoded, &exprs)
	return exprs, nil
}

func walk(node any, exprs *[]string) {
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok && s != "" {
					*exprs = append(*exprs, s)
					continue
				}
			}
			walk(val, exprs)
		}
	case []any:
		for _, item := range v {
			walk(item, exprs)
		}
	}
}
