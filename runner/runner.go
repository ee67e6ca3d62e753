// Package runner evaluates the configured variants and parameter sets.
package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/goose-lang/multisum"
	"github.com/goose-lang/multisum/config"
	"github.com/goose-lang/multisum/variants"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the value one variant (or one batch case) produced.
type Result struct {
	Label string
	Value uint64
}

func (r Result) String() string {
	return fmt.Sprintf("%s : %d", r.Label, r.Value)
}

// Report holds every selected variant's result for one case.
type Report struct {
	Case config.Case
	// closed-form answer the variants are compared with
	Expected uint64
	Results  []Result
}

// Mismatches returns the results that disagree with the closed form.
func (r Report) Mismatches() []Result {
	var bad []Result
	for _, res := range r.Results {
		if res.Value != r.Expected {
			bad = append(bad, res)
		}
	}
	return bad
}

func (r Report) Agree() bool {
	return len(r.Mismatches()) == 0
}

// WriteTo writes one "<label> : <result>" line per result.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, res := range r.Results {
		n, err := fmt.Fprintln(w, res)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Run evaluates every variant c selects on c's primary case.
func Run(c config.Config) (Report, error) {
	cs := c.Primary()
	expected, err := multisum.SumMultiples(cs.Bases, cs.Limit)
	if err != nil {
		return Report{}, errors.Wrapf(err, "case %s", cs.Name)
	}
	r := Report{Case: cs, Expected: expected}
	sel := c.Selector()
	for _, v := range variants.All() {
		if !sel.Selects(v.Label) {
			continue
		}
		r.Results = append(r.Results, Result{
			Label: v.Label,
			Value: v.Sum(cs.Bases, cs.Limit),
		})
	}
	if len(r.Results) == 0 {
		return Report{}, errors.Errorf("no variants match %q", c.Variants)
	}
	return r, nil
}

// RunBatch computes the closed form for every case in parallel. Results are
// in the same order as cases. The first invalid case cancels the remaining
// work and its error is returned.
func RunBatch(ctx context.Context, cases []config.Case) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, cs := range cases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := multisum.SumMultiples(cs.Bases, cs.Limit)
			if err != nil {
				return errors.Wrapf(err, "case %s", cs.Name)
			}
			results[i] = Result{Label: cs.Name, Value: sum}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
