// Package pipeline implements the Pipeline Driver & Timing ambient
// component (§4.J): it sequences name resolution (A through E) and the
// partial evaluator (F, G), then the continuation-interface emitter (H),
// owning the single *sym.Registry for a run and threading it explicitly
// through every phase rather than via a package-level global.
package pipeline

import (
	"time"

	"avncore/internal/ast"
	"avncore/internal/contiface"
	"avncore/internal/diag"
	"avncore/internal/ir2"
	"avncore/internal/peval"
	"avncore/internal/resolver"
	"avncore/internal/sym"
)

// Options configures one pipeline run (component L's config.Options feeds
// these fields; pipeline itself stays ignorant of YAML/env/flags).
type Options struct {
	Canonicalize bool
	LogLevel     string
}

// Timings records a time.Duration per named phase at nanosecond
// resolution, rendered by the CLI via github.com/dustin/go-humanize.
type Timings struct {
	Phases []PhaseTiming
}

// PhaseTiming is one phase's name and elapsed wall-clock duration.
type PhaseTiming struct {
	Name     string
	Duration time.Duration
}

func (t *Timings) record(name string, d time.Duration) {
	t.Phases = append(t.Phases, PhaseTiming{Name: name, Duration: d})
}

// Total sums every recorded phase's duration.
func (t *Timings) Total() time.Duration {
	var total time.Duration
	for _, p := range t.Phases {
		total += p.Duration
	}
	return total
}

// Result is the output of partially evaluating every top-level definition
// reachable from a resolved program, plus the continuation-interface
// descriptors component H derives from the same definitions' result types.
type Result struct {
	Defs        map[*sym.Symbol]ir2.Expr
	Descriptors []contiface.Descriptor
}

// Run sequences A→B→C→D→E (name resolution, driven by resolver.Resolver),
// then the lightweight simplifier stand-in, then F→G (the partial
// evaluator), then H (the continuation-interface emitter), against prog
// using reg as the single fresh-symbol source for the whole run.
func Run(prog ast.Program, reg *sym.Registry, opts Options) (*resolver.RProgram, *Result, Timings, *diag.Bag) {
	var timings Timings
	bag := diag.NewBag()

	start := time.Now()
	res := resolver.NewResolver(reg, prog)
	rprog := res.ResolveProgram()
	timings.record("resolve", time.Since(start))
	for _, e := range res.Bag.Errors() {
		bag.Add(e)
	}
	if res.Bag.Internal() != nil {
		bag.Fail(res.Bag.Internal())
		return rprog, nil, timings, bag
	}
	if bag.HasErrors() {
		return rprog, nil, timings, bag
	}

	start = time.Now()
	defs, err := Simplify(rprog)
	timings.record("simplify", time.Since(start))
	if err != nil {
		if internal, ok := err.(*diag.Internal); ok {
			bag.Fail(internal)
		}
		return rprog, nil, timings, bag
	}

	start = time.Now()
	ev := peval.NewEvaluator(defs)
	ev.Canonicalize = opts.Canonicalize
	evaluated := make(map[*sym.Symbol]ir2.Expr, len(defs))
	for s, body := range defs {
		v, err := ev.Eval(body, peval.NewEnv())
		if err != nil {
			if internal, ok := err.(*diag.Internal); ok {
				bag.Fail(internal)
			}
			return rprog, nil, timings, bag
		}
		evaluated[s] = v
	}
	timings.record("partial-eval", time.Since(start))

	start = time.Now()
	descriptors := descriptorsFromRProgram(rprog)
	timings.record("contiface", time.Since(start))

	return rprog, &Result{Defs: evaluated, Descriptors: descriptors}, timings, bag
}
