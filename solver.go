package knapsack

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrProblemTooLarge is returned when a solver's state ceiling is exceeded:
// the textbook DynamicProgram solver's fixed (capacity+1)*(items+1) cell
// limit, or MinKnap's optional MaxFrontierSize option.
var ErrProblemTooLarge = errors.New("knapsack: problem exceeds configured size limit")

func errProblemTooLargef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrProblemTooLarge, format, args...)
}

// ProgressReporter receives periodic updates while MinKnap's frontier
// expands. It is the ambient equivalent of the teacher's BnbMiddleware
// instrumentation seam (instrumentation.go), retargeted from a branch-tree
// dump to a frontier-size/lower-bound progress callback.
type ProgressReporter interface {
	Report(iteration, frontierSize int, lowerBound uint64, elapsed time.Duration)
}

// noopReporter is the default ProgressReporter, used when none is supplied.
type noopReporter struct{}

func (noopReporter) Report(int, int, uint64, time.Duration) {}

// ReporterFunc adapts a plain function to a ProgressReporter.
type ReporterFunc func(iteration, frontierSize int, lowerBound uint64, elapsed time.Duration)

func (f ReporterFunc) Report(iteration, frontierSize int, lowerBound uint64, elapsed time.Duration) {
	f(iteration, frontierSize, lowerBound, elapsed)
}

// Option configures a Solve call.
type Option func(*options)

type options struct {
	reporter        ProgressReporter
	maxFrontierSize int
	logger          *zap.SugaredLogger
}

// WithProgressReporter installs a ProgressReporter invoked at decreasing
// frequency (every iteration for the first 10, every 10th up to 100, then
// roughly every 1.5s) while MinKnap runs.
func WithProgressReporter(r ProgressReporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithMaxFrontierSize bounds the live frontier size; exceeding it surfaces
// ErrProblemTooLarge. Zero (the default) means unlimited, matching MinKnap's
// lack of an intrinsic ceiling per spec.md 5.
func WithMaxFrontierSize(n int) Option {
	return func(o *options) { o.maxFrontierSize = n }
}

// WithLogger installs a *zap.SugaredLogger for diagnostic messages emitted
// during the solve (reduction size, early termination, frontier ceiling
// warnings). Library code takes the logger explicitly rather than reaching
// for a package-level global, so concurrent Solve calls on distinct loggers
// remain independent. The default is a no-op logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) { o.logger = logger }
}

// instance is the MinKnap solver facade described in spec.md 4.6: it drives
// the frontier through alternating add-item/remove-item steps, tracks the
// best feasible state seen, and backtracks it into a full decision vector
// once the search terminates.
type instance struct {
	reduced reducedProblem
	bound   boundOracle
	brk     breakSolution

	decision  []bool
	itemOrder []int
	s, t      int

	lowerBound     uint64
	maxStateWeight uint64

	tree     *solTree
	solLevel int

	best struct {
		crumb     solCrumb
		level     int
		itemIndex int
		weight    uint64
	}

	frontier frontier
	opts     options
}

// Solve runs MinKnap to exact optimality on p and returns the chosen
// decision vector and its value/weight, validated against p before return.
// Solve honors ctx cancellation once per outer window-expansion iteration;
// it does not interrupt mid-iteration, since a half-expanded frontier has
// no useful partial meaning (spec.md 5).
func Solve(ctx context.Context, p Problem, opts ...Option) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	reduced, err := newEfficiencyOrder(p)
	if err != nil {
		return Solution{}, err
	}

	cfg := options{reporter: noopReporter{}, logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop().Sugar()
	}

	cfg.logger.Debugw("reduced problem", "original_items", len(p.Items), "reduced_items", reduced.n())

	decision := make([]bool, reduced.n())
	brk := computeBreakSolution(reduced, decision)

	fullDecision := scatterDecision(p, reduced, decision)

	if brk.breakItem == reduced.n() {
		cfg.logger.Debugw("break solution already optimal, all items fit", "value", brk.profit)
		sol := Solution{Decision: fullDecision, Value: brk.profit, Weight: brk.weight}
		if err := validateSolution(p, sol); err != nil {
			return Solution{}, err
		}
		return sol, nil
	}

	inst := &instance{
		reduced:        reduced,
		bound:          boundOracle{capacity: p.Capacity, efficiency: reduced.efficiency},
		brk:            brk,
		decision:       decision,
		lowerBound:     brk.profit,
		maxStateWeight: p.Capacity + brk.weight,
		tree:           newSolTree(),
		s:              brk.breakItem,
		t:              brk.breakItem - 1,
		opts:           cfg,
	}
	inst.frontier.current = []state{{w: brk.weight, p: brk.profit, crumb: newSolCrumb(0)}}
	inst.best.weight = brk.weight
	inst.best.itemIndex = -1 // sentinel: no improving state recorded yet

	if err := inst.run(ctx); err != nil {
		return Solution{}, err
	}
	cfg.logger.Debugw("minknap search complete", "value", inst.lowerBound, "weight", inst.best.weight)

	// If the search never improved on the break solution, the decision
	// vector is already correct as-is and there is nothing to backtrack.
	if inst.best.itemIndex >= 0 {
		itemOrder := inst.itemOrder[:inst.best.itemIndex+1]
		inst.tree.backtrack(inst.best.crumb, inst.best.level, itemOrder, inst.decision)
	}

	sol := Solution{
		Decision: scatterDecision(p, reduced, inst.decision),
		Value:    inst.lowerBound,
		Weight:   inst.best.weight,
	}
	if err := validateSolution(p, sol); err != nil {
		return Solution{}, err
	}
	return sol, nil
}

// scatterDecision expands a reduced-item-space decision vector into one
// indexed by the caller's original Problem.Items, leaving every
// variable-reduced-out item (weight > capacity) false.
func scatterDecision(p Problem, r reducedProblem, reduced []bool) []bool {
	full := make([]bool, len(p.Items))
	for i, taken := range reduced {
		if taken {
			full[r.origIndex[i]] = true
		}
	}
	return full
}

func (inst *instance) run(ctx context.Context) error {
	n := inst.reduced.n()
	start := time.Now()
	lastReport := start
	iteration := 0

	for len(inst.frontier.current) > 0 && iteration < n {
		if err := ctx.Err(); err != nil {
			return err
		}

		if inst.t < n-1 {
			inst.t++
			item := inst.reduced.item(inst.t)
			inst.itemOrder = append(inst.itemOrder, inst.reduced.efficiency[inst.t].originalIndex)

			res := inst.frontier.addItem(item, inst.bound, inst.s, inst.t, inst.maxStateWeight, inst.lowerBound)
			inst.solLevel++
			inst.recordIfImproved(res)
			if err := inst.enforceFrontierCeiling(); err != nil {
				return err
			}
			inst.maybeCommit()
		}

		if inst.best.weight == inst.reduced.capacity {
			break
		}

		if inst.s > 0 {
			inst.s--
			item := inst.reduced.item(inst.s)
			inst.itemOrder = append(inst.itemOrder, inst.reduced.efficiency[inst.s].originalIndex)

			res := inst.frontier.removeItem(item, inst.bound, inst.s, inst.t, inst.lowerBound)
			inst.solLevel++
			inst.recordIfImproved(res)
			if err := inst.enforceFrontierCeiling(); err != nil {
				return err
			}
			inst.maybeCommit()
		}

		if inst.best.weight == inst.reduced.capacity {
			break
		}

		iteration++
		lastReport = inst.reportProgress(iteration, start, lastReport)
	}

	return nil
}

func (inst *instance) recordIfImproved(res expansionResult) {
	if !res.improved {
		return
	}
	inst.lowerBound = res.bestP
	inst.best.crumb = res.bestCrumb
	inst.best.level = inst.solLevel
	inst.best.itemIndex = len(inst.itemOrder) - 1
	inst.best.weight = res.bestW
}

func (inst *instance) enforceFrontierCeiling() error {
	if inst.opts.maxFrontierSize > 0 && len(inst.frontier.current) > inst.opts.maxFrontierSize {
		inst.opts.logger.Warnw("frontier ceiling exceeded",
			"frontier_size", len(inst.frontier.current), "max_frontier_size", inst.opts.maxFrontierSize)
		return errors.Wrapf(ErrProblemTooLarge, "frontier grew to %d states, exceeding limit %d",
			len(inst.frontier.current), inst.opts.maxFrontierSize)
	}
	return nil
}

// maybeCommit implements spec.md 4.5's level management: once solLevel
// reaches 64, every live state's crumb is committed to the tree and
// solLevel resets.
func (inst *instance) maybeCommit() {
	if inst.solLevel < 64 {
		return
	}
	for i := range inst.frontier.current {
		inst.tree.commit(&inst.frontier.current[i].crumb)
	}
	inst.solLevel = 0
}

const (
	denseReportThreshold  = 10
	sparseReportThreshold = 100
	sparseReportInterval  = 10
	timeReportInterval    = 1500 * time.Millisecond
)

func (inst *instance) reportProgress(iteration int, start, lastReport time.Time) time.Time {
	now := time.Now()
	due := false
	switch {
	case iteration <= denseReportThreshold:
		due = true
	case iteration <= sparseReportThreshold:
		due = iteration%sparseReportInterval == 0
	default:
		due = now.Sub(lastReport) >= timeReportInterval
	}

	if !due {
		return lastReport
	}
	inst.opts.reporter.Report(iteration, len(inst.frontier.current), inst.lowerBound, now.Sub(start))
	return now
}
