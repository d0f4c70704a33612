package calc

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/internal/metrics"
	"github.com/karim5623/seismhaz/internal/obslog"
	"github.com/karim5623/seismhaz/model"
	"github.com/karim5623/seismhaz/source"
	"golang.org/x/sync/errgroup"
)

// options configures a ComputeHazard call.
type options struct {
	parallel bool
	logger   *obslog.Logger
	metrics  *metrics.Registry
}

// Option customizes ComputeHazard.
type Option func(*options)

// WithParallel selects the parallel fan-out execution mode (spec.md §5);
// the default is sequential.
func WithParallel(p bool) Option {
	return func(o *options) { o.parallel = p }
}

// WithLogger attaches structured logging to the calculation.
func WithLogger(l *obslog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches Prometheus instrumentation to the calculation.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// ComputeHazard is the single public entry point (spec.md §6):
// computeHazard(model, config, site, executor?) -> HazardResult. Executor
// selection here is the WithParallel option rather than a caller-supplied
// pool, since Go's runtime scheduler plus errgroup already bounds
// concurrency to GOMAXPROCS without a separate executor abstraction.
//
// Sequential and parallel modes produce bitwise-identical results: each
// SourceSet and each Source within it is reduced by its declaration index,
// never by completion order (spec.md §5).
func ComputeHazard(ctx context.Context, hm *source.HazardModel, site model.Site, table *gmm.Table, opts ...Option) (*HazardResult, error) {
	o := &options{logger: obslog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()
	result, err := computeHazard(ctx, hm, site, table, o)
	if o.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		o.metrics.ObserveCalculation(outcome, start)
	}
	o.logger.Info("compute_hazard_done", "model", hm.Name(), "site", site.Name, "elapsed", obslog.Elapsed(start), "error", err)

	return result, err
}

func computeHazard(ctx context.Context, hm *source.HazardModel, site model.Site, table *gmm.Table, o *options) (*HazardResult, error) {
	sets := hm.SourceSets()
	curveSets := make([]*HazardCurveSet, len(sets))

	if err := table.HasAll(allGmms(sets), hm.Config().Imts()); err != nil {
		return nil, configErrorf("ComputeHazard", err)
	}

	if o.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, ss := range sets {
			i, ss := i, ss
			g.Go(func() error {
				hcs, err := computeSourceSet(gctx, ss, site, hm.Config(), table, o)
				if err != nil {
					return err
				}
				curveSets[i] = hcs

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, classifyErr(ctx, err)
		}
	} else {
		for i, ss := range sets {
			if err := ctx.Err(); err != nil {
				return nil, classifyErr(ctx, err)
			}
			hcs, err := computeSourceSet(ctx, ss, site, hm.Config(), table, o)
			if err != nil {
				return nil, err
			}
			curveSets[i] = hcs
		}
	}

	if o.metrics != nil {
		for range sets {
			o.metrics.SourceSets.Inc()
		}
	}

	return CurveSetConsolidator(curveSets, hm, site)
}

func computeSourceSet(ctx context.Context, ss *source.SourceSet, site model.Site, cfg *model.CalcConfig, table *gmm.Table, o *options) (*HazardCurveSet, error) {
	srcs := ss.Sources()
	gmms := ss.Gmms().Gmms()
	contribs := make([]SourceContribution, len(srcs))

	if o.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, src := range srcs {
			i, src := i, src
			g.Go(func() error {
				start := time.Now()
				hc, rep, err := processSource(gctx, src, ss, site, cfg, table, gmms)
				if o.metrics != nil {
					o.metrics.ObserveSource(start)
				}
				if err != nil {
					return err
				}
				contribs[i] = SourceContribution{SourceID: src.ID(), RepDistance: rep, Curves: hc}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, classifyErr(ctx, err)
		}
	} else {
		for i, src := range srcs {
			if err := ctx.Err(); err != nil {
				return nil, classifyErr(ctx, err)
			}
			start := time.Now()
			hc, rep, err := processSource(ctx, src, ss, site, cfg, table, gmms)
			if o.metrics != nil {
				o.metrics.ObserveSource(start)
			}
			if err != nil {
				return nil, err
			}
			contribs[i] = SourceContribution{SourceID: src.ID(), RepDistance: rep, Curves: hc}
		}
	}

	return CurveConsolidator(contribs, ss, cfg)
}

// processSource runs stages 1-3 for one source, dispatching to the
// cluster and system specializations on the source's variant tag
// (spec.md §9: dispatch on the variant tag at stage 1, not inheritance).
func processSource(ctx context.Context, src source.Source, ss *source.SourceSet, site model.Site, cfg *model.CalcConfig, table *gmm.Table, gmms []gmm.Gmm) (*HazardCurves, float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, classifyErr(ctx, err)
	}

	switch t := src.(type) {
	case *source.ClusterSource:
		var segCurves []*HazardCurves
		minDist := math.Inf(1)
		for _, seg := range t.Segments {
			il, err := SourceToInputs(seg, site)
			if err != nil {
				return nil, 0, err
			}
			gms, err := InputsToGroundMotions(il, table, gmms, cfg.Imts())
			if err != nil {
				return nil, 0, err
			}
			hc, err := GroundMotionsToCurves(gms, cfg, gmms)
			if err != nil {
				return nil, 0, err
			}
			segCurves = append(segCurves, hc)
			minDist = math.Min(minDist, minRRup(il))
		}
		combined, err := ClusterConsolidate(segCurves, t.ID(), t.Rate, cfg, gmms)

		return combined, minDist, err

	case *source.SystemSource:
		il, err := SourceToInputsSystem(t, site, ss.DistanceCutoff())
		if err != nil {
			return nil, 0, err
		}
		gms, err := InputsToGroundMotions(il, table, gmms, cfg.Imts())
		if err != nil {
			return nil, 0, err
		}
		hc, err := GroundMotionsToCurves(gms, cfg, gmms)

		return hc, minRRup(il), err

	default:
		il, err := SourceToInputs(src, site)
		if err != nil {
			return nil, 0, err
		}
		gms, err := InputsToGroundMotions(il, table, gmms, cfg.Imts())
		if err != nil {
			return nil, 0, err
		}
		hc, err := GroundMotionsToCurves(gms, cfg, gmms)

		return hc, minRRup(il), err
	}
}

// allGmms collects the deduplicated union of every SourceSet's GMMs, the
// dense-table precondition ComputeHazard validates up front via
// gmm.Table.HasAll before any stage runs.
func allGmms(sets []*source.SourceSet) []gmm.Gmm {
	seen := make(map[gmm.Gmm]struct{})
	var out []gmm.Gmm
	for _, ss := range sets {
		for _, g := range ss.Gmms().Gmms() {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				out = append(out, g)
			}
		}
	}

	return out
}

func minRRup(il *gmm.InputList) float64 {
	min := math.Inf(1)
	for _, in := range il.Inputs {
		if in.RRup < min {
			min = in.RRup
		}
	}

	return min
}

// classifyErr folds a context cancellation/deadline into the single
// distinguished ErrCancelled kind (spec.md §7), preserving other errors
// (already ErrConfig/ErrModelData-wrapped) unchanged.
func classifyErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}

	return err
}
