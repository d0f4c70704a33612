package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/karim5623/seismhaz/calc"
	"github.com/karim5623/seismhaz/config"
	"github.com/karim5623/seismhaz/gmm"
	"github.com/karim5623/seismhaz/internal/metrics"
	"github.com/karim5623/seismhaz/internal/obslog"
	"github.com/karim5623/seismhaz/model"
	"github.com/karim5623/seismhaz/source"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Args:  cobra.NoArgs,
	Short: "Run the built-in demonstration hazard model against one site",
	RunE:  runCompute,
}

func init() {
	computeCmd.Flags().String("site-name", "site1", "site name")
	computeCmd.Flags().Float64("lon", 0, "site longitude")
	computeCmd.Flags().Float64("lat", 0, "site latitude")
	computeCmd.Flags().Float64("vs30", 760, "site Vs30 in m/s")
	computeCmd.Flags().Bool("parallel", false, "use the parallel fan-out execution mode")
	computeCmd.Flags().String("out", "", "output CSV path (default: stdout)")
}

func runCompute(cmd *cobra.Command, args []string) error {
	siteName, _ := cmd.Flags().GetString("site-name")
	lon, _ := cmd.Flags().GetFloat64("lon")
	lat, _ := cmd.Flags().GetFloat64("lat")
	vs30, _ := cmd.Flags().GetFloat64("vs30")
	parallel, _ := cmd.Flags().GetBool("parallel")
	outPath, _ := cmd.Flags().GetString("out")

	logLevel := obslog.LevelInfo
	if verbose {
		logLevel = obslog.LevelDebug
	}
	logger := obslog.New(obslog.Config{Level: logLevel, Output: os.Stderr})

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	logger.Info("hazctl compute starting", "site", siteName)

	overlay, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("hazctl: %w", err)
	}
	cfg, err := overlay.Build()
	if err != nil {
		return fmt.Errorf("hazctl: %w", err)
	}

	hm, err := demoHazardModel(cfg)
	if err != nil {
		return fmt.Errorf("hazctl: %w", err)
	}

	site := model.Site{Name: siteName, Lon: lon, Lat: lat, Vs30: vs30}
	reg := metrics.NewRegistry(prometheus.NewRegistry())

	result, err := calc.ComputeHazard(
		context.Background(), hm, site, demoGmmTable(),
		calc.WithParallel(parallel), calc.WithLogger(logger), calc.WithMetrics(reg),
	)
	if err != nil {
		return fmt.Errorf("hazctl: compute: %w", err)
	}

	var out *os.File
	if outPath == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(outPath)
		if err != nil {
			return fmt.Errorf("hazctl: %w", err)
		}
		defer out.Close()
	}

	return writeCSV(out, result, site)
}

// writeCSV renders PGA linear-x Poisson-probability values in the §6 CSV
// test-result format: <site_name>, <lon>, <lat>, v1;v2;...;vN.
func writeCSV(w *os.File, result *calc.HazardResult, site model.Site) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"site_name", "lon", "lat", "values"}); err != nil {
		return err
	}

	curve := result.TotalLinearX[gmm.PGA]
	values := curve.Values()
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	row := []string{
		site.Name,
		strconv.FormatFloat(site.Lon, 'f', -1, 64),
		strconv.FormatFloat(site.Lat, 'f', -1, 64),
		strings.Join(fields, ";"),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// demoGmmTable registers a single stand-in GMM: hazctl is a pipeline
// demonstration, not a vehicle for the empirical GMM coefficient library,
// which spec.md §1 treats as an external collaborator out of core scope.
func demoGmmTable() *gmm.Table {
	tbl := gmm.NewTable()
	tbl.Register("DEMO", gmm.PGA, gmm.Func(func(in gmm.HazardInput) (float64, float64, error) {
		logMean := -4.0 - 0.003*in.RRup + 0.7*(in.Mag-6)
		return logMean, 0.65, nil
	}))

	return tbl
}

// demoHazardModel builds a small Set1-Case1-style single-fault model: one
// GR-MFD fault source in one SourceSet with a single GMM at full weight.
func demoHazardModel(cfg *model.CalcConfig) (*source.HazardModel, error) {
	surf := source.PlanarSurface{Lon1: 0, Lat1: -0.2, Lon2: 0, Lat2: 0.2, DipDeg: 90, WidthKm: 15, TopDepthKm: 0}
	fault, err := source.NewFaultSource("demo-fault", surf, 0, 4.6, 0.9, 5, 7.5, 0.1)
	if err != nil {
		return nil, err
	}

	gb := model.NewGmmSetBuilder()
	gb.SetWeights("DEMO", 1, 1)
	gmms, err := gb.Seal()
	if err != nil {
		return nil, err
	}

	sb := source.NewSourceSetBuilder("demo-set", "ss-demo", gmms, 1.0)
	sb.Add(fault)
	ss, err := sb.Seal()
	if err != nil {
		return nil, err
	}

	return source.NewHazardModel("hazctl-demo", []*source.SourceSet{ss}, cfg), nil
}
