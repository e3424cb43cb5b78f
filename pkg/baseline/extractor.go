// Package baseline fits a ridge regression baseline predictor over gifsicle
// profiling data and freezes it into a portable JSON artifact.
package baseline

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/arstropica/gif-compressor/pkg/data"
	"github.com/arstropica/gif-compressor/pkg/dataprep"
	"github.com/arstropica/gif-compressor/pkg/loader"
	"github.com/arstropica/gif-compressor/pkg/model"
)

// defaultAlpha is the fixed L2 penalty strength. It is not tunable and no
// search over it is performed.
const defaultAlpha = 1.0

// ErrNotLoaded reports an extraction attempted before any data was loaded.
var ErrNotLoaded = errors.New("baseline: data not loaded")

// Extractor runs the one-shot batch pipeline: load, cross-validate, fit on
// the full dataset, and assemble the artifact. One Extractor serves one run;
// nothing is mutated after Extract returns.
type Extractor struct {
	logger *slog.Logger
	alpha  float64
	table  *data.Table
	cv     *CVResult
}

// NewExtractor loads the training file immediately and returns a ready
// Extractor, or the load error.
func NewExtractor(trainFile string, logger *slog.Logger) (*Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{logger: logger, alpha: defaultAlpha}
	t, err := data.Load(trainFile, logger)
	if err != nil {
		return nil, err
	}
	e.table = t
	return e, nil
}

// CVResult holds the leave-one-file-out cross-validation diagnostics.
// Actual and Predicted are row-aligned with the table; Predicted carries
// each row's out-of-fold prediction in log space.
type CVResult struct {
	MAE       float64
	FoldMAEs  []float64
	Actual    []float64
	Predicted []float64
}

// CrossValidate estimates generalization error with one fold per source
// file. Each fold refits the whole preprocessing and regression pipeline on
// the remaining files only, so nothing from the held-out file leaks into
// its own score. Folds run on a small worker pool; per-fold scores land in
// an indexed slice, so the reported mean does not depend on completion
// order. The result is diagnostic metadata and never feeds the final fit.
func (e *Extractor) CrossValidate() (*CVResult, error) {
	if e.table == nil {
		return nil, ErrNotLoaded
	}
	folds := loader.GroupKFold(e.table.Groups)
	res := &CVResult{
		FoldMAEs:  make([]float64, len(folds)),
		Actual:    dataprep.LogTransform(e.table.Y),
		Predicted: make([]float64, e.table.Len()),
	}
	errs := make([]error, len(folds))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(folds) {
		workers = len(folds)
	}
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range work {
				fold := folds[k]
				fit, err := fitPipeline(e.table, fold.Train, e.alpha)
				if err != nil {
					errs[k] = fmt.Errorf("fold %s: %w", fold.Group, err)
					continue
				}
				pred := fit.predict(e.table, fold.Test)
				actual := make([]float64, len(fold.Test))
				for i, r := range fold.Test {
					actual[i] = res.Actual[r]
					res.Predicted[r] = pred[i]
				}
				res.FoldMAEs[k] = model.MAE(actual, pred)
				e.logger.Debug("scored fold",
					slog.String("filename", fold.Group),
					slog.Float64("mae_log", res.FoldMAEs[k]))
			}
		}()
	}
	for k := range folds {
		work <- k
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	res.MAE = stat.Mean(res.FoldMAEs, nil)
	e.cv = res
	return res, nil
}

// Extract cross-validates, fits the baseline on the entire filtered dataset
// and assembles the portable artifact. The reported mae_cv_log and the
// shipped coefficients intentionally come from different fits: the score
// from per-fold refits, the coefficients from one fit over all rows.
func (e *Extractor) Extract() (*Artifact, error) {
	if e.table == nil {
		return nil, ErrNotLoaded
	}

	cv, err := e.CrossValidate()
	if err != nil {
		return nil, err
	}
	e.logger.Info("cross-validated MAE (log-space)", slog.Float64("mae_cv_log", cv.MAE))

	all := make([]int, e.table.Len())
	for i := range all {
		all[i] = i
	}
	fit, err := fitPipeline(e.table, all, e.alpha)
	if err != nil {
		return nil, err
	}
	e.logger.Info("fitted the baseline model on the entire dataset")

	features := fit.featureNames()
	coeffs := make(map[string]float64, len(features))
	for j, name := range features {
		coeffs[name] = fit.Model.W[j]
	}
	mean := make(map[string]float64, len(fit.Scaler.Columns))
	scale := make(map[string]float64, len(fit.Scaler.Columns))
	for j, name := range fit.Scaler.Columns {
		mean[name] = fit.Scaler.Mean[j]
		scale[name] = fit.Scaler.Scale[j]
	}

	return &Artifact{
		Intercept:    fit.Model.B,
		Coefficients: coeffs,
		Scaler:       ScalerParams{Mean: mean, Scale: scale},
		Metadata: Metadata{
			Samples:  e.table.Len(),
			MAECVLog: cv.MAE,
			Features: features,
		},
	}, nil
}

// pipelineFit carries the frozen preprocessing parameters and the fitted
// model for one training partition. The two stages are composed explicitly:
// a feature transform whose parameters are plain data, then a regression
// fit over the transformed matrix.
type pipelineFit struct {
	Scaler  *dataprep.StandardScaler
	Encoder *dataprep.OneHotEncoder
	Model   *model.Ridge
}

// fitPipeline fits scaler, encoder and ridge on the given rows of t against
// the log-transformed target.
func fitPipeline(t *data.Table, rows []int, alpha float64) (*pipelineFit, error) {
	Xn := make([][]float64, len(rows))
	cats := make([]string, len(rows))
	y := make([]float64, len(rows))
	for i, r := range rows {
		Xn[i] = t.X[r]
		cats[i] = t.Category[r]
		y[i] = t.Y[r]
	}

	scaler := dataprep.NewStandardScaler(t.Schema.FeatureColumns())
	encoder := dataprep.NewOneHotEncoder(t.Schema.Category)
	encoder.Fit(cats)
	X := dataprep.HStack(scaler.FitTransform(Xn), encoder.Transform(cats))

	m := model.NewRidge(alpha)
	if err := m.Fit(X, dataprep.LogTransform(y)); err != nil {
		return nil, err
	}
	return &pipelineFit{Scaler: scaler, Encoder: encoder, Model: m}, nil
}

// predict applies the frozen transform to the given rows of t and evaluates
// the model, returning log-space predictions.
func (p *pipelineFit) predict(t *data.Table, rows []int) []float64 {
	Xn := make([][]float64, len(rows))
	cats := make([]string, len(rows))
	for i, r := range rows {
		Xn[i] = t.X[r]
		cats[i] = t.Category[r]
	}
	X := dataprep.HStack(p.Scaler.Transform(Xn), p.Encoder.Transform(cats))
	return p.Model.Predict(X)
}

// featureNames returns the transformed column order the coefficients are
// aligned to: standardized columns first, then the one-hot columns.
func (p *pipelineFit) featureNames() []string {
	names := make([]string, 0, len(p.Scaler.Columns)+len(p.Encoder.Categories))
	names = append(names, p.Scaler.Columns...)
	names = append(names, p.Encoder.FeatureNames()...)
	return names
}
