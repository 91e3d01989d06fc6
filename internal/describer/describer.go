// =============================================================================
// Customs Describer - Pipeline Module
// =============================================================================
//
// This module runs the describe pipeline for a single catalog file.
//
// PIPELINE:
//   1. Resolve the output path (fails fast if an explicit output exists)
//   2. Load the CSV, every cell as a plain string
//   3. Validate the header row against the known schemas
//   4. Map rows to request items and classify them in one call
//   5. Append the descriptions as a new column, positionally
//   6. Write the augmented CSV
//   7. Report the elapsed time of step 4
//
// Any failure ends the run. Nothing is written unless every earlier step
// succeeded.
//
// =============================================================================

package describer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/customs-describer/internal/classifier"
	"github.com/ginjaninja78/customs-describer/internal/config"
	"github.com/ginjaninja78/customs-describer/internal/csvparser"
	"github.com/ginjaninja78/customs-describer/internal/logger"
	"github.com/ginjaninja78/customs-describer/internal/transform"
	"github.com/ginjaninja78/customs-describer/internal/validation"
	"github.com/ginjaninja78/customs-describer/pkg/utils"
	"github.com/spf13/afero"
)

// =============================================================================
// REQUEST / RESULT STRUCTURES
// =============================================================================

// Request names the files for one run.
type Request struct {
	// Input is the catalog to describe.
	Input string

	// Output is where the augmented catalog goes. Empty derives a free
	// path next to Input.
	Output string

	// Overwrite allows replacing an existing explicit Output.
	Overwrite bool
}

// Result represents the outcome of a successful run.
type Result struct {
	// OutputFile is the path the augmented catalog was written to.
	OutputFile string

	// Schema is the name of the detected catalog layout.
	Schema string

	// HSCodeColumn is the header of the HS code column that was used.
	HSCodeColumn string

	// Rows is the number of rows described.
	Rows int

	// Elapsed is the wall-clock time of mapping plus the remote call.
	Elapsed time.Duration

	// Table is the augmented catalog as written.
	Table *csvparser.Table
}

// =============================================================================
// DESCRIBER STRUCTURE
// =============================================================================

// Options configures a Describer.
type Options struct {
	// Fs is the filesystem for reading input and writing output.
	// Default: the OS filesystem.
	Fs afero.Fs

	// Classifier produces the customs descriptions. Required by Run;
	// a Describer without one can only Validate.
	Classifier classifier.Classifier

	// OutputSuffix and DescriptionColumn default to the config defaults.
	OutputSuffix      string
	DescriptionColumn string

	// Logger receives progress messages. Default: discard.
	Logger logger.Logger

	// Out receives operator-facing output such as the elapsed time.
	// Default: io.Discard.
	Out io.Writer
}

// Describer runs the describe pipeline.
type Describer struct {
	fs                afero.Fs
	files             *utils.FileManager
	classifier        classifier.Classifier
	validator         *validation.Validator
	descriptionColumn string
	logger            logger.Logger
	out               io.Writer
}

// New creates a Describer.
func New(opts Options) (*Describer, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.OutputSuffix == "" {
		opts.OutputSuffix = config.DefaultOutputSuffix
	}
	if opts.DescriptionColumn == "" {
		opts.DescriptionColumn = config.DefaultDescriptionColumn
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	return &Describer{
		fs:                opts.Fs,
		files:             utils.NewFileManager(opts.Fs, opts.OutputSuffix),
		classifier:        opts.Classifier,
		validator:         validation.NewValidator(),
		descriptionColumn: opts.DescriptionColumn,
		logger:            opts.Logger,
		out:               opts.Out,
	}, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline for one catalog.
//
// RETURNS:
//   - The result, including the augmented table.
//   - A *types.Error for the expected failure kinds (OutputExists,
//     SchemaMismatch, AmbiguousSchema, HsCodeColumnMissing,
//     RemoteCallFailed, RemoteDataMissing), or a wrapped I/O error.
func (d *Describer) Run(ctx context.Context, req Request) (*Result, error) {
	if d.classifier == nil {
		return nil, fmt.Errorf("classifier is required to describe a catalog")
	}

	// =========================================================================
	// STEP 1: RESOLVE OUTPUT PATH
	// =========================================================================

	outputPath, err := d.files.ResolveOutputPath(req.Input, req.Output, req.Overwrite)
	if err != nil {
		return nil, err
	}

	d.logger.Info("Describing catalog", "input", req.Input, "output", outputPath)

	// =========================================================================
	// STEP 2-3: LOAD AND VALIDATE
	// =========================================================================

	table, check, err := d.load(req.Input)
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 4: MAP ROWS AND CLASSIFY
	// =========================================================================

	start := time.Now()

	items, err := transform.MapRows(table, check.Schema, check.HSCodeColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to build classification request: %w", err)
	}

	descriptions, err := d.classifier.Classify(ctx, items)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	d.logger.Debug("Classification complete", "items", len(items), "elapsed", elapsed)

	// =========================================================================
	// STEP 5: MERGE
	// =========================================================================

	if err := table.SetColumn(d.descriptionColumn, descriptions); err != nil {
		return nil, fmt.Errorf("failed to merge descriptions: %w", err)
	}

	// =========================================================================
	// STEP 6: PERSIST
	// =========================================================================

	if err := csvparser.Write(d.fs, outputPath, table); err != nil {
		return nil, err
	}

	d.logger.Info("Wrote output", "path", outputPath, "rows", table.RowCount())

	// =========================================================================
	// STEP 7: REPORT
	// =========================================================================

	fmt.Fprintf(d.out, "Elapsed time: %s\n", elapsed)

	return &Result{
		OutputFile:   outputPath,
		Schema:       check.Schema.Name,
		HSCodeColumn: check.HSCodeColumn,
		Rows:         table.RowCount(),
		Elapsed:      elapsed,
		Table:        table,
	}, nil
}

// Validate loads and validates a catalog without contacting the classifier
// or writing anything.
func (d *Describer) Validate(_ context.Context, input string) (*validation.Result, error) {
	_, check, err := d.load(input)
	return check, err
}

// load reads the catalog and validates its header row.
func (d *Describer) load(input string) (*csvparser.Table, *validation.Result, error) {
	table, err := csvparser.Read(d.fs, input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load input: %w", err)
	}

	check, err := d.validator.Validate(table)
	if err != nil {
		return nil, nil, err
	}

	for _, w := range check.Warnings {
		d.logger.Warn("Suspicious row", "row", w.RowNumber, "field", w.Field, "value", w.Value, "reason", w.Message)
	}
	d.logger.Debug("Catalog validated",
		"schema", check.Schema.Name,
		"hs_code_column", check.HSCodeColumn,
		"rows", check.RowsValidated,
	)

	return table, check, nil
}
