// Package log defines standard attribute keys for data generation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in SimReg. Using these standard keys enables better
// log analysis, monitoring, and debugging of dataset generation workflows.
//
// The attributes are organized into categories:
//   - Generator and Operation Context
//   - Data Shape and Characteristics
//   - SNR Calibration
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "generator.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Generator and Operation Context
// These attributes identify the generator type, instance, and operation being performed.
const (
	// GeneratorNameKey identifies the type of dataset generator.
	// Examples: "LinearRegressionData"
	GeneratorNameKey = "generator.name"

	// DatasetIDKey provides a unique identifier for a generated dataset.
	// This is useful for tracking repeated draws from the same generator.
	// Examples: "sim-001", "run-abc123", UUID strings
	DatasetIDKey = "dataset.id"

	// OperationKey specifies the generation operation being performed.
	// Standard values: "load", "sample_template", "bisect", "snr"
	OperationKey = "gen.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "simulate", "optimize", "metrics"
	ComponentKey = "gen.component"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of generated data.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of variables (columns) in the dataset.
	// Includes the intercept column when one is present.
	FeaturesKey = "data.features"

	// PenaltiesKey indicates the number of penalty terms driving the construction.
	PenaltiesKey = "data.penalties"

	// InterceptKey records whether the first column is an all-ones intercept.
	InterceptKey = "data.intercept"

	// SeedKey records the random seed used for template or coefficient sampling.
	// Essential for debugging and ensuring reproducible datasets.
	SeedKey = "data.seed"
)

// SNR Calibration
// These attributes capture signal-to-noise calibration progress and results.
const (
	// SNRTargetKey records the requested signal-to-noise ratio.
	SNRTargetKey = "snr.target"

	// SNRAchievedKey records the signal-to-noise ratio measured on the output.
	SNRAchievedKey = "snr.achieved"

	// SNRScaleKey records the coefficient scale factor found by root-finding.
	SNRScaleKey = "snr.scale"

	// BracketLowKey and BracketHighKey record the final bracketing interval.
	BracketLowKey  = "snr.bracket_low"
	BracketHighKey = "snr.bracket_high"
)

// Performance Metrics
// These attributes capture timing and iteration information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// IterationKey records the current iteration number during iterative processes.
	// Useful for tracking convergence of the bisection loop.
	IterationKey = "perf.iteration"

	// ExpansionsKey records how many times a bracketing interval was expanded.
	ExpansionsKey = "perf.expansions"
)

// Error Context
// These attributes provide additional context for error messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "NO_SIGN_CHANGE", "DIMENSION_MISMATCH", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "BracketError", "DimensionError", "PanicError"
	ErrorTypeKey = "error.type"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check template shape", "Use a non-zero penalty weight"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard generation operations
	OperationLoad           = "load"
	OperationSampleTemplate = "sample_template"
	OperationBisect         = "bisect"
	OperationSNR            = "snr"

	// Standard error codes
	ErrorNoSignChange         = "NO_SIGN_CHANGE"
	ErrorDimensionMismatch    = "DIMENSION_MISMATCH"
	ErrorEmptyData            = "EMPTY_DATA"
	ErrorConvergence          = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix       = "SINGULAR_MATRIX"
	ErrorNumericalInstability = "NUMERICAL_INSTABILITY"
)
