// Package log defines standard attribute keys for ensembling operations.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.rows") so that logs can be filtered by prefix.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies a model taking part in an ensemble.
	ModelNameKey = "model.name"

	// ModelIndexKey is the position of a model in the submitted list.
	ModelIndexKey = "model.index"

	// ModelsKey is the number of models in an ensemble.
	ModelsKey = "ensemble.models"

	// OperationKey specifies the operation being performed.
	// Standard values: "validate", "group", "optimize", "flush"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// RowsKey is the number of rows (first axis) of a container.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns of a container.
	ColumnsKey = "data.columns"

	// FoldKey is the 0-based fold index.
	FoldKey = "cv.fold"

	// FoldsKey is the number of folds requested.
	FoldsKey = "cv.folds"

	// TestSizeKey is the held-out fraction for holdout validation.
	TestSizeKey = "cv.test_size"
)

// Optimization
const (
	// MethodKey names the solver method.
	MethodKey = "optim.method"

	// ScorerKey names the scoring function.
	ScorerKey = "optim.scorer"

	// LossKey records a loss value.
	LossKey = "metrics.loss"

	// WeightsKey records a blend weight vector.
	WeightsKey = "optim.weights"

	// StatusKey records the solver termination status.
	StatusKey = "optim.status"

	// IterationKey records the number of major iterations.
	IterationKey = "optim.iterations"

	// EvaluationsKey records the number of objective evaluations.
	EvaluationsKey = "optim.evaluations"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Filesystem
const (
	// PathKey records a filesystem path.
	PathKey = "fs.path"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides a hint for resolving an issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationValidate = "validate"
	OperationGroup    = "group"
	OperationOptimize = "optimize"
	OperationFlush    = "flush"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
)
