package models

// DagStatus is the lifecycle state of a persisted plan.
type DagStatus string

const (
	DagStatusSuccess         DagStatus = "success"
	DagStatusPending         DagStatus = "pending" // awaiting clarification
	DagStatusValidationError DagStatus = "validation_error"
)

// ExecutionStatus is the lifecycle state of a DAG execution.
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusWaiting   ExecutionStatus = "waiting"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusPartial   ExecutionStatus = "partial"
	ExecutionStatusSuspended ExecutionStatus = "suspended"
)

// IsTerminal reports whether the status ends an execution's lifecycle.
// A pending execution may still be resumed by the scheduler or a stop
// rollback, so it is not terminal.
func (s ExecutionStatus) IsTerminal() bool {
	switch s {
	case ExecutionStatusCompleted, ExecutionStatusFailed, ExecutionStatusPartial, ExecutionStatusSuspended:
		return true
	}
	return false
}

// SubStepStatus is the lifecycle state of a single execution node.
type SubStepStatus string

const (
	SubStepStatusPending   SubStepStatus = "pending"
	SubStepStatusRunning   SubStepStatus = "running"
	SubStepStatusWaiting   SubStepStatus = "waiting"
	SubStepStatusCompleted SubStepStatus = "completed"
	SubStepStatusFailed    SubStepStatus = "failed"
	SubStepStatusDeleted   SubStepStatus = "deleted"
)

// IsTerminated reports whether the sub-step has reached a final state.
// Completed and failed rows are never transitioned again.
func (s SubStepStatus) IsTerminated() bool {
	return s == SubStepStatusCompleted || s == SubStepStatusFailed
}

// StopRequestStatus is the state of a cooperative stop signal.
type StopRequestStatus string

const (
	StopRequestStatusRequested StopRequestStatus = "requested"
	StopRequestStatusHandled   StopRequestStatus = "handled"
)

// ActionType distinguishes tool calls from LLM inference nodes.
type ActionType string

const (
	ActionTypeTool      ActionType = "tool"
	ActionTypeInference ActionType = "inference"
)

// AttemptReason labels one planner LLM call in the attempt log.
type AttemptReason string

const (
	AttemptReasonInitial         AttemptReason = "initial"
	AttemptReasonRetryGaps       AttemptReason = "retry_gaps"
	AttemptReasonRetryParseError AttemptReason = "retry_parse_error"
	AttemptReasonRetryValidation AttemptReason = "retry_validation"
	AttemptReasonTitleMaster     AttemptReason = "title_master"
)

// Coverage is the decomposer's self-assessed plan quality.
type Coverage string

const (
	CoverageHigh   Coverage = "high"
	CoverageMedium Coverage = "medium"
	CoverageLow    Coverage = "low"
)

// SynthesisTaskID is the task id of the synthetic aggregation sub-step.
const SynthesisTaskID = "__SYNTHESIS__"
