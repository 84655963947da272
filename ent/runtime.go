// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/taskdag/taskdag/ent/agent"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/schema"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescVersion is the schema descriptor for version field.
	agentDescVersion := agentFields[2].Descriptor()
	// agent.DefaultVersion holds the default value on creation for the version field.
	agent.DefaultVersion = agentDescVersion.Default.(int)
	// agentDescActive is the schema descriptor for active field.
	agentDescActive := agentFields[6].Descriptor()
	// agent.DefaultActive holds the default value on creation for the active field.
	agent.DefaultActive = agentDescActive.Default.(bool)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[9].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	dagFields := schema.Dag{}.Fields()
	_ = dagFields
	// dagDescScheduleActive is the schema descriptor for schedule_active field.
	dagDescScheduleActive := dagFields[7].Descriptor()
	// dag.DefaultScheduleActive holds the default value on creation for the schedule_active field.
	dag.DefaultScheduleActive = dagDescScheduleActive.Default.(bool)
	// dagDescTimezone is the schema descriptor for timezone field.
	dagDescTimezone := dagFields[9].Descriptor()
	// dag.DefaultTimezone holds the default value on creation for the timezone field.
	dag.DefaultTimezone = dagDescTimezone.Default.(string)
	// dagDescCreatedAt is the schema descriptor for created_at field.
	dagDescCreatedAt := dagFields[13].Descriptor()
	// dag.DefaultCreatedAt holds the default value on creation for the created_at field.
	dag.DefaultCreatedAt = dagDescCreatedAt.Default.(func() time.Time)
	// dagDescUpdatedAt is the schema descriptor for updated_at field.
	dagDescUpdatedAt := dagFields[14].Descriptor()
	// dag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dag.DefaultUpdatedAt = dagDescUpdatedAt.Default.(func() time.Time)
	// dag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dag.UpdateDefaultUpdatedAt = dagDescUpdatedAt.UpdateDefault.(func() time.Time)
	dagexecutionFields := schema.DagExecution{}.Fields()
	_ = dagexecutionFields
	// dagexecutionDescTotalTasks is the schema descriptor for total_tasks field.
	dagexecutionDescTotalTasks := dagexecutionFields[8].Descriptor()
	// dagexecution.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	dagexecution.DefaultTotalTasks = dagexecutionDescTotalTasks.Default.(int)
	// dagexecutionDescCompletedTasks is the schema descriptor for completed_tasks field.
	dagexecutionDescCompletedTasks := dagexecutionFields[9].Descriptor()
	// dagexecution.DefaultCompletedTasks holds the default value on creation for the completed_tasks field.
	dagexecution.DefaultCompletedTasks = dagexecutionDescCompletedTasks.Default.(int)
	// dagexecutionDescFailedTasks is the schema descriptor for failed_tasks field.
	dagexecutionDescFailedTasks := dagexecutionFields[10].Descriptor()
	// dagexecution.DefaultFailedTasks holds the default value on creation for the failed_tasks field.
	dagexecution.DefaultFailedTasks = dagexecutionDescFailedTasks.Default.(int)
	// dagexecutionDescWaitingTasks is the schema descriptor for waiting_tasks field.
	dagexecutionDescWaitingTasks := dagexecutionFields[11].Descriptor()
	// dagexecution.DefaultWaitingTasks holds the default value on creation for the waiting_tasks field.
	dagexecution.DefaultWaitingTasks = dagexecutionDescWaitingTasks.Default.(int)
	// dagexecutionDescRetryCount is the schema descriptor for retry_count field.
	dagexecutionDescRetryCount := dagexecutionFields[16].Descriptor()
	// dagexecution.DefaultRetryCount holds the default value on creation for the retry_count field.
	dagexecution.DefaultRetryCount = dagexecutionDescRetryCount.Default.(int)
	// dagexecutionDescCreatedAt is the schema descriptor for created_at field.
	dagexecutionDescCreatedAt := dagexecutionFields[20].Descriptor()
	// dagexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	dagexecution.DefaultCreatedAt = dagexecutionDescCreatedAt.Default.(func() time.Time)
	// dagexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	dagexecutionDescUpdatedAt := dagexecutionFields[21].Descriptor()
	// dagexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dagexecution.DefaultUpdatedAt = dagexecutionDescUpdatedAt.Default.(func() time.Time)
	// dagexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dagexecution.UpdateDefaultUpdatedAt = dagexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	stoprequestFields := schema.StopRequest{}.Fields()
	_ = stoprequestFields
	// stoprequestDescRequestedAt is the schema descriptor for requested_at field.
	stoprequestDescRequestedAt := stoprequestFields[4].Descriptor()
	// stoprequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	stoprequest.DefaultRequestedAt = stoprequestDescRequestedAt.Default.(func() time.Time)
	substepFields := schema.SubStep{}.Fields()
	_ = substepFields
	// substepDescCreatedAt is the schema descriptor for created_at field.
	substepDescCreatedAt := substepFields[18].Descriptor()
	// substep.DefaultCreatedAt holds the default value on creation for the created_at field.
	substep.DefaultCreatedAt = substepDescCreatedAt.Default.(func() time.Time)
	// substepDescUpdatedAt is the schema descriptor for updated_at field.
	substepDescUpdatedAt := substepFields[19].Descriptor()
	// substep.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	substep.DefaultUpdatedAt = substepDescUpdatedAt.Default.(func() time.Time)
	// substep.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	substep.UpdateDefaultUpdatedAt = substepDescUpdatedAt.UpdateDefault.(func() time.Time)
}
