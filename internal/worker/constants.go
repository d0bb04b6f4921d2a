package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the simulation tick job
const (
	LogMsgTickJobStarted = "Simulation tick job started"
	LogMsgCheckpointDone = "Checkpoint saved"
)
