package event

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
)

type WorkerRestartedAfterPanic struct {
	WorkerName string
}
