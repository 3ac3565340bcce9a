package chat

// RequestState is the lifecycle of the current question.
type RequestState int

const (
	Idle RequestState = iota
	Sending
	Success
	Failed
)

func (s RequestState) String() string {
	names := []string{"idle", "sending", "success", "failed"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
