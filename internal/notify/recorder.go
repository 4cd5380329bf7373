package notify

// Notice is one captured notification.
type Notice struct {
	Message  string
	Severity Severity
}

// Recorder captures notices for assertions in tests.
type Recorder struct {
	Notices []Notice
}

// Notify appends the notice to the captured list.
func (r *Recorder) Notify(message string, severity Severity) {
	r.Notices = append(r.Notices, Notice{Message: message, Severity: severity})
}

// Last returns the most recent notice, or a zero Notice if none were
// captured.
func (r *Recorder) Last() Notice {
	if len(r.Notices) == 0 {
		return Notice{}
	}
	return r.Notices[len(r.Notices)-1]
}

// Reset discards captured notices.
func (r *Recorder) Reset() {
	r.Notices = nil
}

// Count reports how many notices were captured.
func (r *Recorder) Count() int {
	return len(r.Notices)
}
