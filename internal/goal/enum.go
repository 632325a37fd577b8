package goal

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusOnTrack    Status = "on_track"
	StatusAtRisk     Status = "at_risk"
	StatusOffTrack   Status = "off_track"
	StatusCompleted  Status = "completed"
)

var AllStatuses = []Status{
	StatusNotStarted,
	StatusOnTrack,
	StatusAtRisk,
	StatusOffTrack,
	StatusCompleted,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
