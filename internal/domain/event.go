package domain

// DateLayout is the wire format for event dates.
const DateLayout = "2006-01-02"

// FewSeatsThreshold is the remaining-capacity mark below which an event
// is flagged as nearly full.
const FewSeatsThreshold = 20

// Event is the read-only snapshot of an event record as served by the
// upstream API. The gateway never mutates these; filtering is always a
// pure recomputation over the snapshot.
type Event struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Date          string   `json:"date"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Location      string   `json:"location"`
	Campus        string   `json:"campus"`
	Speakers      []string `json:"speakers"`
	Capacity      int      `json:"capacity"`
	Registered    int      `json:"registered"`
	Requirements  []string `json:"requirements"`
	Organizer     string   `json:"organizer"`
	OrganizerType string   `json:"organizerType"`
	Tags          []string `json:"tags"`
	IsRegistered  bool     `json:"isRegistered"`
}

// SeatsLeft returns the remaining capacity.
func (e Event) SeatsLeft() int {
	return e.Capacity - e.Registered
}

// FewSeatsLeft reports whether the event should carry the "few seats"
// badge: some seats remain, but fewer than the threshold.
func (e Event) FewSeatsLeft() bool {
	left := e.SeatsLeft()
	return left > 0 && left < FewSeatsThreshold
}

// HasCapacity reports whether the event can still accept registrations.
func (e Event) HasCapacity() bool {
	return e.Registered < e.Capacity
}
