package model

const (
	EntityName = "contact"

	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

// Counts tallies inquiries per status.
type Counts struct {
	New     int `json:"new"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}

func Count(contacts []Contact) Counts {
	var counts Counts

	for _, contact := range contacts {
		switch contact.Status {
		case StatusNew:
			counts.New++
		case StatusRead:
			counts.Read++
		case StatusReplied:
			counts.Replied++
		}
	}

	return counts
}
