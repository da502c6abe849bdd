package exporters

import (
	"time"

	"github.com/samvad-hq/restcountries-go/pkg/restcountries"
)

// Event is the payload exported for each country returned by a lookup.
type Event struct {
	Operation  string                `json:"operation"`
	URL        string                `json:"url"`
	Country    restcountries.Country `json:"country"`
	ExportedAt time.Time             `json:"exported_at"`
}

// NewEvent constructs an Event for one country of a lookup.
func NewEvent(operation, url string, country restcountries.Country) Event {
	return Event{
		Operation:  operation,
		URL:        url,
		Country:    country,
		ExportedAt: time.Now().UTC(),
	}
}

// attributes are the routing attributes attached to queue and topic messages.
func (e Event) attributes() map[string]string {
	attrs := map[string]string{"operation": e.Operation}
	if e.Country.Alpha3Code != "" {
		attrs["alpha3_code"] = e.Country.Alpha3Code
	}
	return attrs
}
