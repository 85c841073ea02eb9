package console

import (
	"github.com/shoestackclub/shoestack/internal/store"
)

// Badge is the rendered form of a shipment status.
type Badge struct {
	Text  string
	Class string
}

// StatusBadge maps a shipment status to its badge. An empty status
// renders as "No shipment".
func StatusBadge(status string) Badge {
	if status == "" {
		status = "No shipment"
	}
	cls := "bg-secondary"
	switch status {
	case store.ShipmentPending:
		cls = "bg-warning text-dark"
	case store.ShipmentInTransit:
		cls = "bg-primary"
	case store.ShipmentDelivered:
		cls = "bg-success"
	}
	return Badge{Text: status, Class: "badge " + cls}
}

// statusRank orders rows for the status sort toggles. Unknown and
// absent statuses always sort last.
func statusRank(status string) int {
	switch status {
	case store.ShipmentPending:
		return 1
	case store.ShipmentInTransit:
		return 2
	case store.ShipmentDelivered:
		return 3
	}
	return 99
}
