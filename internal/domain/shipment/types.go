package shipment

type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusReturned  Status = "returned"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusReturned, StatusFailed:
		return true
	default:
		return false
	}
}
