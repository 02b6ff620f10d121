package entities

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

func OrderStatuses() []Status {
	return []Status{
		StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transitions are allowed,
// refunds are tracked through PaymentStatus.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusConfirmed: true, StatusProcessing: true, StatusShipped: true, StatusCancelled: true},
	StatusConfirmed:  {StatusProcessing: true, StatusShipped: true, StatusCancelled: true},
	StatusProcessing: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:    {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:  {StatusRefunded: true},
	StatusCancelled:  {StatusRefunded: true},
	StatusRefunded:   {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentPaid              PaymentStatus = "paid"
	PaymentFailed            PaymentStatus = "failed"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
)

func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentPending, PaymentPaid, PaymentFailed,
		PaymentRefunded, PaymentPartiallyRefunded,
	}
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded, PaymentPartiallyRefunded:
		return true
	}
	return false
}

// NotificationEvent names the outbound notification triggered by an order operation.
type NotificationEvent string

const (
	EventConfirmation     NotificationEvent = "confirmation"
	EventShipped          NotificationEvent = "shipped"
	EventDelivered        NotificationEvent = "delivered"
	EventCancelled        NotificationEvent = "cancelled"
	EventPaymentConfirmed NotificationEvent = "payment_confirmed"
)
