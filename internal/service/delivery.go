package service

import "time"

// deliveryDateLayout is the ISO date stored on delivery orders.
const deliveryDateLayout = "2006-01-02"

// nextFriday returns the next Friday on or after the given day. Deliveries go
// out once a week; an order placed on a Friday ships the same day.
func nextFriday(today time.Time) time.Time {
	daysAhead := (int(time.Friday) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, daysAhead)
}
