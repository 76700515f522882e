package matching

// OrderResult is the outcome of processing a single submission event.
// For synchronous (market) submissions it is delivered to the waiting caller,
// for asynchronous (limit) submissions it is only cached for duplicate
// redeliveries.
type OrderResult struct {
	OrderID uint64
	Success bool
	Message string
}
