package app

//go:generate mockgen -source app.go -destination mocks/app.go

// ItemEventListener receives what a DataProvider produces for its subscribed items.
type ItemEventListener interface {
	// Update delivers fields for itemName. isSnapshot is false for live updates.
	Update(itemName string, fields map[string]string, isSnapshot bool) error

	// Failure reports an error that stopped the provider from serving an item.
	Failure(err error)
}

// DataProvider is a data adapter driven by the proxy through Subscribe and Unsubscribe calls.
type DataProvider interface {
	// Initialize receives opaque configuration before any other call.
	Initialize(parameters map[string]string, configFile string) error

	// SetListener sets the listener updates are delivered to. Must be called before Subscribe.
	SetListener(listener ItemEventListener)

	Subscribe(itemName string) error

	// Unsubscribe stops serving itemName and returns once no more updates for it can be delivered.
	Unsubscribe(itemName string) error

	IsSnapshotAvailable(itemName string) bool
}

// TaskRunner runs tasks concurrently, such as an ants.Pool.
type TaskRunner interface {
	Submit(task func()) error
}
