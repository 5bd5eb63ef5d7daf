package interfaces

// Server interface defines the methods for a server implementation.
type Server interface {
	ListenAndServe() error
	Shutdown() error
}
