package handlers

const (
	apiVersion = "1.0.0"

	// Storage backend that keeps nothing
	storageBackendNone = "none"
)
