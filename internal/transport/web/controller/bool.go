package controller

// Bool string constants for query parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)
