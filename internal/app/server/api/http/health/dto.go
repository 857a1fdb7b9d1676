package health

// Input represents the input for health check endpoint
type Input struct{}

const StatusOK = "OK"
