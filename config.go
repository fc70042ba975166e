package appconfig

import (
	"time"
)

const (
	// Number of seconds to wait for a request to the configuration
	// source to complete before terminating the request.
	DefaultTimeout = 10 * time.Second

	// Default base URL of the local AppConfig agent.
	DefaultAgentURL = "http://localhost:2772"
)
