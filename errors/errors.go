package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrInvalidPayload     = fmt.Errorf("invalid event payload")
	ErrInvalidCredentials = fmt.Errorf("invalid service account credentials")
	ErrLoginFailed        = fmt.Errorf("backend login failed")
	ErrMissingToken       = fmt.Errorf("backend login returned no token")
	ErrUnauthorized       = fmt.Errorf("backend denied authorization")
	ErrBackendStatus      = fmt.Errorf("backend returned an unexpected status")
	ErrThreadNotFound     = fmt.Errorf("conversation thread not found")
	ErrBotNotReady        = fmt.Errorf("chat platform session is not ready")
)
