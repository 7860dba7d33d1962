package domain

import "errors"

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageRouteNotFound        = "route not found"
	MessagePong                 = "pong"

	ErrRouteNotFound = errors.New("route not found")
)
