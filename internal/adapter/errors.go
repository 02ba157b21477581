package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrInternalServerError  = errors.New("internal server error")
	ErrBadGateway           = errors.New("bad gateway")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrUnsuccessfulResponse = errors.New("service reported an unsuccessful response")
	ErrEmptyAddress         = errors.New("empty address")
)
