package entity

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrJobNotFound  = errors.New("dispatch job not found")
)
