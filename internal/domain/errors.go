package domain

import "errors"

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrBrandNotFound      = errors.New("brand not found")
	ErrComparisonNotFound = errors.New("comparison not found")
)
