package service

import "errors"

// ErrInvalidRequest marks validation failures caught before any store
// mutation. Not-found conditions use the sentinels in the domain package.
var ErrInvalidRequest = errors.New("invalid request")
