package config

import "errors"

var errMissingJWTSecret = errors.New("config: JWT_SECRET is required in release mode")
