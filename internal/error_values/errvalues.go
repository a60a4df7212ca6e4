package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenNotFound    = errors.New("refresh token doesn't exists")
	ErrSampleNotFound   = errors.New("heart sample doesn't exists")
	ErrRecordNotFound   = errors.New("daily calorie record doesn't exists")
	ErrDeviceNotWorn    = errors.New("device is not worn")
)
