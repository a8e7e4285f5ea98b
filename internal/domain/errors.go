package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrThemeAlreadyExists = errors.New("theme already exists")
	ErrUnknownTheme       = errors.New("unknown theme")
	ErrUnknownShow        = errors.New("unknown astronomy show")
	ErrUnknownDome        = errors.New("unknown planetarium dome")
	ErrSeatAlreadyTaken   = errors.New("seat is already taken")
	ErrInvalidSeat        = errors.New("row or seat is out of the dome's range")
	ErrNotAnImage         = errors.New("payload is not a valid image")
)
