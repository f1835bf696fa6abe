package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidSponsorID = errors.New("invalid sponsor id format")
	ErrInvalidPeriod    = errors.New("invalid payment period")
	ErrAlreadyConfirmed = errors.New("payment already confirmed")
)
