package service

import "errors"

var (
	ErrInvalidTicketCount = errors.New("invalid ticket count")
	ErrInvalidPeriod      = errors.New("invalid period, expected YYYY-MM")
	ErrAlreadyDrawn       = errors.New("winner already drawn for period")
	ErrNoEntries          = errors.New("no raffle entries for period")
	ErrNotClaimable       = errors.New("prize not claimable")
)
