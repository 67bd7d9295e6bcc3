package game

import "errors"

var (
	ErrTurnOver        = errors.New("this turn is over")
	ErrWordClaimed     = errors.New("word was already played by the computer on this hand")
	ErrTurnInProgress  = errors.New("a turn is still in progress")
	ErrNoReplay        = errors.New("this hand has already been replayed")
	ErrComputerPlayed  = errors.New("the computer has already played this hand")
	ErrHandInPlay      = errors.New("the hand can no longer be substituted")
	ErrSeriesOver      = errors.New("every hand of the series has been dealt")
	ErrInvalidNumHands = errors.New("a series needs at least one hand")
)
