package core

import "errors"

// ErrInsufficientData is returned when too few rows remain for a statistic
var ErrInsufficientData = errors.New("insufficient data for analysis")
