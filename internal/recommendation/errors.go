package recommendation

import "errors"

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrNoRecommendation       = errors.New("no recommendation yet")
	ErrAlreadyResolved        = errors.New("recommendation already accepted or dismissed")
	ErrInvalidStatus          = errors.New("invalid recommendation status")
	ErrInvalidRetention       = errors.New("retention must be positive")
	ErrNoPlanningData         = errors.New("no processed document with planning data")
)
