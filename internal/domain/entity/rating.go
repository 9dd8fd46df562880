package entity

import "math"

const (
	MinRating = 1
	MaxRating = 10
)

// RatingAggregate is the denormalised rating summary stored on an item.
type RatingAggregate struct {
	AverageRating  float64 `json:"average_rating"`
	ReviewCount    int     `json:"review_count"`
	TotalRatingSum int     `json:"total_rating_sum"`
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

func RoundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

// Apply folds one submission into the aggregate. A first review adds the
// rating and one to the count; a re-submission adds only the difference from
// the prior rating.
func (a RatingAggregate) Apply(prior *Review, rating int) RatingAggregate {
	ratingDelta := rating
	countDelta := 1
	if prior != nil {
		ratingDelta = rating - prior.Rating
		countDelta = 0
	}

	next := RatingAggregate{
		TotalRatingSum: a.TotalRatingSum + ratingDelta,
		ReviewCount:    a.ReviewCount + countDelta,
	}
	if next.ReviewCount > 0 {
		next.AverageRating = RoundRating(float64(next.TotalRatingSum) / float64(next.ReviewCount))
	}
	return next
}

// Average returns nil while the item has no reviews.
func (a RatingAggregate) Average() *float64 {
	if a.ReviewCount <= 0 {
		return nil
	}
	avg := RoundRating(float64(a.TotalRatingSum) / float64(a.ReviewCount))
	return &avg
}
