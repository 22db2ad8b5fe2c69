package movies

import "time"

type Movie struct {
	ID             int64     `json:"id" dynamodbav:"id"`
	Title          string    `json:"title" dynamodbav:"title"`
	Year           int       `json:"year" dynamodbav:"year"`
	Length         int       `json:"length" dynamodbav:"length"` // runtime in minutes
	Director       string    `json:"director" dynamodbav:"director"`
	Description    string    `json:"description" dynamodbav:"description"`
	PosterURL      string    `json:"posterUrl" dynamodbav:"posterUrl"`
	Category       string    `json:"category" dynamodbav:"category"`
	Discount       bool      `json:"discount" dynamodbav:"discount"`
	FemaleDirector bool      `json:"femaleDirector" dynamodbav:"femaleDirector"`
	CreatedAt      time.Time `json:"-" dynamodbav:"createdAt"` // maintained by the store
	UpdatedAt      time.Time `json:"-" dynamodbav:"updatedAt"` // maintained by the store
}
