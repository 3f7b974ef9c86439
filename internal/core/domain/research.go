package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrResearchNotFound = errors.New("research not found")
	ErrInvalidFilter    = errors.New("invalid filter")
)

// Research is a published paper or dataset in the catalog.
type Research struct {
	ID         string    `json:"id" bson:"_id" yaml:"id"`
	Title      string    `json:"title" bson:"title" yaml:"title"`
	Abstract   string    `json:"abstract" bson:"abstract" yaml:"abstract"`
	Tags       []string  `json:"tags" bson:"tags" yaml:"tags"`
	Field      string    `json:"field" bson:"field" yaml:"field"`
	Author     Identity  `json:"author" bson:"author" yaml:"author"`
	UploadDate time.Time `json:"uploadDate" bson:"upload_date" yaml:"uploadDate"`
	IsPremium  bool      `json:"isPremium" bson:"is_premium" yaml:"isPremium"`
	Price      float64   `json:"price" bson:"price" yaml:"price"`
	Views      int       `json:"views" bson:"views" yaml:"views"`
	Downloads  int       `json:"downloads" bson:"downloads" yaml:"downloads"`
	CoverImage string    `json:"coverImage,omitempty" bson:"cover_image,omitempty" yaml:"coverImage,omitempty"`
}

// HasTag reports whether tag is one of the record's tags (exact match).
func (r Research) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DateOrder selects how filtered results are ordered by upload date.
type DateOrder string

const (
	DateUnordered DateOrder = ""
	DateNewest    DateOrder = "newest"
	DateOldest    DateOrder = "oldest"
)

// ParseDateOrder accepts "", "newest" or "oldest".
func ParseDateOrder(s string) (DateOrder, error) {
	switch d := DateOrder(s); d {
	case DateUnordered, DateNewest, DateOldest:
		return d, nil
	}
	return "", fmt.Errorf("%w: date must be newest or oldest, got %q", ErrInvalidFilter, s)
}

// Filter is the criteria a caller applies to the catalog. Zero values mean
// "no constraint"; Premium is a pointer so that false is a real constraint.
type Filter struct {
	Search  string
	Field   string
	Tags    []string
	Date    DateOrder
	Premium *bool
}

// Facets are the values a caller can filter on.
type Facets struct {
	Fields []string `json:"fields"`
	Tags   []string `json:"tags"`
}
