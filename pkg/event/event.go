package event

import (
	"time"
)

// Category partitions events into two independent logical collections
// sharing the same schema.
type Category string

const (
	CategoryExam        Category = "exam"
	CategoryReplacement Category = "replacement"
)

// EnvType tells which kind of chat the creating command ran in.
type EnvType string

const (
	EnvUser  EnvType = "user"
	EnvGroup EnvType = "group"
)

type Event struct {
	ID        string
	Name      string
	Date      time.Time
	Category  Category
	EnvType   EnvType
	CreatedBy string
	GroupID   string
	CreatedAt time.Time
}

// Filter selects events of one category visible from one chat scope.
// For EnvUser the CreatedBy field is matched, for EnvGroup the GroupID field.
type Filter struct {
	Category  Category
	EnvType   EnvType
	CreatedBy string
	GroupID   string
}
