package note

import "time"

type Note struct {
	ID        string
	Title     string
	Content   string
	UserEmail string
	CreatedAt time.Time
	UpdatedAt time.Time
}
