package domain

import "time"

type Tag struct {
	ID        int64
	Label     string
	CreatedAt time.Time
}
