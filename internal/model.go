package internal

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
