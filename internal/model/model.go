package model

import (
	"strconv"
	"time"
)

// Appointment status values. The store rewrites status unconditionally;
// which transitions are offered for a given status is up to the callers.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	UserPhone string    `json:"userPhone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Barber    string    `json:"barber"`
	Service   string    `json:"service"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewID returns a timestamp-derived identifier. Uniqueness relies on the
// clock, not on randomness.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
