package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyText         = errors.New("comment text cannot be empty")
	ErrBeforeParentFloor = errors.New("comment cannot precede its user, product or delivery")
)

// Comment is a post-delivery product review. The floor passed to the
// constructor is max(user registration, product registration, delivery time).
type Comment struct {
	id           uuid.UUID
	userID       uuid.UUID
	productID    uuid.UUID
	rating       int
	text         string
	registeredAt time.Time
}

func NewComment(userID, productID uuid.UUID, rating int, text string, floor, registeredAt time.Time) (*Comment, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if registeredAt.Before(floor) {
		return nil, ErrBeforeParentFloor
	}
	return &Comment{
		id:           uuid.New(),
		userID:       userID,
		productID:    productID,
		rating:       rating,
		text:         text,
		registeredAt: registeredAt,
	}, nil
}

func ReconstructComment(id, userID, productID uuid.UUID, rating int, text string, registeredAt time.Time) *Comment {
	return &Comment{
		id:           id,
		userID:       userID,
		productID:    productID,
		rating:       rating,
		text:         text,
		registeredAt: registeredAt,
	}
}

func (c *Comment) ID() uuid.UUID { return c.id }
func (c *Comment) UserID() uuid.UUID { return c.userID }
func (c *Comment) ProductID() uuid.UUID { return c.productID }
func (c *Comment) Rating() int { return c.rating }
func (c *Comment) Text() string { return c.text }
func (c *Comment) RegisteredAt() time.Time { return c.registeredAt }
