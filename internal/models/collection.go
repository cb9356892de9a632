package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ListKind string

const (
	// Личный список пользователя
	ListPersonal ListKind = "personal"
	// Редакционная подборка, собранная администратором
	ListEditorial ListKind = "editorial"
)

func (k ListKind) Valid() bool {
	return k == ListPersonal || k == ListEditorial
}

type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type List struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Kind        ListKind  `json:"kind" db:"kind"`
	Description string    `json:"description" db:"description"`
	Items       []Item    `json:"items" db:"-"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 3000
)

type CreateItemRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (r CreateItemRequest) Validate() error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	return validateDescription(r.Description)
}

type CreateListRequest struct {
	Title       string      `json:"title"`
	Kind        ListKind    `json:"kind"`
	Description string      `json:"description"`
	ItemIDs     []uuid.UUID `json:"itemIds"`
}

func (r CreateListRequest) Validate() error {
	if err := validateTitle(r.Title); err != nil {
		return err
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("invalid list kind %q, allowed values: %s, %s", r.Kind, ListPersonal, ListEditorial)
	}
	return validateDescription(r.Description)
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

func (r UpdateDescriptionRequest) Validate() error {
	return validateDescription(r.Description)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title cannot be longer than %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description cannot be longer than %d characters", MaxDescriptionLength)
	}
	return nil
}
