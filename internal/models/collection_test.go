package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateListRequestValidate(t *testing.T) {
	assert.NoError(t, CreateListRequest{Title: "Antiquity", Kind: ListEditorial}.Validate())
	assert.Error(t, CreateListRequest{Title: " ", Kind: ListPersonal}.Validate())
	assert.Error(t, CreateListRequest{Title: "Antiquity", Kind: "shared"}.Validate())
	assert.Error(t, CreateListRequest{
		Title:       "Antiquity",
		Kind:        ListPersonal,
		Description: strings.Repeat("a", MaxDescriptionLength+1),
	}.Validate())
}

func TestCreateItemRequestValidate(t *testing.T) {
	assert.NoError(t, CreateItemRequest{Title: "Roman Coin"}.Validate())
	assert.Error(t, CreateItemRequest{Category: "Numismatics"}.Validate())
	assert.Error(t, CreateItemRequest{Title: strings.Repeat("t", MaxTitleLength+1)}.Validate())
}

func TestUpdateDescriptionRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateDescriptionRequest{}.Validate())
	assert.Error(t, UpdateDescriptionRequest{Description: strings.Repeat("d", MaxDescriptionLength+1)}.Validate())
}
