package model

import (
	"maps"
	"slices"
	"time"
)

// Item categories.
const (
	CategoryTools   = "Tools"
	CategoryGarden  = "Garden"
	CategoryKitchen = "Kitchen"
	CategoryRepairs = "Repairs"
)

// Item is a tool or piece of equipment offered for hire.
type Item struct {
	ID                    int64             `json:"id"`
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	Category              string            `json:"category"`
	Image                 string            `json:"image"`
	AdditionalImages      []string          `json:"additionalImages"`
	Specifications        map[string]string `json:"specifications"`
	SuitableTasks         []string          `json:"suitableTasks"`
	Suitability           []string          `json:"suitability"`
	MaxHireDuration       int               `json:"maxHireDuration"`
	MaxHireQuantity       int               `json:"maxHireQuantity"`
	CareInstructions      *string           `json:"careInstructions"`
	TrainingRequired      *string           `json:"trainingRequired"`
	ExpertSupportRequired *string           `json:"expertSupportRequired"`
	SafetyInstructions    *string           `json:"safetyInstructions"`
	PricePerDay           int               `json:"pricePerDay"`
	PricePerWeek          *int              `json:"pricePerWeek"`
	OwnerID               int64             `json:"ownerId"`
	Rating                *int              `json:"rating"`
	Available             bool              `json:"available"`
	CreatedAt             time.Time         `json:"createdAt"`
}

// Clone returns a copy of the item that shares no slices, maps or pointers
// with the receiver.
func (i Item) Clone() Item {
	i.AdditionalImages = slices.Clone(i.AdditionalImages)
	i.Specifications = maps.Clone(i.Specifications)
	i.SuitableTasks = slices.Clone(i.SuitableTasks)
	i.Suitability = slices.Clone(i.Suitability)
	i.CareInstructions = clonePtr(i.CareInstructions)
	i.TrainingRequired = clonePtr(i.TrainingRequired)
	i.ExpertSupportRequired = clonePtr(i.ExpertSupportRequired)
	i.SafetyInstructions = clonePtr(i.SafetyInstructions)
	i.PricePerWeek = clonePtr(i.PricePerWeek)
	i.Rating = clonePtr(i.Rating)
	return i
}

// NewItem holds the caller-supplied fields of an item.
type NewItem struct {
	Name                  string            `json:"name" yaml:"name" validate:"required"`
	Description           string            `json:"description" yaml:"description" validate:"required"`
	Category              string            `json:"category" yaml:"category" validate:"required,oneof=Tools Garden Kitchen Repairs"`
	Image                 string            `json:"image" yaml:"image" validate:"required"`
	AdditionalImages      []string          `json:"additionalImages" yaml:"additionalImages"`
	Specifications        map[string]string `json:"specifications" yaml:"specifications"`
	SuitableTasks         []string          `json:"suitableTasks" yaml:"suitableTasks"`
	Suitability           []string          `json:"suitability" yaml:"suitability"`
	MaxHireDuration       *int              `json:"maxHireDuration" yaml:"maxHireDuration" validate:"required,gte=0"`
	MaxHireQuantity       *int              `json:"maxHireQuantity" yaml:"maxHireQuantity" validate:"required,gte=0"`
	CareInstructions      *string           `json:"careInstructions" yaml:"careInstructions"`
	TrainingRequired      *string           `json:"trainingRequired" yaml:"trainingRequired"`
	ExpertSupportRequired *string           `json:"expertSupportRequired" yaml:"expertSupportRequired"`
	SafetyInstructions    *string           `json:"safetyInstructions" yaml:"safetyInstructions"`
	PricePerDay           *int              `json:"pricePerDay" yaml:"pricePerDay" validate:"required,gte=0"`
	PricePerWeek          *int              `json:"pricePerWeek" yaml:"pricePerWeek" validate:"omitempty,gte=0"`
	OwnerID               int64             `json:"ownerId" yaml:"ownerId" validate:"required,gt=0"`
	Rating                *int              `json:"rating" yaml:"rating"`
	Available             *bool             `json:"available" yaml:"available"`
}

// Item builds the stored form of n. Available defaults to true.
func (n NewItem) Item(id int64, createdAt time.Time) Item {
	available := true
	if n.Available != nil {
		available = *n.Available
	}
	return Item{
		ID:                    id,
		Name:                  n.Name,
		Description:           n.Description,
		Category:              n.Category,
		Image:                 n.Image,
		AdditionalImages:      n.AdditionalImages,
		Specifications:        n.Specifications,
		SuitableTasks:         n.SuitableTasks,
		Suitability:           n.Suitability,
		MaxHireDuration:       value(n.MaxHireDuration),
		MaxHireQuantity:       value(n.MaxHireQuantity),
		CareInstructions:      n.CareInstructions,
		TrainingRequired:      n.TrainingRequired,
		ExpertSupportRequired: n.ExpertSupportRequired,
		SafetyInstructions:    n.SafetyInstructions,
		PricePerDay:           value(n.PricePerDay),
		PricePerWeek:          n.PricePerWeek,
		OwnerID:               n.OwnerID,
		Rating:                n.Rating,
		Available:             available,
		CreatedAt:             createdAt,
	}.Clone()
}

// ItemPatch is a partial item update. Nil fields are left unchanged. The
// Nullable fields can also be cleared with an explicit null.
type ItemPatch struct {
	Name                  *string            `json:"name" validate:"omitempty,min=1"`
	Description           *string            `json:"description"`
	Category              *string            `json:"category" validate:"omitempty,oneof=Tools Garden Kitchen Repairs"`
	Image                 *string            `json:"image"`
	AdditionalImages      *[]string          `json:"additionalImages"`
	Specifications        *map[string]string `json:"specifications"`
	SuitableTasks         *[]string          `json:"suitableTasks"`
	Suitability           *[]string          `json:"suitability"`
	MaxHireDuration       *int               `json:"maxHireDuration" validate:"omitempty,gte=0"`
	MaxHireQuantity       *int               `json:"maxHireQuantity" validate:"omitempty,gte=0"`
	CareInstructions      Nullable[string]   `json:"careInstructions"`
	TrainingRequired      Nullable[string]   `json:"trainingRequired"`
	ExpertSupportRequired Nullable[string]   `json:"expertSupportRequired"`
	SafetyInstructions    Nullable[string]   `json:"safetyInstructions"`
	PricePerDay           *int               `json:"pricePerDay" validate:"omitempty,gte=0"`
	PricePerWeek          Nullable[int]      `json:"pricePerWeek" validate:"omitempty,gte=0"`
	OwnerID               *int64             `json:"ownerId" validate:"omitempty,gt=0"`
	Rating                Nullable[int]      `json:"rating"`
	Available             *bool              `json:"available"`
}

// Apply merges the set fields of p over item. ID and CreatedAt are never touched.
func (p ItemPatch) Apply(item *Item) {
	set(&item.Name, p.Name)
	set(&item.Description, p.Description)
	set(&item.Category, p.Category)
	set(&item.Image, p.Image)
	if p.AdditionalImages != nil {
		item.AdditionalImages = slices.Clone(*p.AdditionalImages)
	}
	if p.Specifications != nil {
		item.Specifications = maps.Clone(*p.Specifications)
	}
	if p.SuitableTasks != nil {
		item.SuitableTasks = slices.Clone(*p.SuitableTasks)
	}
	if p.Suitability != nil {
		item.Suitability = slices.Clone(*p.Suitability)
	}
	set(&item.MaxHireDuration, p.MaxHireDuration)
	set(&item.MaxHireQuantity, p.MaxHireQuantity)
	setNullable(&item.CareInstructions, p.CareInstructions)
	setNullable(&item.TrainingRequired, p.TrainingRequired)
	setNullable(&item.ExpertSupportRequired, p.ExpertSupportRequired)
	setNullable(&item.SafetyInstructions, p.SafetyInstructions)
	set(&item.PricePerDay, p.PricePerDay)
	setNullable(&item.PricePerWeek, p.PricePerWeek)
	set(&item.OwnerID, p.OwnerID)
	setNullable(&item.Rating, p.Rating)
	set(&item.Available, p.Available)
}
