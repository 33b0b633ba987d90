package model

import "time"

// DateLayout renders dates as DD/MM/YYYY.
const DateLayout = "02/01/2006"

// Recipe is owned by its creator; CreatorID and CreatedAt never change after insert.
type Recipe struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatorID   string    `json:"-" gorm:"type:varchar(36);not null;index:idx_recipe_creator"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"-" gorm:"not null;index:idx_recipe_created_at"`
}

func (Recipe) TableName() string { return "recipe" }

// PublicRecipe hides the creator id.
type PublicRecipe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// ToPublic formats the recipe for clients.
func (r *Recipe) ToPublic() PublicRecipe {
	return PublicRecipe{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.Format(DateLayout),
	}
}

// FeedRecipe is a recipe joined with its author's name.
type FeedRecipe struct {
	ID          string
	CreatorID   string
	Title       string
	Description string
	CreatedAt   time.Time
	UserName    string
}

// FeedItem is the wire shape of a feed entry.
type FeedItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
}

// ToItem formats a feed row for clients.
func (f *FeedRecipe) ToItem() FeedItem {
	return FeedItem{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		CreatedAt:   f.CreatedAt.Format(DateLayout),
		UserID:      f.CreatorID,
		UserName:    f.UserName,
	}
}
