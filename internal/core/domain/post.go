package domain

import "time"

// Category is the fixed set of values a post may be filed under.
type Category string

const (
	CategoryGeneral       Category = "General"
	CategoryTechnology    Category = "Technology"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryTravel        Category = "Travel"
	CategoryFood          Category = "Food"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryBusiness      Category = "Business"
	CategoryEntertainment Category = "Entertainment"
	CategoryTutorial      Category = "Tutorial"
	CategorySports        Category = "Sports"
)

var categories = []Category{
	CategoryGeneral,
	CategoryTechnology,
	CategoryLifestyle,
	CategoryTravel,
	CategoryFood,
	CategoryHealth,
	CategoryEducation,
	CategoryBusiness,
	CategoryEntertainment,
	CategoryTutorial,
	CategorySports,
}

// Categories returns every assignable category value.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Field constraints on a Post.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMinLen = 10

	// MaxImageBytes caps the encoded (base64) image payload.
	MaxImageBytes = 10 * 1024 * 1024
)

// Post is the core aggregate. Author and AuthorName are stamped from the
// acting user at creation time and never change afterwards; AuthorName is a
// deliberate denormalized snapshot and does not track the user record.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	AuthorID    string    `json:"author"`
	AuthorName  string    `json:"author_name"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
