package services

import (
	"database/sql"

	"github.com/fitzone/fitzone-be/internal/models"
)

// ContentServiceProvider defines the interface for reference-content listings.
type ContentServiceProvider interface {
	GetAllWorkouts() ([]models.WorkoutPlan, error)
	GetAllRecipes() ([]models.Recipe, error)
	GetBlogPosts() ([]models.BlogPost, error)
}

// ContentService lists the read-only reference content (workout plans,
// recipes, blog posts). Content is populated by Seed or out-of-band; the
// application never writes it.
type ContentService struct {
	db *sql.DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *sql.DB) *ContentService {
	return &ContentService{db: db}
}

// GetAllWorkouts retrieves all workout plans in storage order.
func (s *ContentService) GetAllWorkouts() ([]models.WorkoutPlan, error) {
	rows, err := s.db.Query("SELECT id, title, level, description FROM workouts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.WorkoutPlan
	for rows.Next() {
		var plan models.WorkoutPlan
		var level, desc sql.NullString
		if err := rows.Scan(&plan.ID, &plan.Title, &level, &desc); err != nil {
			return nil, err
		}
		plan.Level = level.String
		plan.Description = desc.String
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// GetAllRecipes retrieves all recipes in storage order.
func (s *ContentService) GetAllRecipes() ([]models.Recipe, error) {
	rows, err := s.db.Query("SELECT id, title, calories, description FROM recipes")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var recipe models.Recipe
		var calories sql.NullInt64
		var desc sql.NullString
		if err := rows.Scan(&recipe.ID, &recipe.Title, &calories, &desc); err != nil {
			return nil, err
		}
		recipe.Calories = int(calories.Int64)
		recipe.Description = desc.String
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

// GetBlogPosts retrieves all blog posts, newest first.
func (s *ContentService) GetBlogPosts() ([]models.BlogPost, error) {
	rows, err := s.db.Query("SELECT id, title, author, body, created_at FROM blog ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		var post models.BlogPost
		var author, body sql.NullString
		if err := rows.Scan(&post.ID, &post.Title, &author, &body, &post.CreatedAt); err != nil {
			return nil, err
		}
		post.Author = author.String
		post.Body = body.String
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
