package models

import "time"

// WorkoutPlan is read-only reference content listed on the workouts page.
type WorkoutPlan struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// Recipe is read-only reference content listed on the nutrition page.
type Recipe struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
}

// BlogPost is read-only reference content listed on the blog page.
type BlogPost struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
