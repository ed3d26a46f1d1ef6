package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/auth"
	"github.com/rpupo63/portfolio-site-backend/models"
)

func strPtr(s string) *string { return &s }

// Seed loads the development data set: a demo user, an admin, a handful of
// showcase projects and the skills list. Intended to run once against a
// freshly recreated schema.
func Seed(ctx context.Context, db *gorm.DB) error {
	hash, err := auth.HashPassword("123")
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		demo := models.User{Username: "testuser", Email: "test@example.com", PasswordHash: hash}
		if err := tx.Create(&demo).Error; err != nil {
			return err
		}

		admin := models.User{Username: "admin", Email: "admin@example.com", PasswordHash: hash, IsAdmin: true}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		projects := []models.Project{
			{
				Title:       "Portfolio Website",
				Description: "A personal portfolio website built with Go and PostgreSQL. Features include project showcase, skills display, and contact form.",
				ImageURL:    strPtr("https://raw.githubusercontent.com/github/explore/80688e429a7d4ef2fca1e82350fe8e3517d3494d/topics/go/go.png"),
				GithubURL:   strPtr("https://github.com/username/portfolio"),
				UserID:      demo.ID,
			},
			{
				Title:       "E-commerce Platform",
				Description: "Full-stack e-commerce platform built with Python and React. Includes user authentication, product management, and payment integration.",
				ImageURL:    strPtr("https://raw.githubusercontent.com/github/explore/80688e429a7d4ef2fca1e82350fe8e3517d3494d/topics/react/react.png"),
				GithubURL:   strPtr("https://github.com/username/ecommerce"),
				UserID:      demo.ID,
			},
			{
				Title:       "Task Management System",
				Description: "A collaborative task management system with real-time updates using WebSocket. Built with Flask and Vue.js.",
				ImageURL:    strPtr("https://raw.githubusercontent.com/github/explore/80688e429a7d4ef2fca1e82350fe8e3517d3494d/topics/vue/vue.png"),
				GithubURL:   strPtr("https://github.com/username/taskmanager"),
				UserID:      demo.ID,
			},
			{
				Title:       "Weather Dashboard",
				Description: "Real-time weather dashboard using OpenWeatherMap API. Features include location search, 5-day forecast, and weather alerts.",
				ImageURL:    strPtr("https://openweathermap.org/themes/openweathermap/assets/img/logo_white_cropped.png"),
				GithubURL:   strPtr("https://github.com/username/weather-dashboard"),
				UserID:      demo.ID,
			},
		}
		if err := tx.Create(&projects).Error; err != nil {
			return err
		}

		skills := []models.Skill{
			{Name: "Go", Category: "Programming Languages", Proficiency: 5},
			{Name: "JavaScript", Category: "Programming Languages", Proficiency: 4},
			{Name: "Java", Category: "Programming Languages", Proficiency: 4},
			{Name: "SQL", Category: "Programming Languages", Proficiency: 4},
			{Name: "Flask", Category: "Frameworks", Proficiency: 5},
			{Name: "Django", Category: "Frameworks", Proficiency: 4},
			{Name: "React", Category: "Frameworks", Proficiency: 4},
			{Name: "Vue.js", Category: "Frameworks", Proficiency: 3},
			{Name: "PostgreSQL", Category: "Databases", Proficiency: 4},
			{Name: "MongoDB", Category: "Databases", Proficiency: 3},
			{Name: "Redis", Category: "Databases", Proficiency: 3},
			{Name: "Docker", Category: "DevOps", Proficiency: 4},
			{Name: "Git", Category: "DevOps", Proficiency: 5},
			{Name: "CI/CD", Category: "DevOps", Proficiency: 3},
			{Name: "AWS", Category: "DevOps", Proficiency: 3},
		}
		if err := tx.Create(&skills).Error; err != nil {
			return err
		}

		comment := models.Comment{
			Content:   "Great project, the contact form works nicely.",
			UserID:    admin.ID,
			ProjectID: projects[0].ID,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		like := models.Like{UserID: admin.ID, ProjectID: projects[0].ID}
		return tx.Create(&like).Error
	})
}
