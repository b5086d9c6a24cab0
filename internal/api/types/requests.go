package types

import "time"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Headline *string `json:"headline"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
	Website  *string `json:"website" validate:"omitempty,url"`
}

type PortfolioUpdateRequest struct {
	Slug           *string `json:"slug"`
	IsPublished    *bool   `json:"is_published"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
}

type ExperienceRequest struct {
	Company     string     `json:"company" validate:"required"`
	Position    string     `json:"position" validate:"required"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationRequest struct {
	School      string `json:"school" validate:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year" validate:"omitempty,gte=1900,lte=2100"`
	EndYear     int    `json:"end_year" validate:"omitempty,gte=1900,lte=2100"`
	Description string `json:"description"`
}

type ProjectRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	URL          string `json:"url" validate:"omitempty,url"`
	RepoURL      string `json:"repo_url" validate:"omitempty,url"`
	Image        string `json:"image"`
	Technologies string `json:"technologies"`
	Order        int    `json:"order"`
}

type SkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

type SocialLinkRequest struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}
