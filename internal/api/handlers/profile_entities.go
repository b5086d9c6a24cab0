package handlers

import (
	"github.com/google/uuid"

	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/models"
	"github.com/folioforge/engine/internal/repository"
)

// Concrete handlers for the five profile list entities.

func NewExperienceHandler(repo repository.OwnedRepository[models.Experience]) *OwnedHandler[models.Experience, types.ExperienceRequest] {
	return NewOwnedHandler(repo, func(userID uuid.UUID, req *types.ExperienceRequest, m *models.Experience) {
		m.UserID = userID
		m.Company = req.Company
		m.Position = req.Position
		m.StartDate = req.StartDate
		m.EndDate = req.EndDate
		m.Current = req.Current
		m.Description = req.Description
	})
}

func NewEducationHandler(repo repository.OwnedRepository[models.Education]) *OwnedHandler[models.Education, types.EducationRequest] {
	return NewOwnedHandler(repo, func(userID uuid.UUID, req *types.EducationRequest, m *models.Education) {
		m.UserID = userID
		m.School = req.School
		m.Degree = req.Degree
		m.Field = req.Field
		m.StartYear = req.StartYear
		m.EndYear = req.EndYear
		m.Description = req.Description
	})
}

func NewProjectHandler(repo repository.OwnedRepository[models.Project]) *OwnedHandler[models.Project, types.ProjectRequest] {
	return NewOwnedHandler(repo, func(userID uuid.UUID, req *types.ProjectRequest, m *models.Project) {
		m.UserID = userID
		m.Title = req.Title
		m.Description = req.Description
		m.URL = req.URL
		m.RepoURL = req.RepoURL
		m.Image = req.Image
		m.Technologies = req.Technologies
		m.Order = req.Order
	})
}

func NewSkillHandler(repo repository.OwnedRepository[models.Skill]) *OwnedHandler[models.Skill, types.SkillRequest] {
	return NewOwnedHandler(repo, func(userID uuid.UUID, req *types.SkillRequest, m *models.Skill) {
		m.UserID = userID
		m.Name = req.Name
		m.Level = req.Level
		m.Category = req.Category
		if m.Category == "" {
			m.Category = "General"
		}
		m.Order = req.Order
	})
}

func NewSocialLinkHandler(repo repository.OwnedRepository[models.SocialLink]) *OwnedHandler[models.SocialLink, types.SocialLinkRequest] {
	return NewOwnedHandler(repo, func(userID uuid.UUID, req *types.SocialLinkRequest, m *models.SocialLink) {
		m.UserID = userID
		m.Platform = req.Platform
		m.URL = req.URL
	})
}
