package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"youthchain-server/models"
	"youthchain-server/store"
	"youthchain-server/utils/errors"
)

const cacheTTL = 24 * time.Hour

// ProjectService reads and creates projects. Projects never change after
// creation on this surface, so single-project reads go through an optional
// Redis read-through cache. A nil cache client disables caching.
type ProjectService struct {
	store store.ProjectStore
	cache *redis.Client
}

func NewProjectService(projectStore store.ProjectStore, cache *redis.Client) *ProjectService {
	return &ProjectService{store: projectStore, cache: cache}
}

func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load projects", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (models.Project, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, "project:"+projectID).Result()
		if err == nil {
			var project models.Project
			if err := json.Unmarshal([]byte(cached), &project); err == nil {
				return project, nil
			}
			log.Printf("Failed to unmarshal cached project %s: %v", projectID, err)
		}
	}

	project, err := s.store.FindByID(ctx, projectID)
	if err == store.ErrNoDocument {
		return models.Project{}, errors.NotFound(fmt.Sprintf("Project with projectId %s not found", projectID))
	}
	if err != nil {
		return models.Project{}, errors.Internal("Failed to load project", err)
	}

	s.cacheProject(ctx, project)
	return project, nil
}

// CreateProject assigns a fresh projectId, zeroes the vote counter and inserts
// the document. Only the generated id is returned.
func (s *ProjectService) CreateProject(ctx context.Context, input models.ProjectCreate) (string, error) {
	project := models.Project{
		ProjectID:          uuid.New().String(),
		Industry:           input.Industry,
		ImageUrl:           input.ImageUrl,
		DaysLeft:           input.DaysLeft,
		ProjectName:        input.ProjectName,
		ProjectDescription: input.ProjectDescription,
		Raised:             input.Raised,
		Investors:          input.Investors,
		Votes:              0,
		MinInvestment:      input.MinInvestment,
		Slogan:             input.Slogan,
		Slogan2:            input.Slogan2,
		ReasonsToInvest:    input.ReasonsToInvest,
	}

	if err := s.store.Insert(ctx, project); err != nil {
		return "", errors.Internal("Failed to create project", err)
	}

	s.cacheProject(ctx, project)
	return project.ProjectID, nil
}

func (s *ProjectService) cacheProject(ctx context.Context, project models.Project) {
	if s.cache == nil {
		return
	}
	projectJSON, err := json.Marshal(project)
	if err != nil {
		log.Printf("Failed to marshal project %s for cache: %v", project.ProjectID, err)
		return
	}
	s.cache.Set(ctx, "project:"+project.ProjectID, projectJSON, cacheTTL)
}
