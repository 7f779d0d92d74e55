package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/alexanderramin/xpoint/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	clock    Clock
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, clock Clock, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"name": p.Name, "weekly_hours": p.WeeklyHours}
	defer observe(ctx, s.observer, "create-project", startedAt, &err, fields)

	if err = p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.WorkDays = p.WorkDays.Distinct()
	p.CreatedAt = s.clock().UTC().Truncate(time.Second)
	fields["project_id"] = p.ID
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &domain.NotFoundError{Entity: "project", ID: id}
	}
	return p, err
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) DailyHours(ctx context.Context, id string) (domain.DailyHours, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.DailyHours{}, nil
		}
		return domain.DailyHours{}, err
	}
	return domain.DailyHours{Hours: p.DailyHours(), Found: true}, nil
}
