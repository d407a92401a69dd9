package services

import (
	"context"

	"github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
)

// ResourceService handles bookable facility management. Writes are
// admin-gated at the route layer; reads are open to any active
// identity, with inactive resources hidden from non-admins.
type ResourceService struct {
	resourceRepo repositories.IResourceRepository
	authz        *auth.AuthorizationService
}

// NewResourceService creates a new resource service
func NewResourceService(resourceRepo repositories.IResourceRepository, authz *auth.AuthorizationService) *ResourceService {
	return &ResourceService{resourceRepo: resourceRepo, authz: authz}
}

// CreateResource creates a resource. A department reference, when
// given, must exist.
func (s *ResourceService) CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*models.Resource, error) {
	if req.DepartmentID != nil {
		if err := s.authz.ValidateDepartmentRef(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	resource := &models.Resource{
		Name:         req.Name,
		Type:         req.Type,
		Location:     req.Location,
		Capacity:     req.Capacity,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// GetResource retrieves a resource by ID
func (s *ResourceService) GetResource(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

// ListResources retrieves resources. Non-admin actors only see active
// ones.
func (s *ResourceService) ListResources(ctx context.Context, actor *models.User) ([]*models.Resource, error) {
	onlyActive := actor.Role != models.RoleAdmin
	return s.resourceRepo.List(ctx, onlyActive)
}

// UpdateResource applies the provided fields to a resource
func (s *ResourceService) UpdateResource(ctx context.Context, id int64, req *dto.UpdateResourceRequest) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != nil {
		if err := s.authz.ValidateDepartmentRef(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		resource.DepartmentID = req.DepartmentID
	}
	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.Type != nil {
		resource.Type = *req.Type
	}
	if req.Location != nil {
		resource.Location = req.Location
	}
	if req.Capacity != nil {
		resource.Capacity = req.Capacity
	}
	if req.IsActive != nil {
		resource.IsActive = *req.IsActive
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// DeleteResource removes a resource. Bookings cascade at the storage
// layer.
func (s *ResourceService) DeleteResource(ctx context.Context, id int64) error {
	if _, err := s.resourceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.resourceRepo.Delete(ctx, id)
}
