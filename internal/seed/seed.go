package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushub/backend/internal/app/models"
	appRepos "github.com/campushub/backend/internal/app/repositories"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// CreateDefaultData seeds a starter set of bookable resources so a
// fresh installation has something to reserve. Existing rows are left
// alone; the seed only runs against an empty resources table.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	resourceRepo := appRepos.NewResourceRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Resources)...")

	existing, err := resourceRepo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Resources already present, skipping seed")
		return nil
	}

	defaults := []*appModels.Resource{
		{Name: "Main Lecture Hall", Type: "classroom", Location: strPtr("Building A, Ground Floor"), Capacity: intPtr(200), IsActive: true},
		{Name: "Computer Lab 1", Type: "lab", Location: strPtr("Building B, Room 101"), Capacity: intPtr(40), IsActive: true},
		{Name: "Seminar Room 2", Type: "classroom", Location: strPtr("Building A, Room 204"), Capacity: intPtr(30), IsActive: true},
		{Name: "Projector Kit", Type: "equipment", Capacity: intPtr(1), IsActive: true},
	}

	var finalErr error
	for _, resource := range defaults {
		if err := resourceRepo.Create(ctx, resource); err != nil {
			lgr.Error().Err(err).Str("resource", resource.Name).Msg("Error creating default resource")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(defaults)).Msg("Default resources created")
	}
	return finalErr
}
