package services

import (
	appauth "github.com/campushub/backend/internal/app/auth"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories/repotest"
)

// newTestAuthz builds an authorization service over the store's fakes
func newTestAuthz(store *repotest.Store) *appauth.AuthorizationService {
	return appauth.NewAuthorizationService(
		store.Users(),
		store.Departments(),
		store.Courses(),
		store.Enrollments(),
	)
}

func seedAdmin(store *repotest.Store) *models.User {
	return store.SeedUser(&models.User{FullName: "Admin", Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true})
}

func seedTeacher(store *repotest.Store, name, email string) *models.User {
	return store.SeedUser(&models.User{FullName: name, Email: email, Role: models.RoleTeacher, IsActive: true})
}

func seedStudent(store *repotest.Store, name, email string) *models.User {
	return store.SeedUser(&models.User{FullName: name, Email: email, Role: models.RoleStudent, IsActive: true})
}
