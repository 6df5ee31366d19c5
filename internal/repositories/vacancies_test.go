package repositories

import (
	"context"
	"testing"

	"detailing-platform/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_VacancyCreate_ShouldSnapshotEmployerVerification(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")
	_, err := users.UpdateProfile(ctx, employer.ID, func(u *entities.User) { u.IsVerified = true })
	require.NoError(t, err)

	vacancy, err := vacancies.Create(ctx, entities.Vacancy{
		EmployerID:  employer.ID,
		CompanyName: "AutoShine Studio",
		Title:       "Master polisher",
	})
	require.NoError(t, err)

	assert.True(t, vacancy.IsVerified)
	assert.Equal(t, entities.VacancyActive, vacancy.Status)
	assert.Empty(t, vacancy.Applications)
	assert.NotEmpty(t, vacancy.ID)

	// later verification changes must not propagate to the stored vacancy
	_, err = users.UpdateProfile(ctx, employer.ID, func(u *entities.User) { u.IsVerified = false })
	require.NoError(t, err)

	stored, err := vacancies.GetByID(ctx, vacancy.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsVerified)
}

func Test_VacancyGetAll_ShouldReturnActiveOnly(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")

	open, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Polisher"})
	require.NoError(t, err)
	closed, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Washer"})
	require.NoError(t, err)

	_, err = vacancies.Update(ctx, closed.ID, func(v *entities.Vacancy) { v.Status = entities.VacancyClosed })
	require.NoError(t, err)

	active, err := vacancies.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)

	// both remain visible to their employer
	mine, err := vacancies.GetByEmployer(ctx, employer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func Test_VacancyUpdate_WhenUnknownID_ShouldFail(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)

	_, err := vacancies.Update(context.Background(), "missing", func(v *entities.Vacancy) {})
	assert.ErrorIs(t, err, ErrVacancyNotFound)
}

func Test_VacancyApply_WhenCalledTwice_ShouldKeepSingleApplication(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")
	specialist := registerSpecialist(t, users, "alex@test.com")

	vacancy, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Polisher"})
	require.NoError(t, err)

	_, err = vacancies.Apply(ctx, vacancy.ID, specialist.ID, specialist.Name, "hi")
	require.NoError(t, err)

	_, err = vacancies.Apply(ctx, vacancy.ID, specialist.ID, specialist.Name, "hi again")
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	stored, err := vacancies.GetByID(ctx, vacancy.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Applications, 1)
}

func Test_VacancyApply_WhenUnknownVacancy_ShouldFail(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)

	_, err := vacancies.Apply(context.Background(), "missing", "spec1", "Alex", "hi")
	assert.ErrorIs(t, err, ErrVacancyNotFound)
}

func Test_VacancyApplicationLifecycle_FromApplyToAccepted(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")
	specialist := registerSpecialist(t, users, "alex@test.com")

	vacancy, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Polisher"})
	require.NoError(t, err)

	application, err := vacancies.Apply(ctx, vacancy.ID, specialist.ID, specialist.Name, "hi")
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicationPending, application.Status)

	stored, err := vacancies.GetByID(ctx, vacancy.ID)
	require.NoError(t, err)
	require.Len(t, stored.Applications, 1)

	err = vacancies.UpdateApplicationStatus(ctx, vacancy.ID, application.ID, entities.ApplicationAccepted)
	require.NoError(t, err)

	stored, err = vacancies.GetByID(ctx, vacancy.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ApplicationAccepted, stored.Applications[0].Status)
}

func Test_UpdateApplicationStatus_WhenUnknownIDs_ShouldBeNoOp(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")
	vacancy, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Polisher"})
	require.NoError(t, err)

	assert.NoError(t, vacancies.UpdateApplicationStatus(ctx, "missing", "app1", entities.ApplicationAccepted))
	assert.NoError(t, vacancies.UpdateApplicationStatus(ctx, vacancy.ID, "missing", entities.ApplicationAccepted))
}

func Test_VacancyDelete_ShouldRemoveFromStore(t *testing.T) {
	store := newTestStore(t)
	users, _ := newTestUsers(t, store)
	vacancies := NewVacanciesRepository(store, users)
	ctx := context.Background()

	employer := registerEmployer(t, users, "studio@test.com", "7701234567", "Tverskaya 1")
	vacancy, err := vacancies.Create(ctx, entities.Vacancy{EmployerID: employer.ID, Title: "Polisher"})
	require.NoError(t, err)

	require.NoError(t, vacancies.Delete(ctx, vacancy.ID))

	stored, err := vacancies.GetByID(ctx, vacancy.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
