package repositories

import (
	"context"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/samber/lo"
)

// Vacancies owns the vacancy collection with its embedded applications.
// It reads (never writes) user records to snapshot the employer's
// verification flag at creation time.
type Vacancies struct {
	store *storage.Store
	users userLookup
}

func NewVacanciesRepository(store *storage.Store, users userLookup) *Vacancies {
	return &Vacancies{store: store, users: users}
}

// GetAll returns active vacancies only.
func (r *Vacancies) GetAll(ctx context.Context) ([]entities.Vacancy, error) {
	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(v entities.Vacancy, _ int) bool { return v.Status == entities.VacancyActive }), nil
}

func (r *Vacancies) GetByID(ctx context.Context, id string) (*entities.Vacancy, error) {
	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}
	if vacancy, found := lo.Find(all, func(v entities.Vacancy) bool { return v.ID == id }); found {
		return &vacancy, nil
	}
	return nil, nil
}

func (r *Vacancies) GetByEmployer(ctx context.Context, employerID string) ([]entities.Vacancy, error) {
	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(v entities.Vacancy, _ int) bool { return v.EmployerID == employerID }), nil
}

// Create stores a new active vacancy. The verification badge is copied from
// the employer's record once, here; later verification changes do not
// propagate to existing vacancies.
func (r *Vacancies) Create(ctx context.Context, vacancy entities.Vacancy) (*entities.Vacancy, error) {
	metrics.RepositoryCalls.WithLabelValues("vacancies", "create").Inc()

	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}

	vacancy.ID = entities.NewID()
	vacancy.CreatedAt = time.Now().UTC()
	vacancy.Applications = []entities.Application{}
	vacancy.Status = entities.VacancyActive

	vacancy.IsVerified = false
	if employer, err := r.users.GetUser(ctx, vacancy.EmployerID); err == nil && employer != nil {
		vacancy.IsVerified = employer.IsVerified
	}

	if err = storage.SetCollection(ctx, r.store, storage.KeyVacancies, append(all, vacancy)); err != nil {
		return nil, err
	}
	return &vacancy, nil
}

func (r *Vacancies) Update(ctx context.Context, id string, mutate func(*entities.Vacancy)) (*entities.Vacancy, error) {
	metrics.RepositoryCalls.WithLabelValues("vacancies", "update").Inc()

	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}

	_, idx, found := lo.FindIndexOf(all, func(v entities.Vacancy) bool { return v.ID == id })
	if !found {
		return nil, ErrVacancyNotFound
	}

	mutate(&all[idx])
	all[idx].ID = id

	if err = storage.SetCollection(ctx, r.store, storage.KeyVacancies, all); err != nil {
		return nil, err
	}
	return &all[idx], nil
}

// Delete removes the vacancy from the store entirely.
func (r *Vacancies) Delete(ctx context.Context, id string) error {
	metrics.RepositoryCalls.WithLabelValues("vacancies", "delete").Inc()

	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return err
	}
	remaining := lo.Filter(all, func(v entities.Vacancy, _ int) bool { return v.ID != id })
	return storage.SetCollection(ctx, r.store, storage.KeyVacancies, remaining)
}

// Apply appends a pending application. A specialist can hold at most one
// application per vacancy.
func (r *Vacancies) Apply(ctx context.Context, vacancyID, specialistID, specialistName, message string) (*entities.Application, error) {
	metrics.RepositoryCalls.WithLabelValues("vacancies", "apply").Inc()

	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return nil, err
	}

	_, idx, found := lo.FindIndexOf(all, func(v entities.Vacancy) bool { return v.ID == vacancyID })
	if !found {
		return nil, ErrVacancyNotFound
	}

	for _, app := range all[idx].Applications {
		if app.SpecialistID == specialistID {
			return nil, ErrAlreadyApplied
		}
	}

	application := entities.Application{
		ID:             entities.NewID(),
		VacancyID:      vacancyID,
		SpecialistID:   specialistID,
		SpecialistName: specialistName,
		Message:        message,
		Status:         entities.ApplicationPending,
		CreatedAt:      time.Now().UTC(),
	}
	all[idx].Applications = append(all[idx].Applications, application)

	if err = storage.SetCollection(ctx, r.store, storage.KeyVacancies, all); err != nil {
		return nil, err
	}
	return &application, nil
}

// UpdateApplicationStatus overwrites the application's status. Unknown
// vacancy or application ids are a silent no-op, and repeated calls are not
// guarded against.
func (r *Vacancies) UpdateApplicationStatus(ctx context.Context, vacancyID, applicationID string, status entities.ApplicationStatus) error {
	metrics.RepositoryCalls.WithLabelValues("vacancies", "update_application_status").Inc()

	all, err := storage.GetCollection[entities.Vacancy](ctx, r.store, storage.KeyVacancies)
	if err != nil {
		return err
	}

	_, vIdx, found := lo.FindIndexOf(all, func(v entities.Vacancy) bool { return v.ID == vacancyID })
	if !found {
		return nil
	}

	for i := range all[vIdx].Applications {
		if all[vIdx].Applications[i].ID == applicationID {
			all[vIdx].Applications[i].Status = status
			return storage.SetCollection(ctx, r.store, storage.KeyVacancies, all)
		}
	}
	return nil
}
