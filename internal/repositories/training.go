package repositories

import (
	"context"
	"fmt"
	"time"

	"detailing-platform/internal/entities"
	"detailing-platform/internal/events"
	"detailing-platform/internal/metrics"
	"detailing-platform/internal/storage"

	"github.com/asaskevich/EventBus"
	"github.com/samber/lo"
)

// Training owns course enrollments and certificate numbering. Completing an
// enrollment publishes a CertificationGranted event so the Users repository
// can flag the enrollee as certified.
type Training struct {
	store *storage.Store
	bus   EventBus.Bus
}

func NewTrainingRepository(store *storage.Store, bus EventBus.Bus) *Training {
	return &Training{store: store, bus: bus}
}

func (r *Training) GetEnrollments(ctx context.Context, userID string) ([]entities.TrainingEnrollment, error) {
	all, err := storage.GetCollection[entities.TrainingEnrollment](ctx, r.store, storage.KeyTrainingEnrollments)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(e entities.TrainingEnrollment, _ int) bool { return e.UserID == userID }), nil
}

func (r *Training) GetAllGraduates(ctx context.Context) ([]entities.TrainingEnrollment, error) {
	all, err := storage.GetCollection[entities.TrainingEnrollment](ctx, r.store, storage.KeyTrainingEnrollments)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(e entities.TrainingEnrollment, _ int) bool { return e.Status == entities.EnrollmentCompleted }), nil
}

// Enroll creates an enrollment; a user can hold at most one per course.
func (r *Training) Enroll(ctx context.Context, userID, userName, course string) (*entities.TrainingEnrollment, error) {
	metrics.RepositoryCalls.WithLabelValues("training", "enroll").Inc()

	all, err := storage.GetCollection[entities.TrainingEnrollment](ctx, r.store, storage.KeyTrainingEnrollments)
	if err != nil {
		return nil, err
	}

	for _, e := range all {
		if e.UserID == userID && e.Course == course {
			return nil, ErrAlreadyEnrolled
		}
	}

	enrollment := entities.TrainingEnrollment{
		ID:         entities.NewID(),
		UserID:     userID,
		UserName:   userName,
		Course:     course,
		Status:     entities.EnrollmentEnrolled,
		EnrolledAt: time.Now().UTC(),
	}
	if err = storage.SetCollection(ctx, r.store, storage.KeyTrainingEnrollments, append(all, enrollment)); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Complete graduates the enrollment and assigns the certificate number
// UC-<year>-<seq>, where seq is the count of already-completed enrollments
// plus one, zero-padded to three digits.
func (r *Training) Complete(ctx context.Context, enrollmentID string) (*entities.TrainingEnrollment, error) {
	metrics.RepositoryCalls.WithLabelValues("training", "complete").Inc()

	all, err := storage.GetCollection[entities.TrainingEnrollment](ctx, r.store, storage.KeyTrainingEnrollments)
	if err != nil {
		return nil, err
	}

	_, idx, found := lo.FindIndexOf(all, func(e entities.TrainingEnrollment) bool { return e.ID == enrollmentID })
	if !found {
		return nil, ErrEnrollmentNotFound
	}

	completed := lo.CountBy(all, func(e entities.TrainingEnrollment) bool { return e.Status == entities.EnrollmentCompleted })
	certNumber := fmt.Sprintf("UC-%d-%03d", time.Now().Year(), completed+1)

	now := time.Now().UTC()
	all[idx].Status = entities.EnrollmentCompleted
	all[idx].CompletedAt = &now
	all[idx].CertificateNumber = certNumber

	if err = storage.SetCollection(ctx, r.store, storage.KeyTrainingEnrollments, all); err != nil {
		return nil, err
	}

	r.bus.Publish(events.CertificationGrantedTopic, events.CertificationGranted{
		UserID:            all[idx].UserID,
		CertificateNumber: certNumber,
	})

	return &all[idx], nil
}

// VerifyCertificate looks up a completed enrollment by certificate number.
// It returns nil when no such certificate exists; there is no cryptographic
// backing, the number is just a record key.
func (r *Training) VerifyCertificate(ctx context.Context, certNumber string) (*entities.TrainingEnrollment, error) {
	all, err := storage.GetCollection[entities.TrainingEnrollment](ctx, r.store, storage.KeyTrainingEnrollments)
	if err != nil {
		return nil, err
	}
	if enrollment, found := lo.Find(all, func(e entities.TrainingEnrollment) bool {
		return e.CertificateNumber == certNumber && e.Status == entities.EnrollmentCompleted
	}); found {
		return &enrollment, nil
	}
	return nil, nil
}
