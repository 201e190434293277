package repository

import "hr-management-backend/models"

// TrainingRepository covers the training catalog together with the
// enrollments and certificates that hang off it.
type TrainingRepository interface {
	AllTrainings() []models.Training
	FindTraining(id int) (models.Training, bool)
	UpdateTraining(id int, mutate func(*models.Training)) (models.Training, bool)

	EnrollmentsFor(employeeID int) []models.Enrollment
	FindEnrollment(employeeID, trainingID int) (models.Enrollment, bool)
	CreateEnrollment(build func(id int) models.Enrollment) models.Enrollment
	UpdateEnrollment(id int, mutate func(*models.Enrollment)) (models.Enrollment, bool)

	CertificatesFor(employeeID int) []models.Certificate
	FindCertificate(employeeID, trainingID int) (models.Certificate, bool)
	FindCertificateByCode(code string) (models.Certificate, bool)
	CreateCertificate(build func(id int) models.Certificate) models.Certificate
}

type trainingRepository struct {
	trainings    *Collection[models.Training]
	enrollments  *Collection[models.Enrollment]
	certificates *Collection[models.Certificate]
}

func NewTrainingRepository(store *Store) TrainingRepository {
	return &trainingRepository{
		trainings:    store.Trainings,
		enrollments:  store.Enrollments,
		certificates: store.Certificates,
	}
}

func (r *trainingRepository) AllTrainings() []models.Training { return r.trainings.All() }

func (r *trainingRepository) FindTraining(id int) (models.Training, bool) {
	return r.trainings.Get(id)
}

func (r *trainingRepository) UpdateTraining(id int, mutate func(*models.Training)) (models.Training, bool) {
	return r.trainings.Update(id, mutate)
}

func (r *trainingRepository) EnrollmentsFor(employeeID int) []models.Enrollment {
	return r.enrollments.Filter(func(e models.Enrollment) bool { return e.EmployeeID == employeeID })
}

func (r *trainingRepository) FindEnrollment(employeeID, trainingID int) (models.Enrollment, bool) {
	return r.enrollments.Find(func(e models.Enrollment) bool {
		return e.EmployeeID == employeeID && e.TrainingID == trainingID
	})
}

func (r *trainingRepository) CreateEnrollment(build func(id int) models.Enrollment) models.Enrollment {
	return r.enrollments.Insert(build)
}

func (r *trainingRepository) UpdateEnrollment(id int, mutate func(*models.Enrollment)) (models.Enrollment, bool) {
	return r.enrollments.Update(id, mutate)
}

func (r *trainingRepository) CertificatesFor(employeeID int) []models.Certificate {
	return r.certificates.Filter(func(c models.Certificate) bool { return c.EmployeeID == employeeID })
}

func (r *trainingRepository) FindCertificate(employeeID, trainingID int) (models.Certificate, bool) {
	return r.certificates.Find(func(c models.Certificate) bool {
		return c.EmployeeID == employeeID && c.TrainingID == trainingID
	})
}

func (r *trainingRepository) FindCertificateByCode(code string) (models.Certificate, bool) {
	return r.certificates.Find(func(c models.Certificate) bool { return c.VerificationCode == code })
}

func (r *trainingRepository) CreateCertificate(build func(id int) models.Certificate) models.Certificate {
	return r.certificates.Insert(build)
}
