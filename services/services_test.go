package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixture wires every service over one in-memory database, the way main
// wires them over the real one.
type fixture struct {
	db           *gorm.DB
	catalog      *CatalogService
	enrollments  *EnrollmentService
	progress     *ProgressService
	quiz         *QuizService
	certificates *CertificateService
	certDir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	catalogRepo := repository.NewCatalogRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	quizScoreRepo := repository.NewQuizScoreRepo(db)
	certificateRepo := repository.NewCertificateRepo(db)
	userRepo := repository.NewUserRepo(db)

	certDir := t.TempDir()

	return &fixture{
		db:          db,
		catalog:     NewCatalogService(catalogRepo, enrollmentRepo, progressRepo),
		enrollments: NewEnrollmentService(catalogRepo, enrollmentRepo),
		progress:    NewProgressService(catalogRepo, enrollmentRepo, progressRepo),
		quiz:        NewQuizService(catalogRepo, quizScoreRepo),
		certificates: NewCertificateService(
			catalogRepo, enrollmentRepo, progressRepo, quizScoreRepo,
			certificateRepo, userRepo, certDir, nil,
		),
		certDir: certDir,
	}
}

func (f *fixture) createStudent(t *testing.T, firstName, lastName string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.ToLower(firstName + "." + lastName + "@example.com"),
		Password:  "secret",
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) createCourse(t *testing.T, title, approvalStatus string, price float64) *courseModels.Course {
	t.Helper()
	c := &courseModels.Course{
		InstructorID:   1,
		Title:          title,
		Description:    "about " + title,
		Category:       "testing",
		Price:          price,
		ApprovalStatus: approvalStatus,
	}
	require.NoError(t, f.db.Create(c).Error)
	return c
}

func (f *fixture) addLesson(t *testing.T, courseID uint, title string) *courseModels.Lesson {
	t.Helper()
	l := &courseModels.Lesson{CourseID: courseID, Title: title}
	require.NoError(t, f.db.Create(l).Error)
	return l
}

// addQuestion creates a question whose first choice text is the correct one.
// Pass no choices for a bare question.
func (f *fixture) addQuestion(t *testing.T, lessonID uint, text string, correct string, wrong ...string) (*courseModels.Question, []courseModels.Choice) {
	t.Helper()
	q := &courseModels.Question{LessonID: lessonID, Text: text}
	require.NoError(t, f.db.Create(q).Error)

	var choices []courseModels.Choice
	if correct != "" {
		choices = append(choices, courseModels.Choice{QuestionID: q.ID, Text: correct, IsCorrect: true})
	}
	for _, w := range wrong {
		choices = append(choices, courseModels.Choice{QuestionID: q.ID, Text: w})
	}
	for i := range choices {
		require.NoError(t, f.db.Create(&choices[i]).Error)
	}
	return q, choices
}

func (f *fixture) enroll(t *testing.T, studentID, courseID uint) {
	t.Helper()
	_, _, err := f.enrollments.Enroll(context.Background(), studentID, courseID)
	require.NoError(t, err)
}

func (f *fixture) view(t *testing.T, studentID, lessonID uint) {
	t.Helper()
	_, _, err := f.progress.RecordView(context.Background(), studentID, lessonID)
	require.NoError(t, err)
}

func (f *fixture) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(model).Count(&count).Error)
	return count
}
