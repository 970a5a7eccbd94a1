package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestDeleteCourseCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepo(db)

	c := &courseModels.Course{InstructorID: 1, Title: "Doomed", ApprovalStatus: courseModels.ApprovalApproved}
	require.NoError(t, db.Create(c).Error)
	lesson := &courseModels.Lesson{CourseID: c.ID, Title: "L1"}
	require.NoError(t, db.Create(lesson).Error)
	question := &courseModels.Question{LessonID: lesson.ID, Text: "Q1"}
	require.NoError(t, db.Create(question).Error)
	require.NoError(t, db.Create(&courseModels.Choice{QuestionID: question.ID, Text: "A", IsCorrect: true}).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{StudentID: 1, CourseID: c.ID, EnrolledOn: time.Now()}).Error)
	require.NoError(t, db.Create(&courseModels.LessonProgress{StudentID: 1, LessonID: lesson.ID, IsCompleted: true, WatchedOn: time.Now()}).Error)
	require.NoError(t, db.Create(&courseModels.QuizScore{StudentID: 1, LessonID: lesson.ID, Score: 1, Total: 1, IsPerfect: true}).Error)
	require.NoError(t, db.Create(&courseModels.Certificate{StudentID: 1, CourseID: c.ID, CertificateNumber: "n", IssuedOn: time.Now()}).Error)

	// An unrelated course must survive the cascade.
	other := &courseModels.Course{InstructorID: 1, Title: "Keeper", ApprovalStatus: courseModels.ApprovalApproved}
	require.NoError(t, db.Create(other).Error)
	otherLesson := &courseModels.Lesson{CourseID: other.ID, Title: "K1"}
	require.NoError(t, db.Create(otherLesson).Error)

	require.NoError(t, repo.DeleteCourseCascade(ctx, c.ID))

	for model, want := range map[interface{}]int64{
		&courseModels.Course{}:         1,
		&courseModels.Lesson{}:         1,
		&courseModels.Question{}:       0,
		&courseModels.Choice{}:         0,
		&courseModels.Enrollment{}:     0,
		&courseModels.LessonProgress{}: 0,
		&courseModels.QuizScore{}:      0,
		&courseModels.Certificate{}:    0,
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, want, count, "%T", model)
	}

	_, err := repo.GetCourse(ctx, other.ID)
	assert.NoError(t, err)
}

func TestEnrollmentGetOrCreateRace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewEnrollmentRepo(db)

	first, created, err := repo.GetOrCreate(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCertificateGetOrCreateKeepsFirstRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCertificateRepo(db)

	first, created, err := repo.GetOrCreate(ctx, 1, 2, "number-1", time.Now())
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, 1, 2, "number-2", time.Now())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "number-1", second.CertificateNumber)
}
