package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateRequiresEnrollment(t *testing.T) {
	f := newFixture(t)
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Go Basics", courseModels.ApprovalApproved, 0)

	_, _, err := f.certificates.Request(context.Background(), student.ID, c.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)
}

func TestCertificateIncompleteLessonFailsEligibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Go Basics", courseModels.ApprovalApproved, 0)
	f.addLesson(t, c.ID, "Introduction")
	f.enroll(t, student.ID, c.ID)

	_, _, err := f.certificates.Request(ctx, student.ID, c.ID)
	var eligibility *EligibilityError
	require.ErrorAs(t, err, &eligibility)
	assert.Equal(t, ReasonLessonNotCompleted, eligibility.Reason)
	assert.Equal(t, "Introduction", eligibility.LessonTitle)

	// A failed check writes nothing.
	assert.EqualValues(t, 0, f.countRows(t, &courseModels.Certificate{}))
}

func TestCertificateImperfectQuizFailsEligibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Go Basics", courseModels.ApprovalApproved, 0)
	lesson := f.addLesson(t, c.ID, "Slices")
	q, choices := f.addQuestion(t, lesson.ID, "What is len(nil)?", "0", "panic")
	f.enroll(t, student.ID, c.ID)
	f.view(t, student.ID, lesson.ID)

	_, err := f.quiz.Grade(ctx, student.ID, lesson.ID, map[uint]uint{q.ID: choices[1].ID})
	require.NoError(t, err)

	_, _, err = f.certificates.Request(ctx, student.ID, c.ID)
	var eligibility *EligibilityError
	require.ErrorAs(t, err, &eligibility)
	assert.Equal(t, ReasonQuizNotPerfect, eligibility.Reason)
	assert.Equal(t, "Slices", eligibility.LessonTitle)
	assert.EqualValues(t, 0, f.countRows(t, &courseModels.Certificate{}))
}

// Full walkthrough: two lessons, one question each; a failed quiz blocks the
// certificate naming the failing lesson, a retake unblocks it, issuance is
// idempotent.
func TestCertificateEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Go Basics", courseModels.ApprovalApproved, 0)
	l1 := f.addLesson(t, c.ID, "Lesson One")
	l2 := f.addLesson(t, c.ID, "Lesson Two")
	q1, ch1 := f.addQuestion(t, l1.ID, "Q1", "right", "wrong")
	q2, ch2 := f.addQuestion(t, l2.ID, "Q2", "right", "wrong")

	f.enroll(t, student.ID, c.ID)
	f.view(t, student.ID, l1.ID)
	_, err := f.quiz.Grade(ctx, student.ID, l1.ID, map[uint]uint{q1.ID: ch1[0].ID})
	require.NoError(t, err)
	f.view(t, student.ID, l2.ID)
	_, err = f.quiz.Grade(ctx, student.ID, l2.ID, map[uint]uint{q2.ID: ch2[1].ID})
	require.NoError(t, err)

	_, _, err = f.certificates.Request(ctx, student.ID, c.ID)
	var eligibility *EligibilityError
	require.ErrorAs(t, err, &eligibility)
	assert.Equal(t, "Lesson Two", eligibility.LessonTitle)

	// Retake lesson two's quiz with full marks.
	_, err = f.quiz.Grade(ctx, student.ID, l2.ID, map[uint]uint{q2.ID: ch2[0].ID})
	require.NoError(t, err)

	first, alreadyIssued, err := f.certificates.Request(ctx, student.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, alreadyIssued)
	require.NotEmpty(t, first.CertificateURL)

	pdfPath := filepath.Join(f.certDir, filepath.Base(first.CertificateURL))
	data, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))

	second, alreadyIssued, err := f.certificates.Request(ctx, student.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, alreadyIssued)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateURL, second.CertificateURL)

	assert.EqualValues(t, 1, f.countRows(t, &courseModels.Certificate{}))
	entries, err := os.ReadDir(f.certDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCertificateZeroQuestionLessonBlocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Go Basics", courseModels.ApprovalApproved, 0)
	lesson := f.addLesson(t, c.ID, "Quizless")
	f.enroll(t, student.ID, c.ID)
	f.view(t, student.ID, lesson.ID)

	// No score row can ever exist for a lesson without questions, so the
	// quiz requirement can never be met.
	_, _, err := f.certificates.Request(ctx, student.ID, c.ID)
	var eligibility *EligibilityError
	require.ErrorAs(t, err, &eligibility)
	assert.Equal(t, ReasonQuizNotPerfect, eligibility.Reason)
	assert.Equal(t, "Quizless", eligibility.LessonTitle)
}

func TestCertificateEmptyCourseIsEligible(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Empty Course", courseModels.ApprovalApproved, 0)
	f.enroll(t, student.ID, c.ID)

	cert, alreadyIssued, err := f.certificates.Request(ctx, student.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, alreadyIssued)
	assert.NotEmpty(t, cert.CertificateURL)
	assert.NotEmpty(t, cert.CertificateNumber)
}

func TestCertificateRowWithoutFileIsHealed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Empty Course", courseModels.ApprovalApproved, 0)
	f.enroll(t, student.ID, c.ID)

	// Simulate a crash between row creation and file generation.
	stale := &courseModels.Certificate{
		StudentID:         student.ID,
		CourseID:          c.ID,
		CertificateNumber: "stale-number",
		IssuedOn:          time.Now(),
	}
	require.NoError(t, f.db.Create(stale).Error)

	cert, alreadyIssued, err := f.certificates.Request(ctx, student.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, alreadyIssued)
	assert.Equal(t, stale.ID, cert.ID)
	assert.NotEmpty(t, cert.CertificateURL)

	_, err = os.Stat(filepath.Join(f.certDir, filepath.Base(cert.CertificateURL)))
	require.NoError(t, err)
}

func TestListByStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.createStudent(t, "Ada", "Lovelace")
	c := f.createCourse(t, "Empty Course", courseModels.ApprovalApproved, 0)
	f.enroll(t, student.ID, c.ID)

	_, _, err := f.certificates.Request(ctx, student.ID, c.ID)
	require.NoError(t, err)

	certs, err := f.certificates.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "Empty Course", certs[0].CourseTitle)
}
