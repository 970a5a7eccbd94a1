package services

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	courseModels "lms/models/course"
	"lms/repository"
	"lms/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CertificateService decides certificate eligibility and issues the PDF at
// most once per (student, course).
type CertificateService struct {
	catalog      repository.CatalogRepo
	enrollments  repository.EnrollmentRepo
	progress     repository.ProgressRepo
	scores       repository.QuizScoreRepo
	certificates repository.CertificateRepo
	users        repository.UserRepo

	certDir string
	mailer  *utils.Mailer // nil disables notifications
}

func NewCertificateService(
	catalog repository.CatalogRepo,
	enrollments repository.EnrollmentRepo,
	progress repository.ProgressRepo,
	scores repository.QuizScoreRepo,
	certificates repository.CertificateRepo,
	users repository.UserRepo,
	certDir string,
	mailer *utils.Mailer,
) *CertificateService {
	return &CertificateService{
		catalog:      catalog,
		enrollments:  enrollments,
		progress:     progress,
		scores:       scores,
		certificates: certificates,
		users:        users,
		certDir:      certDir,
		mailer:       mailer,
	}
}

// Request checks eligibility lesson by lesson (ascending id) and, on the
// first qualifying call, generates and stores the certificate PDF. Later
// calls return the existing row and file untouched. A row left without a
// file by a crash mid-generation is healed here on the next request.
func (s *CertificateService) Request(ctx context.Context, studentID, courseID uint) (cert *courseModels.Certificate, alreadyIssued bool, err error) {
	c, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	if !enrolled {
		return nil, false, ErrNotEnrolled
	}

	lessons, err := s.catalog.ListLessons(ctx, courseID)
	if err != nil {
		return nil, false, err
	}

	// Read-only until every lesson passes; a failure here leaves no state.
	for _, lesson := range lessons {
		lp, err := s.progress.Get(ctx, studentID, lesson.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		if lp == nil || !lp.IsCompleted {
			return nil, false, &EligibilityError{Reason: ReasonLessonNotCompleted, LessonTitle: lesson.Title}
		}

		questionCount, err := s.catalog.CountQuestions(ctx, lesson.ID)
		if err != nil {
			return nil, false, err
		}

		// TODO: a lesson with zero questions can never get a score row, so it
		// blocks issuance forever; needs a product decision before changing.
		score, err := s.scores.Get(ctx, studentID, lesson.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		if score == nil || score.Score < int(questionCount) {
			return nil, false, &EligibilityError{Reason: ReasonQuizNotPerfect, LessonTitle: lesson.Title}
		}
	}

	row, created, err := s.certificates.GetOrCreate(ctx, studentID, courseID, uuid.NewString(), time.Now())
	if err != nil {
		return nil, false, err
	}

	if !created && row.CertificateURL != "" {
		return row, true, nil
	}

	if err := s.generateFile(ctx, row, c); err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (s *CertificateService) generateFile(ctx context.Context, cert *courseModels.Certificate, c *courseModels.Course) error {
	student, err := s.users.Get(ctx, cert.StudentID)
	if err != nil {
		return err
	}

	pdfBytes, err := utils.RenderCertificatePDF(student.FullName(), c.Title, cert.IssuedOn)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.certDir, 0755); err != nil {
		return err
	}
	fileName := utils.CertificateFileName(cert.StudentID, cert.CourseID, c.Title)
	if err := os.WriteFile(filepath.Join(s.certDir, fileName), pdfBytes, 0644); err != nil {
		return err
	}

	fileURL := "/certificates/" + fileName
	if err := s.certificates.AttachFile(ctx, cert.ID, fileURL); err != nil {
		return err
	}
	cert.CertificateURL = fileURL

	if s.mailer != nil {
		go func(email, name, title, url string) {
			if err := s.mailer.SendCertificateIssued(email, name, title, url); err != nil {
				log.Printf("certificate email to %s failed: %v", email, err)
			}
		}(student.Email, student.FullName(), c.Title, fileURL)
	}
	return nil
}

// CertificateWithCourse pairs a certificate with its course title for
// listings.
type CertificateWithCourse struct {
	courseModels.Certificate
	CourseTitle string `json:"course_title"`
}

// ListByStudent returns the student's certificates, newest first.
func (s *CertificateService) ListByStudent(ctx context.Context, studentID uint) ([]CertificateWithCourse, error) {
	certs, err := s.certificates.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	results := make([]CertificateWithCourse, 0, len(certs))
	for _, cert := range certs {
		title := ""
		if c, err := s.catalog.GetCourse(ctx, cert.CourseID); err == nil {
			title = c.Title
		}
		results = append(results, CertificateWithCourse{Certificate: cert, CourseTitle: title})
	}
	return results, nil
}
