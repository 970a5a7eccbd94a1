package controllers

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// RequestCertificate issues the course certificate once all lessons are
// completed with perfect quiz scores. Requests after issuance return the
// existing certificate.
func (ctrl *CourseController) RequestCertificate(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)

	cert, alreadyIssued, err := ctrl.Certificates.Request(c.UserContext(), userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if alreadyIssued {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued.", cert)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

// GetMyCertificates lists the student's certificates
func (ctrl *CourseController) GetMyCertificates(c *fiber.Ctx) error {
	userID, ok := studentID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certs, err := ctrl.Certificates.ListByStudent(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certs,
		"total":        len(certs),
	})
}
