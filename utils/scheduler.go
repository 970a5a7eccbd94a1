package utils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lms/repository"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MAINTENANCE %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartMaintenanceScheduler runs nightly housekeeping: it logs enrollment and
// certificate totals and deletes certificate files on disk that no database
// row references (leftovers from crashes between file write and row update).
func StartMaintenanceScheduler(spec string, certDir string, enrollments repository.EnrollmentRepo, certificates repository.CertificateRepo) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		runMaintenance(certDir, enrollments, certificates)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logScheduler("Scheduler started with spec " + spec)
	return c, nil
}

func runMaintenance(certDir string, enrollments repository.EnrollmentRepo, certificates repository.CertificateRepo) {
	ctx := context.Background()

	if total, err := enrollments.CountAll(ctx); err != nil {
		logScheduler("Error counting enrollments: " + err.Error())
	} else {
		logScheduler("Total enrollments: " + strconv.FormatInt(total, 10))
	}

	certs, err := certificates.ListAll(ctx)
	if err != nil {
		logScheduler("Error listing certificates: " + err.Error())
		return
	}
	logScheduler("Total certificates: " + strconv.Itoa(len(certs)))

	referenced := make(map[string]bool, len(certs))
	for _, cert := range certs {
		if cert.CertificateURL != "" {
			referenced[filepath.Base(cert.CertificateURL)] = true
		}
	}

	entries, err := os.ReadDir(certDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logScheduler("Error reading certificate dir: " + err.Error())
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".pdf") || referenced[name] {
			continue
		}
		if err := os.Remove(filepath.Join(certDir, name)); err != nil {
			logScheduler("Error removing orphan file " + name + ": " + err.Error())
			continue
		}
		removed++
	}
	if removed > 0 {
		logScheduler("Removed orphan certificate files: " + strconv.Itoa(removed))
	}
}
