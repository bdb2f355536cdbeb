package utils

import (
	"fmt"
	"log"
	"time"

	"lms/database"
	courseModels "lms/models/course"
	courseService "lms/services/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileEnrolledCounts recomputes each course's enrolled counter from the
// enrollment rows. Drift can appear after manual data fixes or failed
// transactions and the counter is what capacity checks trust.
func reconcileEnrolledCounts() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	fixed := 0
	for _, course := range courses {
		var actual int64
		if err := db.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Count(&actual).Error; err != nil {
			logScheduler("Error counting enrollments: " + err.Error())
			continue
		}

		if int(actual) != course.EnrolledCount {
			if err := db.Model(&courseModels.Course{}).
				Where("id = ?", course.ID).
				UpdateColumn("enrolled_count", actual).Error; err != nil {
				logScheduler("Error updating enrolled count: " + err.Error())
				continue
			}
			fixed++
		}
	}

	logScheduler(fmt.Sprintf("Enrolled count reconciliation done, %d course(s) corrected", fixed))
}

// reconcileProgressRecords recomputes percentages for all progress rows so
// lesson additions or removals made by instructors are reflected overnight.
func reconcileProgressRecords() {
	db := database.Database.Db

	var records []courseModels.Progress
	if err := db.Where("is_deleted = ?", false).Find(&records).Error; err != nil {
		logScheduler("Error fetching progress records: " + err.Error())
		return
	}

	updated := 0
	for i := range records {
		record := &records[i]
		oldPercent := record.ProgressPercent
		oldCompleted := record.Completed

		if err := courseService.RecomputeProgress(db, record); err != nil {
			logScheduler("Error recomputing progress: " + err.Error())
			continue
		}

		if record.ProgressPercent != oldPercent || record.Completed != oldCompleted {
			if err := db.Save(record).Error; err != nil {
				logScheduler("Error saving progress record: " + err.Error())
				continue
			}
			updated++
		}
	}

	logScheduler(fmt.Sprintf("Progress reconciliation done, %d record(s) updated", updated))
}

// StartReconciliationScheduler runs the nightly reconciliation at 2:00 AM
func StartReconciliationScheduler(c *cron.Cron) {
	c.AddFunc("0 2 * * *", func() {
		reconcileEnrolledCounts()
		reconcileProgressRecords()
	})
	logScheduler("Reconciliation scheduler started - runs daily at 2:00 AM")
}

// InitializeProgressSchedulers initializes all background schedulers
func InitializeProgressSchedulers() *cron.Cron {
	logScheduler("Initializing progress schedulers...")

	c := cron.New()

	StartReconciliationScheduler(c)

	c.Start()

	logScheduler("All progress schedulers initialized successfully")
	return c
}
