package postgres

import (
	"context"
	"fmt"

	"github.com/talentflow/ats-service/internal/models"
	"github.com/talentflow/ats-service/internal/repositories"
	"gorm.io/gorm"
)

type DashboardPostgreSQL struct {
	db *gorm.DB
}

func NewDashboardPostgreSQL(db *gorm.DB) repositories.DashboardRepository {
	return &DashboardPostgreSQL{db: db}
}

// Stats aggregates the headline counts for the recruiting dashboard.
func (d *DashboardPostgreSQL) Stats(ctx context.Context) (*repositories.DashboardStats, error) {
	stats := &repositories.DashboardStats{}
	db := d.db.WithContext(ctx)

	if err := db.Model(&models.Job{}).
		Where("status = ?", models.JobActive).
		Count(&stats.ActiveJobs).Error; err != nil {
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}

	if err := db.Model(&models.Candidate{}).
		Count(&stats.TotalCandidates).Error; err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	if err := db.Model(&models.Interview{}).
		Where("status = ?", models.InterviewScheduled).
		Count(&stats.ScheduledInterviews).Error; err != nil {
		return nil, fmt.Errorf("failed to count scheduled interviews: %w", err)
	}

	if err := db.Model(&models.OfferLetter{}).
		Where("status = ?", models.OfferSent).
		Count(&stats.PendingOffers).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending offers: %w", err)
	}

	stageCounts := map[models.ApplicationStage]*int64{
		models.StageReview:     &stats.Pipeline.Review,
		models.StageAssessment: &stats.Pipeline.Assessment,
		models.StageInterview:  &stats.Pipeline.Interview,
		models.StageOffer:      &stats.Pipeline.Offer,
	}
	for stage, dst := range stageCounts {
		if err := db.Model(&models.Application{}).
			Where("stage = ?", stage).
			Count(dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s stage applications: %w", stage, err)
		}
	}

	return stats, nil
}
