package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

var sampleServices = []entity.Service{
	{
		Name:          "Wash & Fold",
		Description:   "Professional washing and folding service for your everyday laundry",
		Price:         15.99,
		Category:      entity.CategoryWashFold,
		Image:         "/assets/images/wash-fold.jpg",
		EstimatedTime: "24 hours",
		MinimumOrder:  1,
		Unit:          "load",
		Features:      []string{"Eco-friendly detergents", "Same-day service available", "Free pickup & delivery"},
		IsActive:      true,
	},
	{
		Name:          "Dry Cleaning",
		Description:   "Expert dry cleaning for suits, dresses, and delicate fabrics",
		Price:         8.99,
		Category:      entity.CategoryDryClean,
		Image:         "/assets/images/dry-clean.jpg",
		EstimatedTime: "48 hours",
		MinimumOrder:  1,
		Unit:          "item",
		Features:      []string{"Stain treatment", "Professional pressing", "Garment protection"},
		IsActive:      true,
	},
	{
		Name:          "Ironing Service",
		Description:   "Professional ironing for wrinkle-free clothes",
		Price:         5.99,
		Category:      entity.CategoryIroning,
		Image:         "/assets/images/ironing.jpg",
		EstimatedTime: "24 hours",
		MinimumOrder:  2,
		Unit:          "item",
		Features:      []string{"Steam ironing", "Hanging fold", "Same-day service"},
		IsActive:      true,
	},
	{
		Name:          "Stain Removal",
		Description:   "Specialized treatment for tough stains",
		Price:         12.99,
		Category:      entity.CategoryStainRemoval,
		Image:         "/assets/images/stain-removal.jpg",
		EstimatedTime: "48 hours",
		MinimumOrder:  1,
		Unit:          "item",
		Features:      []string{"Advanced stain treatment", "Color-safe process", "Guaranteed results"},
		IsActive:      true,
	},
	{
		Name:          "Premium Laundry",
		Description:   "Luxury laundry service with premium care",
		Price:         25.99,
		Category:      entity.CategoryPremium,
		Image:         "/assets/images/premium.jpg",
		EstimatedTime: "24 hours",
		MinimumOrder:  1,
		Unit:          "load",
		Features:      []string{"Premium detergents", "Hand folding", "Eco-friendly packaging"},
		IsActive:      true,
	},
}

// SeedSampleServices fills an empty catalog with the default offerings so a
// fresh deployment has something to sell.
func (s *Mongo) SeedSampleServices(ctx context.Context) error {
	count, err := s.CountServices(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, service := range sampleServices {
		service.ID = entity.ServiceID(uuid.New().String())
		service.DateCreated = now
		service.DateUpdated = now

		if err := s.CreateService(ctx, service); err != nil {
			return fmt.Errorf("error while seeding services: %w", err)
		}
	}

	zap.L().Info("seeded sample services", zap.Int("count", len(sampleServices)))

	return nil
}
