package entity

import "time"

type ServiceID string

func (id ServiceID) String() string {
	return string(id)
}

type ServiceCategory string

const (
	CategoryWashFold     ServiceCategory = `wash-fold`
	CategoryDryClean     ServiceCategory = `dry-clean`
	CategoryIroning      ServiceCategory = `ironing`
	CategorySpecial      ServiceCategory = `special`
	CategoryStainRemoval ServiceCategory = `stain-removal`
	CategoryPremium      ServiceCategory = `premium`
)

type Services []Service

type Service struct {
	ID            ServiceID
	Name          string
	Description   string
	Price         float64
	Category      ServiceCategory
	Image         string
	EstimatedTime string
	MinimumOrder  int
	Unit          string
	Features      []string
	IsActive      bool
	DateCreated   time.Time
	DateUpdated   time.Time
}
