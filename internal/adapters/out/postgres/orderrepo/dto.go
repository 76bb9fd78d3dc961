// Package orderrepo provides the GORM-backed persistence adapter for order
// aggregates, including the mapping between domain entities and the
// orders / order_files tables.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO is the database representation of an order aggregate.
// order_id carries the unique index that enforces public-ID uniqueness
// at the storage layer.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             string    `gorm:"uniqueIndex;not null"`
	FullName            string    `gorm:"not null"`
	PhoneNumber         string    `gorm:"not null"`
	PrintType           string    `gorm:"not null"`
	BindingColorType    *string
	Copies              int
	PaperSize           string
	PrintSide           string
	SelectedPages       string
	ColorPages          string
	BwPages             string
	SpecialInstructions string
	Status              string    `gorm:"index;not null"`
	TotalCost           float64
	OrderDate           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	Files               []FileDTO `gorm:"foreignKey:OrderRef;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// FileDTO is one uploaded document row owned by an order.
// Path is the storage locator and must never be surfaced by read models.
type FileDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRef     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"uniqueIndex;not null"`
	OriginalName string    `gorm:"not null"`
	Size         int64
	Type         string `gorm:"not null"`
	Path         string `gorm:"not null"`
	UploadDate   time.Time
}

// TableName overrides GORM's default naming to use "order_files".
func (FileDTO) TableName() string {
	return "order_files"
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &FileDTO{})
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()

	var binding *string
	if d.BindingColorType != nil {
		raw := string(*d.BindingColorType)
		binding = &raw
	}

	files := make([]FileDTO, 0, len(o.Files()))
	for _, f := range o.Files() {
		files = append(files, FileDTO{
			ID:           uuid.New(),
			OrderRef:     o.ID().Bytes(),
			Name:         f.Name,
			OriginalName: f.OriginalName,
			Size:         f.Size,
			Type:         f.MIMEType,
			Path:         f.Path,
			UploadDate:   f.UploadDate,
		})
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		OrderID:             o.OrderID(),
		FullName:            d.FullName,
		PhoneNumber:         d.PhoneNumber,
		PrintType:           string(d.PrintType),
		BindingColorType:    binding,
		Copies:              d.Copies,
		PaperSize:           string(d.PaperSize),
		PrintSide:           string(d.PrintSide),
		SelectedPages:       d.SelectedPages,
		ColorPages:          d.ColorPages,
		BwPages:             d.BwPages,
		SpecialInstructions: d.SpecialInstructions,
		Status:              string(o.Status()),
		TotalCost:           o.TotalCost(),
		OrderDate:           o.OrderDate(),
		UpdatedAt:           o.UpdatedAt(),
		Files:               files,
	}
}

// toDomain reconstructs an order aggregate from its database rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var binding *order.BindingColorType
	if dto.BindingColorType != nil {
		b := order.BindingColorType(*dto.BindingColorType)
		binding = &b
	}

	files := make([]order.StoredFile, 0, len(dto.Files))
	for _, f := range dto.Files {
		files = append(files, order.StoredFile{
			Name:         f.Name,
			OriginalName: f.OriginalName,
			Size:         f.Size,
			MIMEType:     f.Type,
			Path:         f.Path,
			UploadDate:   f.UploadDate,
		})
	}

	details := order.Details{
		FullName:            dto.FullName,
		PhoneNumber:         dto.PhoneNumber,
		PrintType:           order.PrintType(dto.PrintType),
		BindingColorType:    binding,
		Copies:              dto.Copies,
		PaperSize:           order.PaperSize(dto.PaperSize),
		PrintSide:           order.PrintSide(dto.PrintSide),
		SelectedPages:       dto.SelectedPages,
		ColorPages:          dto.ColorPages,
		BwPages:             dto.BwPages,
		SpecialInstructions: dto.SpecialInstructions,
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		details,
		files,
		order.Status(dto.Status),
		dto.TotalCost,
		dto.OrderDate,
		dto.UpdatedAt,
	)
}
