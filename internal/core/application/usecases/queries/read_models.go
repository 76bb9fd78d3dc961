package queries

import (
	"time"

	"github.com/google/uuid"
)

// orderRow is the scan target for order reads. It mirrors the orders table
// without pulling the aggregate through the domain layer.
type orderRow struct {
	ID                  uuid.UUID
	OrderID             string
	FullName            string
	PhoneNumber         string
	PrintType           string
	BindingColorType    *string
	Copies              int
	PaperSize           string
	PrintSide           string
	SelectedPages       string
	ColorPages          string
	BwPages             string
	SpecialInstructions string
	Status              string
	TotalCost           float64
	OrderDate           time.Time
	UpdatedAt           time.Time
	Files               []fileRow `gorm:"foreignKey:OrderRef;references:ID"`
}

func (orderRow) TableName() string {
	return "orders"
}

// fileRow deliberately has no field for the path column: the storage
// locator stays behind the file store and never reaches a read model.
type fileRow struct {
	ID           uuid.UUID
	OrderRef     uuid.UUID
	Name         string
	OriginalName string
	Size         int64
	Type         string
	UploadDate   time.Time
}

func (fileRow) TableName() string {
	return "order_files"
}

// OrderFileResponse describes one uploaded document in the read model.
type OrderFileResponse struct {
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	Type         string    `json:"type"`
	UploadDate   time.Time `json:"uploadDate"`
}

// OrderResponse is the full order read model returned to clients.
type OrderResponse struct {
	OrderID             string              `json:"orderId"`
	FullName            string              `json:"fullName"`
	PhoneNumber         string              `json:"phoneNumber"`
	PrintType           string              `json:"printType"`
	BindingColorType    *string             `json:"bindingColorType,omitempty"`
	Copies              int                 `json:"copies"`
	PaperSize           string              `json:"paperSize"`
	PrintSide           string              `json:"printSide"`
	SelectedPages       string              `json:"selectedPages"`
	ColorPages          string              `json:"colorPages,omitempty"`
	BwPages             string              `json:"bwPages,omitempty"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	Files               []OrderFileResponse `json:"files"`
	Status              string              `json:"status"`
	TotalCost           float64             `json:"totalCost"`
	OrderDate           time.Time           `json:"orderDate"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

func toOrderResponse(row orderRow) OrderResponse {
	files := make([]OrderFileResponse, 0, len(row.Files))
	for _, f := range row.Files {
		files = append(files, OrderFileResponse{
			Name:         f.Name,
			OriginalName: f.OriginalName,
			Size:         f.Size,
			Type:         f.Type,
			UploadDate:   f.UploadDate,
		})
	}

	return OrderResponse{
		OrderID:             row.OrderID,
		FullName:            row.FullName,
		PhoneNumber:         row.PhoneNumber,
		PrintType:           row.PrintType,
		BindingColorType:    row.BindingColorType,
		Copies:              row.Copies,
		PaperSize:           row.PaperSize,
		PrintSide:           row.PrintSide,
		SelectedPages:       row.SelectedPages,
		ColorPages:          row.ColorPages,
		BwPages:             row.BwPages,
		SpecialInstructions: row.SpecialInstructions,
		Files:               files,
		Status:              row.Status,
		TotalCost:           row.TotalCost,
		OrderDate:           row.OrderDate,
		UpdatedAt:           row.UpdatedAt,
	}
}
