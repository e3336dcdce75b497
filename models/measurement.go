package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Units of measure carried on BOQ items.
const (
	UnitSFT  = "SFT"  // square feet
	UnitRFT  = "RFT"  // running feet
	UnitCUM  = "CUM"  // cubic measure
	UnitNOS  = "NOS"  // count
	UnitLUMP = "LUMP" // lump sum
)

// DefaultGSTRate applies when a BOQ item does not carry its own rate.
const DefaultGSTRate = 18.0

// BOQItem is one scope-of-work line in a project's bill of quantities.
// CompletedScope grows with recorded measurements and may exceed
// TotalScope; overruns are flagged, never rejected.
type BOQItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProjectID      primitive.ObjectID `bson:"projectId" json:"projectId"`
	ItemName       string             `bson:"itemName" json:"itemName"`
	Unit           string             `bson:"unit" json:"unit"`
	Rate           float64            `bson:"rate" json:"rate"`
	TotalScope     float64            `bson:"totalScope" json:"totalScope"`
	CompletedScope float64            `bson:"completedScope" json:"completedScope"`
	GSTRate        float64            `bson:"gstRate" json:"gstRate"`
	LastUpdated    time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// DailyMeasurement is one field measurement event. Immutable once written.
type DailyMeasurement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BOQID          primitive.ObjectID `bson:"boqId" json:"boqId"`
	Date           time.Time          `bson:"date" json:"date"`
	Length         float64            `bson:"length" json:"length"`
	Width          float64            `bson:"width" json:"width"`
	Quantity       float64            `bson:"quantity" json:"quantity"`
	Remarks        string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	SupervisorName string             `bson:"supervisorName" json:"supervisorName"`
}

type (
	// BOQItemRequest creates a BOQ line item.
	BOQItemRequest struct {
		ProjectID  string  `json:"projectId" validate:"required"`
		ItemName   string  `json:"itemName" validate:"required"`
		Unit       string  `json:"unit" validate:"required,oneof=SFT RFT CUM NOS LUMP"`
		Rate       float64 `json:"rate" validate:"gte=0"`
		TotalScope float64 `json:"totalScope" validate:"gte=0"`
		GSTRate    float64 `json:"gstRate" validate:"gte=0"`
	}

	// BOQItemUpdateRequest partially updates a BOQ line item.
	BOQItemUpdateRequest struct {
		ItemName   *string  `json:"itemName,omitempty"`
		Unit       *string  `json:"unit,omitempty"`
		Rate       *float64 `json:"rate,omitempty"`
		TotalScope *float64 `json:"totalScope,omitempty"`
		GSTRate    *float64 `json:"gstRate,omitempty"`
	}

	// MeasurementRequest records field measurements against a BOQ item.
	MeasurementRequest struct {
		BOQID          string  `json:"boqId" binding:"required"`
		Length         float64 `json:"length"`
		Width          float64 `json:"width"`
		Remarks        string  `json:"remarks"`
		SupervisorName string  `json:"supervisorName"`
	}
)
