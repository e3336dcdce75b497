package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance statuses.
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceHalfDay = "HALF_DAY"
)

// Labour is one worker on a project roster. Deactivated, never deleted.
type Labour struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type,omitempty" json:"type,omitempty"`
	DailyWage float64            `bson:"dailyWage" json:"dailyWage"`
	ProjectID primitive.ObjectID `bson:"projectId" json:"projectId"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Attendance is one worker's status on one project for one day.
// LabourName is denormalized for the cross-site conflict check.
type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LabourID   primitive.ObjectID `bson:"labourId" json:"labourId"`
	LabourName string             `bson:"labourName" json:"labourName"`
	ProjectID  primitive.ObjectID `bson:"projectId" json:"projectId"`
	Date       string             `bson:"date" json:"date"` // YYYY-MM-DD
	Status     string             `bson:"status" json:"status"`
}

type (
	// LabourRequest adds a worker to a project roster.
	LabourRequest struct {
		ProjectID string  `json:"projectId" binding:"required"`
		Name      string  `json:"name" binding:"required"`
		Type      string  `json:"type"`
		Wage      float64 `json:"wage"`
	}

	// LabourUpdateRequest partially updates a worker.
	LabourUpdateRequest struct {
		Name *string  `json:"name,omitempty"`
		Type *string  `json:"type,omitempty"`
		Wage *float64 `json:"wage,omitempty"`
	}

	// AttendanceEntry is one row of a bulk attendance submission.
	AttendanceEntry struct {
		LabourID  string `json:"labourId" binding:"required"`
		ProjectID string `json:"projectId" binding:"required"`
		Status    string `json:"status" binding:"required"`
	}
)

// WorkLoad maps an attendance status to its share of a working day.
func WorkLoad(status string) float64 {
	switch status {
	case AttendancePresent:
		return 1.0
	case AttendanceHalfDay:
		return 0.5
	}
	return 0.0
}
