package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	StatusRunning   ProjectStatus = "RUNNING"
	StatusOnHold    ProjectStatus = "ON_HOLD"
	StatusDelayed   ProjectStatus = "DELAYED"
	StatusCompleted ProjectStatus = "COMPLETED"
	StatusPlanned   ProjectStatus = "PLANNED"
)

// Project is the aggregate root: one construction site under contract.
// City and supervisor names are denormalized so list views need no joins.
type Project struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	ClientName string             `bson:"clientName" json:"clientName"`

	// Address breakdown
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	PlotNo   string `bson:"plotNo,omitempty" json:"plotNo,omitempty"`
	Colony   string `bson:"colony,omitempty" json:"colony,omitempty"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	State    string `bson:"state,omitempty" json:"state,omitempty"`

	// Specifications
	ProjectType string  `bson:"projectType,omitempty" json:"projectType,omitempty"`
	SquareFeet  float64 `bson:"squareFeet,omitempty" json:"squareFeet,omitempty"`
	Budget      float64 `bson:"budget,omitempty" json:"budget,omitempty"`

	// Compliance
	ReraNumber    string `bson:"reraNumber,omitempty" json:"reraNumber,omitempty"`
	FireNocNumber string `bson:"fireNocNumber,omitempty" json:"fireNocNumber,omitempty"`

	Status      ProjectStatus `bson:"status" json:"status"`
	StartDate   time.Time     `bson:"startDate" json:"startDate"`
	LabourCount int           `bson:"labourCount" json:"labourCount"`

	CityID   primitive.ObjectID `bson:"cityId,omitempty" json:"cityId,omitempty"`
	CityName string             `bson:"cityName,omitempty" json:"cityName,omitempty"`

	SupervisorID   primitive.ObjectID `bson:"supervisorId,omitempty" json:"supervisorId,omitempty"`
	SupervisorName string             `bson:"supervisorName,omitempty" json:"supervisorName,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// City is an operating region; projects hang off it for reporting.
type City struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	State     string             `bson:"state" json:"state"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// SiteUpdate is one progress report from the field, optionally with photos.
type SiteUpdate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProjectID   primitive.ObjectID `bson:"projectId" json:"projectId"`
	ProjectName string             `bson:"projectName" json:"projectName"`
	Content     string             `bson:"content" json:"content"`
	PhotoURL1   string             `bson:"photoUrl1,omitempty" json:"photoUrl1,omitempty"`
	PhotoURL2   string             `bson:"photoUrl2,omitempty" json:"photoUrl2,omitempty"`
	UpdateTime  time.Time          `bson:"updateTime" json:"updateTime"`
}

type (
	// ProjectRequest creates or fully updates a project.
	ProjectRequest struct {
		Name          string        `json:"name" binding:"required"`
		ClientName    string        `json:"clientName" binding:"required"`
		Location      string        `json:"location"`
		PlotNo        string        `json:"plotNo"`
		Colony        string        `json:"colony"`
		Pincode       string        `json:"pincode"`
		District      string        `json:"district"`
		State         string        `json:"state"`
		ProjectType   string        `json:"projectType"`
		SquareFeet    float64       `json:"squareFeet"`
		Budget        float64       `json:"budget"`
		ReraNumber    string        `json:"reraNumber"`
		FireNocNumber string        `json:"fireNocNumber"`
		CityID        string        `json:"cityId" binding:"required"`
		SupervisorID  string        `json:"supervisorId"`
		StartDate     time.Time     `json:"startDate"`
		Status        ProjectStatus `json:"status"`
	}

	// ProjectQuickUpdateRequest adjusts status and labour count only.
	ProjectQuickUpdateRequest struct {
		ID          string        `json:"id" binding:"required"`
		Status      ProjectStatus `json:"status"`
		LabourCount *int          `json:"labourCount,omitempty"`
	}

	// CityRequest creates a city.
	CityRequest struct {
		Name  string `json:"name" binding:"required"`
		State string `json:"state" binding:"required"`
	}

	// PublicProjectView is the sanitized shape served without auth.
	PublicProjectView struct {
		Name       string        `json:"name"`
		ClientName string        `json:"clientName"`
		Location   string        `json:"location"`
		StartDate  time.Time     `json:"startDate"`
		Status     ProjectStatus `json:"status"`
	}
)
