package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusPending is the status of every submission at creation.
const StatusPending = "pending"

type Lead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message"`
	Source    string    `json:"source"` // "contact" | "chat"
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type LeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

type PartnershipInquiry struct {
	CompanyName     string `json:"companyName"`
	ContactName     string `json:"contactName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Website         string `json:"website,omitempty"`
	PartnershipType string `json:"partnershipType"`
	Message         string `json:"message"`
	Status          string `json:"status"`
}

type JobApplication struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Location      string `json:"location"`
	LinkedIn      string `json:"linkedin,omitempty"`
	CoverLetter   string `json:"coverLetter"`
	JobTitle      string `json:"jobTitle"`
	Resume        int64  `json:"resume"`
	ResumeExcerpt string `json:"resumeExcerpt,omitempty"`
	Status        string `json:"status"`
}

// ResumeFile is an uploaded attachment as received from the browser.
type ResumeFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type Enrollment struct {
	ID                 uuid.UUID  `json:"id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone,omitempty"`
	Company            *string    `json:"company,omitempty"`
	TrainingProgram    string     `json:"trainingProgram"`
	TrainingType       string     `json:"trainingType"`
	ExperienceLevel    string     `json:"experienceLevel"`
	PreferredStartDate *time.Time `json:"preferredStartDate,omitempty"`
	Message            *string    `json:"message,omitempty"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type EnrollmentRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Company            string `json:"company"`
	TrainingProgram    string `json:"trainingProgram"`
	TrainingType       string `json:"trainingType"`
	ExperienceLevel    string `json:"experienceLevel"`
	PreferredStartDate string `json:"preferredStartDate"`
	Message            string `json:"message"`
}

// EnrollmentReceipt is what the enrollment endpoint returns on success.
type EnrollmentReceipt struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type EnrollmentFilter struct {
	Status string
	Email  string
	Limit  int
}
