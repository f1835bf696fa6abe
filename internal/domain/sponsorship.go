package domain

import "time"

// SponsorshipStatus enumerates link states between sponsor and beneficiary.
type SponsorshipStatus string

const (
	SponsorshipActive SponsorshipStatus = "active"
	SponsorshipEnded  SponsorshipStatus = "ended"
)

// Sponsorship links one sponsor to one beneficiary for a period of time.
type Sponsorship struct {
	ID            string
	SponsorID     SponsorID
	BeneficiaryID string
	StartDate     time.Time
	EndDate       *time.Time
	Status        SponsorshipStatus
	CreatedAt     time.Time
}

// Document is stored file metadata attached to a sponsor, a beneficiary, or
// both. The binary itself lives outside the database.
type Document struct {
	ID            string
	SponsorID     SponsorID // zero value when beneficiary-only
	BeneficiaryID *string
	Title         string
	FileName      string
	MIMEType      string
	StorageKey    string
	UploadedBy    string // employee id
	CreatedAt     time.Time
}
