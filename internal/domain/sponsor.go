package domain

import (
	"fmt"
	"strings"
	"time"
)

// SponsorID is the two-part sponsor identifier used everywhere a sponsor is
// referenced. Sponsors carry no surrogate key: queries must always match on
// both the cluster and the specific code together.
type SponsorID struct {
	Cluster  string
	Specific string
}

// NewSponsorID validates both halves and returns the composite identifier.
func NewSponsorID(cluster, specific string) (SponsorID, error) {
	cluster = strings.TrimSpace(cluster)
	specific = strings.TrimSpace(specific)
	if cluster == "" || specific == "" {
		return SponsorID{}, ErrInvalidSponsorID
	}
	return SponsorID{Cluster: cluster, Specific: specific}, nil
}

// ParseSponsorID is the inverse of String: it splits a "cluster-specific"
// code on the first dash. Anything that does not yield exactly two non-empty
// segments is rejected with ErrInvalidSponsorID.
func ParseSponsorID(code string) (SponsorID, error) {
	idx := strings.Index(code, "-")
	if idx <= 0 || idx == len(code)-1 {
		return SponsorID{}, fmt.Errorf("%w: %q", ErrInvalidSponsorID, code)
	}
	return NewSponsorID(code[:idx], code[idx+1:])
}

func (id SponsorID) String() string {
	return id.Cluster + "-" + id.Specific
}

// IsZero reports whether the identifier is empty, which repositories use to
// distinguish sponsor-bound rows from broadcast rows.
func (id SponsorID) IsZero() bool {
	return id.Cluster == "" && id.Specific == ""
}

// SponsorStatus enumerates sponsor lifecycle states.
type SponsorStatus string

const (
	SponsorStatusActive   SponsorStatus = "active"
	SponsorStatusInactive SponsorStatus = "inactive"
	SponsorStatusPending  SponsorStatus = "pending"
)

// Sponsor represents a monthly contributor backing one or more beneficiaries.
type Sponsor struct {
	ID               SponsorID
	FullName         string
	Phone            string
	Email            string
	Address          string
	MonthlyAmountInt int64 // pledged amount per month, in cents
	Status           SponsorStatus
	Diaspora         bool
	Locale           string
	AgreedDate       time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
