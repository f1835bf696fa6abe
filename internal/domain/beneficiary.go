package domain

import "time"

// BeneficiaryType distinguishes the two supported populations.
type BeneficiaryType string

const (
	BeneficiaryChild   BeneficiaryType = "child"
	BeneficiaryElderly BeneficiaryType = "elderly"
)

// BeneficiaryStatus enumerates placement states.
type BeneficiaryStatus string

const (
	BeneficiaryWaiting    BeneficiaryStatus = "waiting"
	BeneficiaryAssigned   BeneficiaryStatus = "assigned"
	BeneficiaryGraduated  BeneficiaryStatus = "graduated"
	BeneficiaryTerminated BeneficiaryStatus = "terminated"
)

// Beneficiary is a child or elderly person receiving support. Children carry
// a guardian reference; elderly beneficiaries usually do not.
type Beneficiary struct {
	ID             string
	Type           BeneficiaryType
	FullName       string
	DateOfBirth    time.Time
	Gender         string
	GuardianID     *string
	Status         BeneficiaryStatus
	SupportDetails string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Guardian is the caretaker of record for a child beneficiary.
type Guardian struct {
	ID        string
	FullName  string
	Relation  string
	Phone     string
	Address   string
	CreatedAt time.Time
}
