// Package models holds the wire models for the multi-step loan application form.
package models

import "loansign/internal/esign"

// LoanApplication carries everything the form collects across its
// personal, employment, and loan steps. Values are kept as strings; the
// template document renders them verbatim and nothing here is persisted.
type LoanApplication struct {
	// Personal info
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	SSN         string `json:"socialSecurityNo"`
	PhoneNumber string `json:"phoneNo"`

	// Employment info
	EmployerName string `json:"employerName"`
	JobTitle     string `json:"jobTitle"`
	YearsAtWork  string `json:"currentYearsAtWork"`
	AnnualIncome string `json:"annualIncome"`

	// Loan info
	LoanAmount     string `json:"loanAmount"`
	Purpose        string `json:"selectedPurpose"`
	PropertyAddr   string `json:"propertyAddr"`
	EstimatedValue string `json:"estimatedValue"`
	EmailAddress   string `json:"emailAddress"`

	// Populated by the signing flow
	TemplateID string `json:"templateId,omitempty"`
	DocumentID string `json:"documentId,omitempty"`
	SignLink   string `json:"signLink,omitempty"`
}

// SignerName is the display name placed on the signature request
func (a *LoanApplication) SignerName() string {
	return a.FirstName + " " + a.LastName
}

// FormFields flattens the application into the template's existing form
// fields. Field ids match the ids on the loan application template document.
func (a *LoanApplication) FormFields() []esign.FormField {
	return []esign.FormField{
		{ID: "FirstName", Value: a.FirstName},
		{ID: "LastName", Value: a.LastName},
		{ID: "DOB", Value: a.DateOfBirth},
		{ID: "SSN", Value: a.SSN},
		{ID: "PhoneNumber", Value: a.PhoneNumber},
		{ID: "Email", Value: a.EmailAddress},
		{ID: "EmployerName", Value: a.EmployerName},
		{ID: "JobTitle", Value: a.JobTitle},
		{ID: "Years", Value: a.YearsAtWork},
		{ID: "AnnualIncome", Value: a.AnnualIncome},
		{ID: "LoanAmount", Value: a.LoanAmount},
		{ID: "Purpose", Value: a.Purpose},
		{ID: "PropAddr", Value: a.PropertyAddr},
		{ID: "PropValue", Value: a.EstimatedValue},
	}
}
