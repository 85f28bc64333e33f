package domain

import "time"

type EnquiryKind string

const (
	EnquiryContact   EnquiryKind = "contact"
	EnquiryViewing   EnquiryKind = "viewing"
	EnquiryValuation EnquiryKind = "valuation"
)

type Enquiry struct {
	ID          string      `json:"id"`
	Kind        EnquiryKind `json:"kind"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Message     string      `json:"message"`
	ListingSlug *string     `json:"listingSlug,omitempty"`
	Locale      string      `json:"locale"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// FieldErrors maps a form field to a message id describing why it was rejected.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string { return ErrInvalidEnquiry.Error() }

func (fe FieldErrors) Unwrap() error { return ErrInvalidEnquiry }
