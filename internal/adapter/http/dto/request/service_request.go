package request

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"plumbing_portal/internal/domain/entities"
	"strings"
)

var (
	ErrUnsupportedPhotoType = errors.New("photo must be a png, jpg or jpeg image")
	ErrPhotoTooLarge        = errors.New("photo exceeds the upload size limit")
)

var allowedPhotoExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

type CustomerInfoRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type ServiceDetailsRequest struct {
	Category          string `json:"category"`
	Type              string `json:"type"`
	Urgency           string `json:"urgency"`
	Description       string `json:"description"`
	ContactPreference string `json:"contact_preference"`
}

// ServiceRequestPayload is the JSON body of POST /v1/service-requests.
//
// Required fields are not tagged with binding rules: presence is checked by the
// intake use case so the API and the HTML form reject the same submissions.
type ServiceRequestPayload struct {
	CustomerInfo   CustomerInfoRequest   `json:"customer_info"`
	ServiceDetails ServiceDetailsRequest `json:"service_details"`
	PhotoUploaded  bool                  `json:"photo_uploaded"`
	AgreeTerms     bool                  `json:"agree_terms"`
}

func (p ServiceRequestPayload) ToEntity() entities.ServiceRequest {
	return entities.ServiceRequest{
		CustomerInfo: entities.CustomerInfo{
			FullName: p.CustomerInfo.FullName,
			Email:    p.CustomerInfo.Email,
			Phone:    p.CustomerInfo.Phone,
			Address:  p.CustomerInfo.Address,
		},
		ServiceDetails: entities.ServiceDetails{
			Category:          entities.Category(p.ServiceDetails.Category),
			Type:              p.ServiceDetails.Type,
			Urgency:           entities.Urgency(p.ServiceDetails.Urgency),
			Description:       p.ServiceDetails.Description,
			ContactPreference: entities.ContactPreference(p.ServiceDetails.ContactPreference),
		},
		PhotoUploaded: p.PhotoUploaded,
	}
}

// ServiceRequestForm is the multipart (or urlencoded) body posted by the request form.
type ServiceRequestForm struct {
	FullName          string                `form:"full_name"`
	Email             string                `form:"email"`
	Phone             string                `form:"phone"`
	Address           string                `form:"address"`
	Category          string                `form:"category"`
	Type              string                `form:"type"`
	Urgency           string                `form:"urgency"`
	Description       string                `form:"description"`
	ContactPreference string                `form:"contact_preference"`
	AgreeTerms        string                `form:"agree_terms"`
	Photo             *multipart.FileHeader `form:"photo"`
}

// TermsAccepted interprets the checkbox value; browsers send "on" for a checked box.
func (f ServiceRequestForm) TermsAccepted() bool {
	switch strings.ToLower(strings.TrimSpace(f.AgreeTerms)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// PhotoUploaded reports whether a photo was attached. The content itself is never read.
func (f ServiceRequestForm) PhotoUploaded(maxBytes int64) (bool, error) {
	if f.Photo == nil || f.Photo.Filename == "" {
		return false, nil
	}
	ext := strings.ToLower(filepath.Ext(f.Photo.Filename))
	if !allowedPhotoExtensions[ext] {
		return false, ErrUnsupportedPhotoType
	}
	if maxBytes > 0 && f.Photo.Size > maxBytes {
		return false, ErrPhotoTooLarge
	}
	return true, nil
}

func (f ServiceRequestForm) ToEntity(photoUploaded bool) entities.ServiceRequest {
	return entities.ServiceRequest{
		CustomerInfo: entities.CustomerInfo{
			FullName: f.FullName,
			Email:    f.Email,
			Phone:    f.Phone,
			Address:  f.Address,
		},
		ServiceDetails: entities.ServiceDetails{
			Category:          entities.Category(f.Category),
			Type:              f.Type,
			Urgency:           entities.Urgency(f.Urgency),
			Description:       f.Description,
			ContactPreference: entities.ContactPreference(f.ContactPreference),
		},
		PhotoUploaded: photoUploaded,
	}
}
