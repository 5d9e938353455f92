package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Type classifies a parsed phone number.
type Type string

const (
	// TypeFixedLine represents a fixed-line number.
	TypeFixedLine Type = "FIXED_LINE"
	// TypeMobile represents a mobile number.
	TypeMobile Type = "MOBILE"
	// TypeFixedLineOrMobile represents a number that could be either.
	TypeFixedLineOrMobile Type = "FIXED_LINE_OR_MOBILE"
	// TypeTollFree represents a toll-free number.
	TypeTollFree Type = "TOLL_FREE"
	// TypeVoip represents a VoIP number.
	TypeVoip Type = "VOIP"
	// TypeUnknown represents an unknown or unclassified type.
	TypeUnknown Type = "UNKNOWN"
)

// Parsed is the result of parsing and validating a candidate phone number.
type Parsed struct {
	IsValid        bool   `json:"is_valid"`
	E164Format     string `json:"e164_format"`
	NationalFormat string `json:"national_format"`
	Region         string `json:"region"`
	Type           Type   `json:"type"`
}

// Parse parses a candidate phone number and returns its validity, canonical
// formats and type. Region defaults to US, which matches the upload data.
func Parse(raw, region string) (*Parsed, error) {
	if raw == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}
	if region == "" {
		region = "US"
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &Parsed{
		IsValid:        phonenumbers.IsValidNumber(parsed),
		E164Format:     phonenumbers.Format(parsed, phonenumbers.E164),
		NationalFormat: phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		Region:         phonenumbers.GetRegionCodeForNumber(parsed),
		Type:           typeOf(phonenumbers.GetNumberType(parsed)),
	}, nil
}

// NationalFormat normalizes a phone number to national format. Invalid
// numbers are rejected.
func NationalFormat(raw, region string) (string, error) {
	p, err := Parse(raw, region)
	if err != nil {
		return "", err
	}
	if !p.IsValid {
		return "", fmt.Errorf("invalid phone number")
	}
	return p.NationalFormat, nil
}

// typeOf converts phonenumbers.PhoneNumberType to a Type.
func typeOf(t phonenumbers.PhoneNumberType) Type {
	switch t {
	case phonenumbers.FIXED_LINE:
		return TypeFixedLine
	case phonenumbers.MOBILE:
		return TypeMobile
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return TypeFixedLineOrMobile
	case phonenumbers.TOLL_FREE:
		return TypeTollFree
	case phonenumbers.VOIP:
		return TypeVoip
	default:
		return TypeUnknown
	}
}
