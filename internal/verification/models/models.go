package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FarmerEntry is one record of the farmer registry.
type FarmerEntry struct {
	Mobile           string  `json:"mobile"`
	FarmerDID        string  `json:"farmer_did"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	StateCode        string  `json:"state_code"`
	DistrictCode     string  `json:"district_code"`
	LandAcres        float64 `json:"land_acres"`
	Crop             string  `json:"crop"`
	Verified         bool    `json:"verified"`
	RegistrationDate string  `json:"registration_date"`
	IPFSCID          string  `json:"ipfscid"`
}

// Metadata describes a registry snapshot.
type Metadata struct {
	Version      string `json:"version"`
	LastUpdated  string `json:"last_updated"`
	TotalFarmers int    `json:"total_farmers"`
	Description  string `json:"description"`
}

// Database is the JSON seed format of the registry.
type Database struct {
	Farmers  []FarmerEntry `json:"farmers"`
	Metadata Metadata      `json:"metadata"`
}

// VerifyResult answers a mobile verification request.
type VerifyResult struct {
	Verified   bool   `json:"verified"`
	FarmerDID  string `json:"farmer_did,omitempty"`
	FarmerName string `json:"farmer_name,omitempty"`
	Location   string `json:"location,omitempty"`
	Message    string `json:"message"`
}

// Verification outcome messages.
const (
	MessageVerified         = "farmer verified"
	MessageNotRegistered    = "mobile number is not registered"
	MessagePending          = "registration is pending verification"
	MessageIdentityMismatch = "mobile number does not match the farmer DID"
)

// NormalizeMobile strips separators and an Indian country prefix so
// "+91 98765-43210" and "9876543210" address the same entry.
func NormalizeMobile(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		return digits[2:]
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		return digits[1:]
	}
	return digits
}

// DeriveDID returns the registry DID for a mobile number: the hex SHA-256 of
// the normalized number with a 0x prefix.
func DeriveDID(mobile string) string {
	sum := sha256.Sum256([]byte(NormalizeMobile(mobile)))
	return "0x" + hex.EncodeToString(sum[:])
}
