// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastName, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldState, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// Website applies equality check predicate on the "website" field. It's identical to WebsiteEQ.
func Website(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldWebsite, v))
}

// FacebookURL applies equality check predicate on the "facebook_url" field. It's identical to FacebookURLEQ.
func FacebookURL(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFacebookURL, v))
}

// EnrichedEmail applies equality check predicate on the "enriched_email" field. It's identical to EnrichedEmailEQ.
func EnrichedEmail(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmail, v))
}

// EnrichedEmailConfidence applies equality check predicate on the "enriched_email_confidence" field. It's identical to EnrichedEmailConfidenceEQ.
func EnrichedEmailConfidence(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailSource applies equality check predicate on the "enriched_email_source" field. It's identical to EnrichedEmailSourceEQ.
func EnrichedEmailSource(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmailSource, v))
}

// EmailValid applies equality check predicate on the "email_valid" field. It's identical to EmailValidEQ.
func EmailValid(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailValid, v))
}

// EmailValidationStatus applies equality check predicate on the "email_validation_status" field. It's identical to EmailValidationStatusEQ.
func EmailValidationStatus(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailValidationStatus, v))
}

// EnrichedPhone applies equality check predicate on the "enriched_phone" field. It's identical to EnrichedPhoneEQ.
func EnrichedPhone(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhone, v))
}

// EnrichedPhoneConfidence applies equality check predicate on the "enriched_phone_confidence" field. It's identical to EnrichedPhoneConfidenceEQ.
func EnrichedPhoneConfidence(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneSource applies equality check predicate on the "enriched_phone_source" field. It's identical to EnrichedPhoneSourceEQ.
func EnrichedPhoneSource(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneFormatted applies equality check predicate on the "enriched_phone_formatted" field. It's identical to EnrichedPhoneFormattedEQ.
func EnrichedPhoneFormatted(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneFormatted, v))
}

// SocialFollowers applies equality check predicate on the "social_followers" field. It's identical to SocialFollowersEQ.
func SocialFollowers(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSocialFollowers, v))
}

// SocialAbout applies equality check predicate on the "social_about" field. It's identical to SocialAboutEQ.
func SocialAbout(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSocialAbout, v))
}

// CompletenessScore applies equality check predicate on the "completeness_score" field. It's identical to CompletenessScoreEQ.
func CompletenessScore(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompletenessScore, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldConfidenceScore, v))
}

// ErrorDetail applies equality check predicate on the "error_detail" field. It's identical to ErrorDetailEQ.
func ErrorDetail(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldErrorDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameIsNil applies the IsNil predicate on the "last_name" field.
func LastNameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldLastName))
}

// LastNameNotNil applies the NotNil predicate on the "last_name" field.
func LastNameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldLastName))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldLastName, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCompany, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldState, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldPhone, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEmail, v))
}

// WebsiteEQ applies the EQ predicate on the "website" field.
func WebsiteEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldWebsite, v))
}

// WebsiteNEQ applies the NEQ predicate on the "website" field.
func WebsiteNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldWebsite, v))
}

// WebsiteIn applies the In predicate on the "website" field.
func WebsiteIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldWebsite, vs...))
}

// WebsiteNotIn applies the NotIn predicate on the "website" field.
func WebsiteNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldWebsite, vs...))
}

// WebsiteGT applies the GT predicate on the "website" field.
func WebsiteGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldWebsite, v))
}

// WebsiteGTE applies the GTE predicate on the "website" field.
func WebsiteGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldWebsite, v))
}

// WebsiteLT applies the LT predicate on the "website" field.
func WebsiteLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldWebsite, v))
}

// WebsiteLTE applies the LTE predicate on the "website" field.
func WebsiteLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldWebsite, v))
}

// WebsiteContains applies the Contains predicate on the "website" field.
func WebsiteContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldWebsite, v))
}

// WebsiteHasPrefix applies the HasPrefix predicate on the "website" field.
func WebsiteHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldWebsite, v))
}

// WebsiteHasSuffix applies the HasSuffix predicate on the "website" field.
func WebsiteHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldWebsite, v))
}

// WebsiteIsNil applies the IsNil predicate on the "website" field.
func WebsiteIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldWebsite))
}

// WebsiteNotNil applies the NotNil predicate on the "website" field.
func WebsiteNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldWebsite))
}

// WebsiteEqualFold applies the EqualFold predicate on the "website" field.
func WebsiteEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldWebsite, v))
}

// WebsiteContainsFold applies the ContainsFold predicate on the "website" field.
func WebsiteContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldWebsite, v))
}

// FacebookURLEQ applies the EQ predicate on the "facebook_url" field.
func FacebookURLEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFacebookURL, v))
}

// FacebookURLNEQ applies the NEQ predicate on the "facebook_url" field.
func FacebookURLNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFacebookURL, v))
}

// FacebookURLIn applies the In predicate on the "facebook_url" field.
func FacebookURLIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFacebookURL, vs...))
}

// FacebookURLNotIn applies the NotIn predicate on the "facebook_url" field.
func FacebookURLNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFacebookURL, vs...))
}

// FacebookURLGT applies the GT predicate on the "facebook_url" field.
func FacebookURLGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFacebookURL, v))
}

// FacebookURLGTE applies the GTE predicate on the "facebook_url" field.
func FacebookURLGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFacebookURL, v))
}

// FacebookURLLT applies the LT predicate on the "facebook_url" field.
func FacebookURLLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFacebookURL, v))
}

// FacebookURLLTE applies the LTE predicate on the "facebook_url" field.
func FacebookURLLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFacebookURL, v))
}

// FacebookURLContains applies the Contains predicate on the "facebook_url" field.
func FacebookURLContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldFacebookURL, v))
}

// FacebookURLHasPrefix applies the HasPrefix predicate on the "facebook_url" field.
func FacebookURLHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldFacebookURL, v))
}

// FacebookURLHasSuffix applies the HasSuffix predicate on the "facebook_url" field.
func FacebookURLHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldFacebookURL, v))
}

// FacebookURLIsNil applies the IsNil predicate on the "facebook_url" field.
func FacebookURLIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldFacebookURL))
}

// FacebookURLNotNil applies the NotNil predicate on the "facebook_url" field.
func FacebookURLNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldFacebookURL))
}

// FacebookURLEqualFold applies the EqualFold predicate on the "facebook_url" field.
func FacebookURLEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldFacebookURL, v))
}

// FacebookURLContainsFold applies the ContainsFold predicate on the "facebook_url" field.
func FacebookURLContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldFacebookURL, v))
}

// EnrichedEmailEQ applies the EQ predicate on the "enriched_email" field.
func EnrichedEmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmail, v))
}

// EnrichedEmailNEQ applies the NEQ predicate on the "enriched_email" field.
func EnrichedEmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedEmail, v))
}

// EnrichedEmailIn applies the In predicate on the "enriched_email" field.
func EnrichedEmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedEmail, vs...))
}

// EnrichedEmailNotIn applies the NotIn predicate on the "enriched_email" field.
func EnrichedEmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedEmail, vs...))
}

// EnrichedEmailGT applies the GT predicate on the "enriched_email" field.
func EnrichedEmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedEmail, v))
}

// EnrichedEmailGTE applies the GTE predicate on the "enriched_email" field.
func EnrichedEmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedEmail, v))
}

// EnrichedEmailLT applies the LT predicate on the "enriched_email" field.
func EnrichedEmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedEmail, v))
}

// EnrichedEmailLTE applies the LTE predicate on the "enriched_email" field.
func EnrichedEmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedEmail, v))
}

// EnrichedEmailContains applies the Contains predicate on the "enriched_email" field.
func EnrichedEmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEnrichedEmail, v))
}

// EnrichedEmailHasPrefix applies the HasPrefix predicate on the "enriched_email" field.
func EnrichedEmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEnrichedEmail, v))
}

// EnrichedEmailHasSuffix applies the HasSuffix predicate on the "enriched_email" field.
func EnrichedEmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEnrichedEmail, v))
}

// EnrichedEmailIsNil applies the IsNil predicate on the "enriched_email" field.
func EnrichedEmailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedEmail))
}

// EnrichedEmailNotNil applies the NotNil predicate on the "enriched_email" field.
func EnrichedEmailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedEmail))
}

// EnrichedEmailEqualFold applies the EqualFold predicate on the "enriched_email" field.
func EnrichedEmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEnrichedEmail, v))
}

// EnrichedEmailContainsFold applies the ContainsFold predicate on the "enriched_email" field.
func EnrichedEmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEnrichedEmail, v))
}

// EnrichedEmailConfidenceEQ applies the EQ predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceNEQ applies the NEQ predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceNEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceIn applies the In predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedEmailConfidence, vs...))
}

// EnrichedEmailConfidenceNotIn applies the NotIn predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceNotIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedEmailConfidence, vs...))
}

// EnrichedEmailConfidenceGT applies the GT predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceGT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceGTE applies the GTE predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceGTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceLT applies the LT predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceLT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceLTE applies the LTE predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceLTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedEmailConfidence, v))
}

// EnrichedEmailConfidenceIsNil applies the IsNil predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedEmailConfidence))
}

// EnrichedEmailConfidenceNotNil applies the NotNil predicate on the "enriched_email_confidence" field.
func EnrichedEmailConfidenceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedEmailConfidence))
}

// EnrichedEmailSourceEQ applies the EQ predicate on the "enriched_email_source" field.
func EnrichedEmailSourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceNEQ applies the NEQ predicate on the "enriched_email_source" field.
func EnrichedEmailSourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceIn applies the In predicate on the "enriched_email_source" field.
func EnrichedEmailSourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedEmailSource, vs...))
}

// EnrichedEmailSourceNotIn applies the NotIn predicate on the "enriched_email_source" field.
func EnrichedEmailSourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedEmailSource, vs...))
}

// EnrichedEmailSourceGT applies the GT predicate on the "enriched_email_source" field.
func EnrichedEmailSourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceGTE applies the GTE predicate on the "enriched_email_source" field.
func EnrichedEmailSourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceLT applies the LT predicate on the "enriched_email_source" field.
func EnrichedEmailSourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceLTE applies the LTE predicate on the "enriched_email_source" field.
func EnrichedEmailSourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceContains applies the Contains predicate on the "enriched_email_source" field.
func EnrichedEmailSourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceHasPrefix applies the HasPrefix predicate on the "enriched_email_source" field.
func EnrichedEmailSourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceHasSuffix applies the HasSuffix predicate on the "enriched_email_source" field.
func EnrichedEmailSourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceIsNil applies the IsNil predicate on the "enriched_email_source" field.
func EnrichedEmailSourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedEmailSource))
}

// EnrichedEmailSourceNotNil applies the NotNil predicate on the "enriched_email_source" field.
func EnrichedEmailSourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedEmailSource))
}

// EnrichedEmailSourceEqualFold applies the EqualFold predicate on the "enriched_email_source" field.
func EnrichedEmailSourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEnrichedEmailSource, v))
}

// EnrichedEmailSourceContainsFold applies the ContainsFold predicate on the "enriched_email_source" field.
func EnrichedEmailSourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEnrichedEmailSource, v))
}

// EmailValidEQ applies the EQ predicate on the "email_valid" field.
func EmailValidEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailValid, v))
}

// EmailValidNEQ applies the NEQ predicate on the "email_valid" field.
func EmailValidNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmailValid, v))
}

// EmailValidIsNil applies the IsNil predicate on the "email_valid" field.
func EmailValidIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEmailValid))
}

// EmailValidNotNil applies the NotNil predicate on the "email_valid" field.
func EmailValidNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEmailValid))
}

// EmailValidationStatusEQ applies the EQ predicate on the "email_validation_status" field.
func EmailValidationStatusEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmailValidationStatus, v))
}

// EmailValidationStatusNEQ applies the NEQ predicate on the "email_validation_status" field.
func EmailValidationStatusNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmailValidationStatus, v))
}

// EmailValidationStatusIn applies the In predicate on the "email_validation_status" field.
func EmailValidationStatusIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmailValidationStatus, vs...))
}

// EmailValidationStatusNotIn applies the NotIn predicate on the "email_validation_status" field.
func EmailValidationStatusNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmailValidationStatus, vs...))
}

// EmailValidationStatusGT applies the GT predicate on the "email_validation_status" field.
func EmailValidationStatusGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmailValidationStatus, v))
}

// EmailValidationStatusGTE applies the GTE predicate on the "email_validation_status" field.
func EmailValidationStatusGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmailValidationStatus, v))
}

// EmailValidationStatusLT applies the LT predicate on the "email_validation_status" field.
func EmailValidationStatusLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmailValidationStatus, v))
}

// EmailValidationStatusLTE applies the LTE predicate on the "email_validation_status" field.
func EmailValidationStatusLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmailValidationStatus, v))
}

// EmailValidationStatusContains applies the Contains predicate on the "email_validation_status" field.
func EmailValidationStatusContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEmailValidationStatus, v))
}

// EmailValidationStatusHasPrefix applies the HasPrefix predicate on the "email_validation_status" field.
func EmailValidationStatusHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEmailValidationStatus, v))
}

// EmailValidationStatusHasSuffix applies the HasSuffix predicate on the "email_validation_status" field.
func EmailValidationStatusHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEmailValidationStatus, v))
}

// EmailValidationStatusIsNil applies the IsNil predicate on the "email_validation_status" field.
func EmailValidationStatusIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEmailValidationStatus))
}

// EmailValidationStatusNotNil applies the NotNil predicate on the "email_validation_status" field.
func EmailValidationStatusNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEmailValidationStatus))
}

// EmailValidationStatusEqualFold applies the EqualFold predicate on the "email_validation_status" field.
func EmailValidationStatusEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEmailValidationStatus, v))
}

// EmailValidationStatusContainsFold applies the ContainsFold predicate on the "email_validation_status" field.
func EmailValidationStatusContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEmailValidationStatus, v))
}

// EnrichedPhoneEQ applies the EQ predicate on the "enriched_phone" field.
func EnrichedPhoneEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhone, v))
}

// EnrichedPhoneNEQ applies the NEQ predicate on the "enriched_phone" field.
func EnrichedPhoneNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedPhone, v))
}

// EnrichedPhoneIn applies the In predicate on the "enriched_phone" field.
func EnrichedPhoneIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedPhone, vs...))
}

// EnrichedPhoneNotIn applies the NotIn predicate on the "enriched_phone" field.
func EnrichedPhoneNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedPhone, vs...))
}

// EnrichedPhoneGT applies the GT predicate on the "enriched_phone" field.
func EnrichedPhoneGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedPhone, v))
}

// EnrichedPhoneGTE applies the GTE predicate on the "enriched_phone" field.
func EnrichedPhoneGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedPhone, v))
}

// EnrichedPhoneLT applies the LT predicate on the "enriched_phone" field.
func EnrichedPhoneLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedPhone, v))
}

// EnrichedPhoneLTE applies the LTE predicate on the "enriched_phone" field.
func EnrichedPhoneLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedPhone, v))
}

// EnrichedPhoneContains applies the Contains predicate on the "enriched_phone" field.
func EnrichedPhoneContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEnrichedPhone, v))
}

// EnrichedPhoneHasPrefix applies the HasPrefix predicate on the "enriched_phone" field.
func EnrichedPhoneHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEnrichedPhone, v))
}

// EnrichedPhoneHasSuffix applies the HasSuffix predicate on the "enriched_phone" field.
func EnrichedPhoneHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEnrichedPhone, v))
}

// EnrichedPhoneIsNil applies the IsNil predicate on the "enriched_phone" field.
func EnrichedPhoneIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedPhone))
}

// EnrichedPhoneNotNil applies the NotNil predicate on the "enriched_phone" field.
func EnrichedPhoneNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedPhone))
}

// EnrichedPhoneEqualFold applies the EqualFold predicate on the "enriched_phone" field.
func EnrichedPhoneEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEnrichedPhone, v))
}

// EnrichedPhoneContainsFold applies the ContainsFold predicate on the "enriched_phone" field.
func EnrichedPhoneContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEnrichedPhone, v))
}

// EnrichedPhoneConfidenceEQ applies the EQ predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceNEQ applies the NEQ predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceNEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceIn applies the In predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedPhoneConfidence, vs...))
}

// EnrichedPhoneConfidenceNotIn applies the NotIn predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceNotIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedPhoneConfidence, vs...))
}

// EnrichedPhoneConfidenceGT applies the GT predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceGT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceGTE applies the GTE predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceGTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceLT applies the LT predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceLT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceLTE applies the LTE predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceLTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedPhoneConfidence, v))
}

// EnrichedPhoneConfidenceIsNil applies the IsNil predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedPhoneConfidence))
}

// EnrichedPhoneConfidenceNotNil applies the NotNil predicate on the "enriched_phone_confidence" field.
func EnrichedPhoneConfidenceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedPhoneConfidence))
}

// EnrichedPhoneSourceEQ applies the EQ predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceNEQ applies the NEQ predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceIn applies the In predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedPhoneSource, vs...))
}

// EnrichedPhoneSourceNotIn applies the NotIn predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedPhoneSource, vs...))
}

// EnrichedPhoneSourceGT applies the GT predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceGTE applies the GTE predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceLT applies the LT predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceLTE applies the LTE predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceContains applies the Contains predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceHasPrefix applies the HasPrefix predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceHasSuffix applies the HasSuffix predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceIsNil applies the IsNil predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedPhoneSource))
}

// EnrichedPhoneSourceNotNil applies the NotNil predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedPhoneSource))
}

// EnrichedPhoneSourceEqualFold applies the EqualFold predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneSourceContainsFold applies the ContainsFold predicate on the "enriched_phone_source" field.
func EnrichedPhoneSourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEnrichedPhoneSource, v))
}

// EnrichedPhoneFormattedEQ applies the EQ predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedNEQ applies the NEQ predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedIn applies the In predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEnrichedPhoneFormatted, vs...))
}

// EnrichedPhoneFormattedNotIn applies the NotIn predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEnrichedPhoneFormatted, vs...))
}

// EnrichedPhoneFormattedGT applies the GT predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedGTE applies the GTE predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedLT applies the LT predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedLTE applies the LTE predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedContains applies the Contains predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedHasPrefix applies the HasPrefix predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedHasSuffix applies the HasSuffix predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedIsNil applies the IsNil predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldEnrichedPhoneFormatted))
}

// EnrichedPhoneFormattedNotNil applies the NotNil predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldEnrichedPhoneFormatted))
}

// EnrichedPhoneFormattedEqualFold applies the EqualFold predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEnrichedPhoneFormatted, v))
}

// EnrichedPhoneFormattedContainsFold applies the ContainsFold predicate on the "enriched_phone_formatted" field.
func EnrichedPhoneFormattedContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEnrichedPhoneFormatted, v))
}

// WebsiteEmailsIsNil applies the IsNil predicate on the "website_emails" field.
func WebsiteEmailsIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldWebsiteEmails))
}

// WebsiteEmailsNotNil applies the NotNil predicate on the "website_emails" field.
func WebsiteEmailsNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldWebsiteEmails))
}

// WebsitePhonesIsNil applies the IsNil predicate on the "website_phones" field.
func WebsitePhonesIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldWebsitePhones))
}

// WebsitePhonesNotNil applies the NotNil predicate on the "website_phones" field.
func WebsitePhonesNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldWebsitePhones))
}

// SocialLinksIsNil applies the IsNil predicate on the "social_links" field.
func SocialLinksIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSocialLinks))
}

// SocialLinksNotNil applies the NotNil predicate on the "social_links" field.
func SocialLinksNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSocialLinks))
}

// SocialFollowersEQ applies the EQ predicate on the "social_followers" field.
func SocialFollowersEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSocialFollowers, v))
}

// SocialFollowersNEQ applies the NEQ predicate on the "social_followers" field.
func SocialFollowersNEQ(v int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSocialFollowers, v))
}

// SocialFollowersIn applies the In predicate on the "social_followers" field.
func SocialFollowersIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSocialFollowers, vs...))
}

// SocialFollowersNotIn applies the NotIn predicate on the "social_followers" field.
func SocialFollowersNotIn(vs ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSocialFollowers, vs...))
}

// SocialFollowersGT applies the GT predicate on the "social_followers" field.
func SocialFollowersGT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSocialFollowers, v))
}

// SocialFollowersGTE applies the GTE predicate on the "social_followers" field.
func SocialFollowersGTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSocialFollowers, v))
}

// SocialFollowersLT applies the LT predicate on the "social_followers" field.
func SocialFollowersLT(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSocialFollowers, v))
}

// SocialFollowersLTE applies the LTE predicate on the "social_followers" field.
func SocialFollowersLTE(v int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSocialFollowers, v))
}

// SocialFollowersIsNil applies the IsNil predicate on the "social_followers" field.
func SocialFollowersIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSocialFollowers))
}

// SocialFollowersNotNil applies the NotNil predicate on the "social_followers" field.
func SocialFollowersNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSocialFollowers))
}

// SocialAboutEQ applies the EQ predicate on the "social_about" field.
func SocialAboutEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSocialAbout, v))
}

// SocialAboutNEQ applies the NEQ predicate on the "social_about" field.
func SocialAboutNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSocialAbout, v))
}

// SocialAboutIn applies the In predicate on the "social_about" field.
func SocialAboutIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSocialAbout, vs...))
}

// SocialAboutNotIn applies the NotIn predicate on the "social_about" field.
func SocialAboutNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSocialAbout, vs...))
}

// SocialAboutGT applies the GT predicate on the "social_about" field.
func SocialAboutGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSocialAbout, v))
}

// SocialAboutGTE applies the GTE predicate on the "social_about" field.
func SocialAboutGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSocialAbout, v))
}

// SocialAboutLT applies the LT predicate on the "social_about" field.
func SocialAboutLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSocialAbout, v))
}

// SocialAboutLTE applies the LTE predicate on the "social_about" field.
func SocialAboutLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSocialAbout, v))
}

// SocialAboutContains applies the Contains predicate on the "social_about" field.
func SocialAboutContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldSocialAbout, v))
}

// SocialAboutHasPrefix applies the HasPrefix predicate on the "social_about" field.
func SocialAboutHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldSocialAbout, v))
}

// SocialAboutHasSuffix applies the HasSuffix predicate on the "social_about" field.
func SocialAboutHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldSocialAbout, v))
}

// SocialAboutIsNil applies the IsNil predicate on the "social_about" field.
func SocialAboutIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSocialAbout))
}

// SocialAboutNotNil applies the NotNil predicate on the "social_about" field.
func SocialAboutNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSocialAbout))
}

// SocialAboutEqualFold applies the EqualFold predicate on the "social_about" field.
func SocialAboutEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldSocialAbout, v))
}

// SocialAboutContainsFold applies the ContainsFold predicate on the "social_about" field.
func SocialAboutContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldSocialAbout, v))
}

// CompletenessScoreEQ applies the EQ predicate on the "completeness_score" field.
func CompletenessScoreEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompletenessScore, v))
}

// CompletenessScoreNEQ applies the NEQ predicate on the "completeness_score" field.
func CompletenessScoreNEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCompletenessScore, v))
}

// CompletenessScoreIn applies the In predicate on the "completeness_score" field.
func CompletenessScoreIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCompletenessScore, vs...))
}

// CompletenessScoreNotIn applies the NotIn predicate on the "completeness_score" field.
func CompletenessScoreNotIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCompletenessScore, vs...))
}

// CompletenessScoreGT applies the GT predicate on the "completeness_score" field.
func CompletenessScoreGT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCompletenessScore, v))
}

// CompletenessScoreGTE applies the GTE predicate on the "completeness_score" field.
func CompletenessScoreGTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCompletenessScore, v))
}

// CompletenessScoreLT applies the LT predicate on the "completeness_score" field.
func CompletenessScoreLT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCompletenessScore, v))
}

// CompletenessScoreLTE applies the LTE predicate on the "completeness_score" field.
func CompletenessScoreLTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCompletenessScore, v))
}

// CompletenessScoreIsNil applies the IsNil predicate on the "completeness_score" field.
func CompletenessScoreIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCompletenessScore))
}

// CompletenessScoreNotNil applies the NotNil predicate on the "completeness_score" field.
func CompletenessScoreNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCompletenessScore))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldConfidenceScore))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorDetailEQ applies the EQ predicate on the "error_detail" field.
func ErrorDetailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldErrorDetail, v))
}

// ErrorDetailNEQ applies the NEQ predicate on the "error_detail" field.
func ErrorDetailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldErrorDetail, v))
}

// ErrorDetailIn applies the In predicate on the "error_detail" field.
func ErrorDetailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldErrorDetail, vs...))
}

// ErrorDetailNotIn applies the NotIn predicate on the "error_detail" field.
func ErrorDetailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldErrorDetail, vs...))
}

// ErrorDetailGT applies the GT predicate on the "error_detail" field.
func ErrorDetailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldErrorDetail, v))
}

// ErrorDetailGTE applies the GTE predicate on the "error_detail" field.
func ErrorDetailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldErrorDetail, v))
}

// ErrorDetailLT applies the LT predicate on the "error_detail" field.
func ErrorDetailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldErrorDetail, v))
}

// ErrorDetailLTE applies the LTE predicate on the "error_detail" field.
func ErrorDetailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldErrorDetail, v))
}

// ErrorDetailContains applies the Contains predicate on the "error_detail" field.
func ErrorDetailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldErrorDetail, v))
}

// ErrorDetailHasPrefix applies the HasPrefix predicate on the "error_detail" field.
func ErrorDetailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldErrorDetail, v))
}

// ErrorDetailHasSuffix applies the HasSuffix predicate on the "error_detail" field.
func ErrorDetailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldErrorDetail, v))
}

// ErrorDetailIsNil applies the IsNil predicate on the "error_detail" field.
func ErrorDetailIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldErrorDetail))
}

// ErrorDetailNotNil applies the NotNil predicate on the "error_detail" field.
func ErrorDetailNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldErrorDetail))
}

// ErrorDetailEqualFold applies the EqualFold predicate on the "error_detail" field.
func ErrorDetailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldErrorDetail, v))
}

// ErrorDetailContainsFold applies the ContainsFold predicate on the "error_detail" field.
func ErrorDetailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldErrorDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBatch applies the HasEdge predicate on the "batch" edge.
func HasBatch() predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchWith applies the HasEdge predicate on the "batch" edge with a given conditions (other predicates).
func HasBatchWith(preds ...predicate.EnrichmentBatch) predicate.Contact {
	return predicate.Contact(func(s *sql.Selector) {
		step := newBatchStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
