package engagement

import "strings"

// NormalizeEmail lowercases and trims a viewer email before lookup/insert.
// No syntactic validation happens here; the resolver trusts caller-side
// validation and never verifies the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MergeFields builds the column updates for newly supplied optional viewer
// fields. Empty inputs are dropped so an existing value is never overwritten
// with a blank.
func MergeFields(firstName, lastName, company string) map[string]interface{} {
	merge := map[string]interface{}{}
	if firstName = strings.TrimSpace(firstName); firstName != "" {
		merge["first_name"] = firstName
	}
	if lastName = strings.TrimSpace(lastName); lastName != "" {
		merge["last_name"] = lastName
	}
	if company = strings.TrimSpace(company); company != "" {
		merge["company"] = company
	}
	return merge
}
