package service

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used for guest numbers written without a country code.
const DefaultPhoneRegion = "US"

// normalizePhone returns phone in E.164 form. Numbers without a leading +
// are read as local to region.
func normalizePhone(phone, region string) (string, bool) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", true
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}
