package service

import (
	"fmt"

	"lexaid/backend/internal/model"
)

// mergeRecord folds an extraction candidate into an existing record and
// returns one FieldChange per field that actually changed. A non-empty value
// already on the record is never overwritten by an empty candidate value.
// Key dates are unioned by (label, date), so re-merging the same candidate
// is a no-op.
func mergeRecord(record *model.CaseRecord, candidate *model.ExtractedCaseData) []FieldChange {
	var changes []FieldChange

	merge := func(field string, dst *string, src string) {
		if src == "" || src == *dst {
			return
		}
		changes = append(changes, FieldChange{Field: field, Old: *dst, New: src})
		*dst = src
	}

	merge("case_type", &record.CaseType, candidate.CaseType)
	merge("summary", &record.Summary, candidate.Summary)

	merge("court_name", &record.CourtInfo.CourtName, candidate.CourtInfo.CourtName)
	merge("county", &record.CourtInfo.County, candidate.CourtInfo.County)
	merge("case_number", &record.CourtInfo.CaseNumber, candidate.CourtInfo.CaseNumber)
	merge("court_address", &record.CourtInfo.Address, candidate.CourtInfo.Address)
	merge("court_phone", &record.CourtInfo.Phone, candidate.CourtInfo.Phone)
	merge("court_email", &record.CourtInfo.Email, candidate.CourtInfo.Email)

	merge("user_name", &record.Parties.UserName, candidate.Parties.UserName)
	merge("user_address", &record.Parties.UserAddress, candidate.Parties.UserAddress)
	merge("opposing_party", &record.Parties.OpposingParty, candidate.Parties.OpposingParty)
	merge("opposing_address", &record.Parties.OpposingAddress, candidate.Parties.OpposingAddress)
	merge("opposing_phone", &record.Parties.OpposingPhone, candidate.Parties.OpposingPhone)
	merge("opposing_email", &record.Parties.OpposingEmail, candidate.Parties.OpposingEmail)
	merge("attorney_name", &record.Parties.AttorneyName, candidate.Parties.AttorneyName)
	merge("attorney_phone", &record.Parties.AttorneyPhone, candidate.Parties.AttorneyPhone)
	merge("attorney_email", &record.Parties.AttorneyEmail, candidate.Parties.AttorneyEmail)

	if added := mergeKeyDates(record, candidate.KeyDates); added > 0 {
		changes = append(changes, FieldChange{
			Field: "key_dates",
			New:   fmt.Sprintf("%d new date(s)", added),
		})
	}

	return changes
}

// mergeKeyDates unions candidate dates into the record, keyed by
// (label, date), and returns how many were new.
func mergeKeyDates(record *model.CaseRecord, candidates []model.KeyDate) int {
	type dateKey struct {
		label string
		date  string
	}
	seen := make(map[dateKey]struct{}, len(record.KeyDates))
	for _, kd := range record.KeyDates {
		seen[dateKey{kd.Label, kd.Date}] = struct{}{}
	}

	added := 0
	for _, kd := range candidates {
		key := dateKey{kd.Label, kd.Date}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		record.KeyDates = append(record.KeyDates, kd)
		added++
	}
	return added
}
