package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexaid/backend/internal/model"
)

func TestMergeRecord_NonEmptyNeverOverwrittenByEmpty(t *testing.T) {
	record := &model.CaseRecord{
		CaseType: "Eviction",
		Summary:  "Keep me.",
		Parties:  model.Parties{UserName: "Jane Roe"},
	}
	candidate := &model.ExtractedCaseData{
		Parties: model.Parties{OpposingParty: "Oak Street Properties LLC"},
	}

	changes := mergeRecord(record, candidate)

	require.Len(t, changes, 1)
	assert.Equal(t, "opposing_party", changes[0].Field)
	assert.Equal(t, "Eviction", record.CaseType)
	assert.Equal(t, "Keep me.", record.Summary)
	assert.Equal(t, "Jane Roe", record.Parties.UserName)
}

func TestMergeRecord_OverwriteRecordsOldAndNew(t *testing.T) {
	record := &model.CaseRecord{CaseType: "Small Claims"}
	candidate := &model.ExtractedCaseData{CaseType: "Eviction"}

	changes := mergeRecord(record, candidate)

	require.Len(t, changes, 1)
	assert.Equal(t, "case_type", changes[0].Field)
	assert.Equal(t, "Small Claims", changes[0].Old)
	assert.Equal(t, "Eviction", changes[0].New)
	assert.Equal(t, "Eviction", record.CaseType)
}

func TestMergeRecord_KeyDatesUnionByLabelAndDate(t *testing.T) {
	record := &model.CaseRecord{
		KeyDates: []model.KeyDate{
			{Label: "Answer due", Date: "2026-09-01", IsDeadline: true},
		},
	}
	candidate := &model.ExtractedCaseData{
		KeyDates: []model.KeyDate{
			{Label: "Answer due", Date: "2026-09-01", IsDeadline: true}, // duplicate
			{Label: "Hearing", Date: "2026-09-15", IsDeadline: true},    // new
		},
	}

	changes := mergeRecord(record, candidate)

	require.Len(t, changes, 1)
	assert.Equal(t, "key_dates", changes[0].Field)
	require.Len(t, record.KeyDates, 2)
}

func TestMergeRecord_Idempotent(t *testing.T) {
	record := &model.CaseRecord{}
	candidate := &model.ExtractedCaseData{
		CaseType:  "Eviction",
		Summary:   "Notice received.",
		CourtInfo: model.CourtInfo{CourtName: "Travis County Justice Court"},
		KeyDates:  []model.KeyDate{{Label: "Answer due", Date: "2026-09-01", IsDeadline: true}},
	}

	first := mergeRecord(record, candidate)
	second := mergeRecord(record, candidate)

	assert.NotEmpty(t, first)
	assert.Empty(t, second, "re-merging the same candidate must be a no-op")
	assert.Len(t, record.KeyDates, 1)
}
