package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentItemFromRecord(t *testing.T) {
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		record  ContentRecord
		want    ContentItem
		wantErr bool
		errIs   error
	}{
		{
			name: "unverified",
			record: ContentRecord{
				Name:          "Zero-knowledge primer",
				Description:   "Intro",
				Creator:       "0xabc",
				Timestamp:     created.Unix(),
				CategoryIndex: 2,
				PublicViews:   120,
				PublicLikes:   7,
			},
			want: ContentItem{
				ID:          "content-1",
				Title:       "Zero-knowledge primer",
				Category:    CategoryCrypto,
				Description: "Intro",
				Creator:     "0xabc",
				CreatedAt:   created,
				PublicViews: 120,
				PublicLikes: 7,
			},
		},
		{
			name: "verified",
			record: ContentRecord{
				Name:           "Threat models",
				Timestamp:      created.Unix(),
				CategoryIndex:  4,
				IsVerified:     true,
				DecryptedValue: 77,
			},
			want: ContentItem{
				ID:            "content-1",
				Title:         "Threat models",
				Category:      CategorySecurity,
				CreatedAt:     created,
				VerifiedScore: intPtr(77),
			},
		},
		{
			name:    "unknown_category_index",
			record:  ContentRecord{Name: "x", CategoryIndex: 6},
			wantErr: true,
			errIs:   ErrUnknownCategory,
		},
		{
			name:    "verified_score_out_of_range",
			record:  ContentRecord{Name: "x", IsVerified: true, DecryptedValue: 300},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ContentItemFromRecord("content-1", tc.record)

			if tc.wantErr {
				require.Error(t, err)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.record.IsVerified, got.IsVerified())
		})
	}
}

func TestContentFields_Validate(t *testing.T) {
	valid := ContentFields{
		Title:         "FHE in practice",
		Category:      CategoryPrivacy,
		Description:   "Notes",
		InterestScore: 80,
	}

	cases := []struct {
		name    string
		mutate  func(f *ContentFields)
		wantErr bool
	}{
		{name: "valid", mutate: func(*ContentFields) {}},
		{name: "zero_score", mutate: func(f *ContentFields) { f.InterestScore = 0 }},
		{name: "max_score", mutate: func(f *ContentFields) { f.InterestScore = 100 }},
		{name: "blank_title", mutate: func(f *ContentFields) { f.Title = "  " }, wantErr: true},
		{name: "blank_description", mutate: func(f *ContentFields) { f.Description = "" }, wantErr: true},
		{name: "unknown_category", mutate: func(f *ContentFields) { f.Category = "General" }, wantErr: true},
		{name: "negative_score", mutate: func(f *ContentFields) { f.InterestScore = -1 }, wantErr: true},
		{name: "score_too_high", mutate: func(f *ContentFields) { f.InterestScore = 101 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid
			tc.mutate(&f)

			err := f.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidContent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryLookup(t *testing.T) {
	for i, c := range Categories {
		idx, err := c.Index()
		require.NoError(t, err)
		assert.Equal(t, uint8(i), idx) //nolint:gosec // test table is tiny

		back, err := CategoryFromIndex(uint64(idx))
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}

	_, err := CategoryFromIndex(uint64(len(Categories)))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseCategory("General")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	c, err := ParseCategory("Web3")
	require.NoError(t, err)
	assert.Equal(t, CategoryWeb3, c)
}
