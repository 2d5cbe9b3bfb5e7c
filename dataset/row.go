// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

// Column names of the source data.
const (
	NameColumn        = "PrincessName"
	PopularityColumn  = "PopularityScore"
	HairColorColumn   = "HairColor"
	EyeColorColumn    = "EyeColor"
	IconicColumn      = "IsIconic"
	TikTokViewsColumn = "TikTokHashtagViewsMillions"
	BoxOfficeColumn   = "BoxOfficeMillions"
)

// RequiredColumns are the columns that must be present in the header
// of the source data, in the order they are reported when absent.
var RequiredColumns = []string{
	NameColumn, PopularityColumn, HairColorColumn, EyeColorColumn,
	IconicColumn, TikTokViewsColumn, BoxOfficeColumn,
}

// Iconic is the value of the IsIconic column for iconic characters.
// It is matched exactly.
const Iconic = "Yes"

// Row is one character record.
type Row struct {

	// Name is the display name of the character. Never empty.
	Name string

	// Popularity is the popularity score. Rows without one are dropped
	// when loading, so it is always present.
	Popularity float64

	// HairColor is the hair color category, or "" if absent.
	HairColor string

	// EyeColor is the eye color category, or "" if absent.
	EyeColor string

	// Iconic is the raw IsIconic value, compared against [Iconic].
	Iconic string

	// TikTokViews is the TikTok hashtag view count in millions.
	TikTokViews Float

	// BoxOffice is the box office revenue in millions.
	BoxOffice Float

	// Line is the 1-based line of the row in the source file,
	// or 0 for rows not read from a file.
	Line int
}

// IsIconic returns whether the row is flagged as iconic.
func (r Row) IsIconic() bool {
	return r.Iconic == Iconic
}
