package covidapi

import "time"

// Country is one entry of the /countries listing. Slug is the lowercase
// hyphenated identifier the other endpoints accept.
type Country struct {
	Country string `json:"Country"`
	Slug    string `json:"Slug"`
	ISO2    string `json:"ISO2"`
}

// StatusRecord is one row of the /dayone and /total/country/.../status
// endpoints: a cumulative count for a single status on a single day.
type StatusRecord struct {
	Country string    `json:"Country"`
	Cases   int64     `json:"Cases"`
	Status  string    `json:"Status"`
	Date    time.Time `json:"Date"`
}

// CountryRecord is one row of /country/{slug} and /total/country/{slug}.
// Active may be negative or zero whenever the upstream stops reporting
// recoveries, this is a known data-quality gap and not an error.
type CountryRecord struct {
	Country   string    `json:"Country"`
	Province  string    `json:"Province"`
	City      string    `json:"City"`
	Confirmed int64     `json:"Confirmed"`
	Deaths    int64     `json:"Deaths"`
	Recovered int64     `json:"Recovered"`
	Active    int64     `json:"Active"`
	Date      time.Time `json:"Date"`
}

// SummaryCountry is the latest-available cross-country snapshot row from
// /summary.
type SummaryCountry struct {
	Country        string    `json:"Country"`
	CountryCode    string    `json:"CountryCode"`
	Slug           string    `json:"Slug"`
	NewConfirmed   int64     `json:"NewConfirmed"`
	TotalConfirmed int64     `json:"TotalConfirmed"`
	NewDeaths      int64     `json:"NewDeaths"`
	TotalDeaths    int64     `json:"TotalDeaths"`
	NewRecovered   int64     `json:"NewRecovered"`
	TotalRecovered int64     `json:"TotalRecovered"`
	Date           time.Time `json:"Date"`
}

type SummaryGlobal struct {
	NewConfirmed   int64 `json:"NewConfirmed"`
	TotalConfirmed int64 `json:"TotalConfirmed"`
	NewDeaths      int64 `json:"NewDeaths"`
	TotalDeaths    int64 `json:"TotalDeaths"`
	NewRecovered   int64 `json:"NewRecovered"`
	TotalRecovered int64 `json:"TotalRecovered"`
}

type Summary struct {
	Global    SummaryGlobal    `json:"Global"`
	Countries []SummaryCountry `json:"Countries"`
	Date      time.Time        `json:"Date"`
}
