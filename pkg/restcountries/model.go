package restcountries

// Country is a country record as returned by the v2 API. Every field is optional because
// field filters trim the payload.
type Country struct {
	Name           string             `json:"name,omitempty"`
	TopLevelDomain []string           `json:"topLevelDomain,omitempty"`
	Alpha2Code     string             `json:"alpha2Code,omitempty"`
	Alpha3Code     string             `json:"alpha3Code,omitempty"`
	CallingCodes   []string           `json:"callingCodes,omitempty"`
	Capital        string             `json:"capital,omitempty"`
	AltSpellings   []string           `json:"altSpellings,omitempty"`
	Region         string             `json:"region,omitempty"`
	Subregion      string             `json:"subregion,omitempty"`
	Population     int64              `json:"population,omitempty"`
	LatLng         []float64          `json:"latlng,omitempty"`
	Demonym        string             `json:"demonym,omitempty"`
	Area           *float64           `json:"area,omitempty"`
	Gini           *float64           `json:"gini,omitempty"`
	Timezones      []string           `json:"timezones,omitempty"`
	Borders        []string           `json:"borders,omitempty"`
	NativeName     string             `json:"nativeName,omitempty"`
	NumericCode    string             `json:"numericCode,omitempty"`
	Currencies     []Currency         `json:"currencies,omitempty"`
	Languages      []Language         `json:"languages,omitempty"`
	Translations   map[string]string  `json:"translations,omitempty"`
	Flag           string             `json:"flag,omitempty"`
	RegionalBlocs  []RegionalBlocInfo `json:"regionalBlocs,omitempty"`
	Cioc           string             `json:"cioc,omitempty"`
}

type Currency struct {
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

type Language struct {
	ISO639_1   string `json:"iso639_1,omitempty"`
	ISO639_2   string `json:"iso639_2,omitempty"`
	Name       string `json:"name,omitempty"`
	NativeName string `json:"nativeName,omitempty"`
}

type RegionalBlocInfo struct {
	Acronym       string   `json:"acronym,omitempty"`
	Name          string   `json:"name,omitempty"`
	OtherAcronyms []string `json:"otherAcronyms,omitempty"`
	OtherNames    []string `json:"otherNames,omitempty"`
}

// Region is a continent-level grouping accepted by the region endpoint.
type Region string

const (
	RegionAfrica   Region = "africa"
	RegionAmericas Region = "americas"
	RegionAsia     Region = "asia"
	RegionEurope   Region = "europe"
	RegionOceania  Region = "oceania"
	RegionPolar    Region = "polar"
)

// Regions lists the regions known to the API.
func Regions() []Region {
	return []Region{RegionAfrica, RegionAmericas, RegionAsia, RegionEurope, RegionOceania, RegionPolar}
}

// RegionalBloc is an acronym accepted by the regional bloc endpoint.
type RegionalBloc string

const (
	BlocEU      RegionalBloc = "EU"      // European Union
	BlocEFTA    RegionalBloc = "EFTA"    // European Free Trade Association
	BlocCARICOM RegionalBloc = "CARICOM" // Caribbean Community
	BlocPA      RegionalBloc = "PA"      // Pacific Alliance
	BlocAU      RegionalBloc = "AU"      // African Union
	BlocUSAN    RegionalBloc = "USAN"    // Union of South American Nations
	BlocEEU     RegionalBloc = "EEU"     // Eurasian Economic Union
	BlocAL      RegionalBloc = "AL"      // Arab League
	BlocASEAN   RegionalBloc = "ASEAN"   // Association of Southeast Asian Nations
	BlocCAIS    RegionalBloc = "CAIS"    // Central American Integration System
	BlocCEFTA   RegionalBloc = "CEFTA"   // Central European Free Trade Agreement
	BlocNAFTA   RegionalBloc = "NAFTA"   // North American Free Trade Agreement
	BlocSAARC   RegionalBloc = "SAARC"   // South Asian Association for Regional Cooperation
)

// RegionalBlocs lists the blocs known to the API.
func RegionalBlocs() []RegionalBloc {
	return []RegionalBloc{
		BlocEU, BlocEFTA, BlocCARICOM, BlocPA, BlocAU, BlocUSAN, BlocEEU,
		BlocAL, BlocASEAN, BlocCAIS, BlocCEFTA, BlocNAFTA, BlocSAARC,
	}
}
