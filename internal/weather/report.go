package weather

// Report is the document this tool emits. Optional members (wind degree
// and gust, rain, snow) are pointers so they marshal as explicit null
// when the provider omits them.
type Report struct {
	Location   Location   `json:"location"`
	Conditions Conditions `json:"weather"`
}

// Location identifies the place the report describes
type Location struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates are the provider's coordinates, passed through unchanged
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Conditions holds the reshaped weather payload
type Conditions struct {
	Main        string         `json:"main"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Temperature Temperature    `json:"temperature"`
	Pressure    string         `json:"pressure"`
	Humidity    string         `json:"humidity"`
	Visibility  string         `json:"visibility"`
	Wind        Wind           `json:"wind"`
	Clouds      string         `json:"clouds"`
	Rain        *Precipitation `json:"rain"`
	Snow        *Precipitation `json:"snow"`
	Sun         Sun            `json:"sun"`
	Timezone    int            `json:"timezone"`
	Timestamp   int64          `json:"timestamp"`
}

// Temperature carries the temperature readings plus their unit label
type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feels_like"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Unit      string  `json:"unit"`
}

// Wind describes wind conditions; speed carries the unit suffix
type Wind struct {
	Speed  string   `json:"speed"`
	Degree *int     `json:"degree"`
	Gust   *float64 `json:"gust"`
}

// Precipitation is the provider's rain/snow volume block in millimeters
type Precipitation struct {
	OneHour   *float64 `json:"1h,omitempty"`
	ThreeHour *float64 `json:"3h,omitempty"`
}

// Sun holds sunrise and sunset as epoch seconds
type Sun struct {
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}
