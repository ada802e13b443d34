package weather

// ProviderResponse mirrors the OpenWeatherMap current-weather payload.
// Members the provider may omit are pointers so the transformer can tell
// absence from a zero value.
type ProviderResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Base string `json:"base"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		TempMin   float64  `json:"temp_min"`
		TempMax   float64  `json:"temp_max"`
		Pressure  int      `json:"pressure"`
		Humidity  int      `json:"humidity"`
		SeaLevel  int      `json:"sea_level"`
		GrndLevel int      `json:"grnd_level"`
	} `json:"main"`
	Visibility *int `json:"visibility"`
	Wind       struct {
		Speed float64  `json:"speed"`
		Deg   *int     `json:"deg"`
		Gust  *float64 `json:"gust"`
	} `json:"wind"`
	Clouds *struct {
		All int `json:"all"`
	} `json:"clouds"`
	Rain *Precipitation `json:"rain"`
	Snow *Precipitation `json:"snow"`
	Dt   int64          `json:"dt"`
	Sys  struct {
		Type    int    `json:"type"`
		ID      int    `json:"id"`
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Cod      int    `json:"cod"`
}
