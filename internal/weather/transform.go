package weather

import (
	"fmt"

	"weathercli.app/pkg/errors"
)

// Transform reshapes a provider payload into a Report. It is a pure
// function: the same payload and units always yield the same report.
// Required fields (city name, country code, current temperature) fail the
// transformation when absent; everything optional degrades to null or "N/A".
func Transform(raw *ProviderResponse, units Units) (*Report, error) {
	if raw.Name == "" {
		return nil, errors.NewMissingFieldError("name")
	}
	if raw.Sys.Country == "" {
		return nil, errors.NewMissingFieldError("sys.country")
	}
	if raw.Main.Temp == nil {
		return nil, errors.NewMissingFieldError("main.temp")
	}

	var condMain, condDescription, condIcon string
	if len(raw.Weather) > 0 {
		condMain = raw.Weather[0].Main
		condDescription = raw.Weather[0].Description
		condIcon = raw.Weather[0].Icon
	}

	visibility := "N/A"
	if raw.Visibility != nil {
		visibility = fmt.Sprintf("%.1f km", float64(*raw.Visibility)/1000)
	}

	clouds := "N/A"
	if raw.Clouds != nil {
		clouds = fmt.Sprintf("%d%%", raw.Clouds.All)
	}

	return &Report{
		Location: Location{
			City:    raw.Name,
			Country: raw.Sys.Country,
			Coordinates: Coordinates{
				Lat: raw.Coord.Lat,
				Lon: raw.Coord.Lon,
			},
		},
		Conditions: Conditions{
			Main:        condMain,
			Description: condDescription,
			Icon:        condIcon,
			Temperature: Temperature{
				Current:   *raw.Main.Temp,
				FeelsLike: raw.Main.FeelsLike,
				Min:       raw.Main.TempMin,
				Max:       raw.Main.TempMax,
				Unit:      units.TemperatureLabel(),
			},
			Pressure:   fmt.Sprintf("%d hPa", raw.Main.Pressure),
			Humidity:   fmt.Sprintf("%d%%", raw.Main.Humidity),
			Visibility: visibility,
			Wind: Wind{
				Speed:  fmt.Sprintf("%g %s", raw.Wind.Speed, units.SpeedLabel()),
				Degree: raw.Wind.Deg,
				Gust:   raw.Wind.Gust,
			},
			Clouds: clouds,
			Rain:   raw.Rain,
			Snow:   raw.Snow,
			Sun: Sun{
				Sunrise: raw.Sys.Sunrise,
				Sunset:  raw.Sys.Sunset,
			},
			Timezone:  raw.Timezone,
			Timestamp: raw.Dt,
		},
	}, nil
}
