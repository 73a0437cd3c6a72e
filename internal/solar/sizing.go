package solar

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Demand describes the daily electricity consumption to be covered
type Demand struct {
	HouseholdDaily float64 `mapstructure:"household_daily"` // kWh/day
	CarPer100km    float64 `mapstructure:"car_per_100km"`   // kWh/100 km
	DailyDistance  float64 `mapstructure:"daily_distance"`  // km/day
	CarPerSession  float64 `mapstructure:"car_per_session"` // kWh per daily charging session, drawn from the grid side
}

// SizingConfig holds the system efficiencies
type SizingConfig struct {
	ChargingEfficiency float64 `mapstructure:"charging_efficiency"` // η_charge, car charger
	PVEfficiency       float64 `mapstructure:"pv_efficiency"`       // η_pv, module and system
	TiltFactor         float64 `mapstructure:"tilt_factor"`         // η_tilt, tilted/horizontal irradiance
}

// DefaultSizingConfig returns typical values for a rooftop system
func DefaultSizingConfig() SizingConfig {
	return SizingConfig{
		ChargingEfficiency: 0.90,
		PVEfficiency:       0.15,
		TiltFactor:         0.9,
	}
}

// Sizing holds the intermediate energies and the required module area
type Sizing struct {
	Radiation       float64 // q_global (kWh/m²/day)
	TiltedRadiation float64 // q_tilt (kWh/m²/day)

	CarDaily     float64 // kWh/day at the battery
	CarEffective float64 // kWh/day drawn from the PV system
	TotalDaily   float64 // kWh/day
	PVNeeded     float64 // kWh/day of incident solar energy

	Area float64 // m²
}

// Validate reports every out-of-range demand value
func (d Demand) Validate() error {
	var result *multierror.Error
	check := func(name string, v float64) {
		if v < 0 {
			result = multierror.Append(result, fmt.Errorf("%s must not be negative, got %.4g", name, v))
		}
	}
	check("household consumption", d.HouseholdDaily)
	check("car consumption", d.CarPer100km)
	check("daily distance", d.DailyDistance)
	check("charging session energy", d.CarPerSession)

	if d.HouseholdDaily+d.CarPer100km*d.DailyDistance+d.CarPerSession == 0 {
		result = multierror.Append(result, fmt.Errorf("no consumption given"))
	}
	return result.ErrorOrNil()
}

// Validate reports every efficiency outside (0, 1]
func (c SizingConfig) Validate() error {
	var result *multierror.Error
	check := func(name string, v float64) {
		if v <= 0 || v > 1 {
			result = multierror.Append(result, fmt.Errorf("%s must be in (0, 1], got %.4g", name, v))
		}
	}
	check("charging efficiency", c.ChargingEfficiency)
	check("pv efficiency", c.PVEfficiency)
	check("tilt factor", c.TiltFactor)
	return result.ErrorOrNil()
}

// Size computes the module area that covers the demand at the given mean
// global radiation (kWh/m²/day).
func Size(d Demand, cfg SizingConfig, radiation float64) (*Sizing, error) {
	var errs *multierror.Error
	errs = multierror.Append(errs, d.Validate(), cfg.Validate())
	if radiation <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("radiation must be positive, got %.4g", radiation))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	s := &Sizing{Radiation: radiation}
	// Session energy is metered at the wall, so no charging loss applies
	driving := d.CarPer100km * d.DailyDistance / 100
	s.CarDaily = driving + d.CarPerSession
	s.CarEffective = driving/cfg.ChargingEfficiency + d.CarPerSession
	s.TotalDaily = d.HouseholdDaily + s.CarEffective
	s.PVNeeded = s.TotalDaily / cfg.PVEfficiency
	s.TiltedRadiation = radiation * cfg.TiltFactor
	s.Area = s.PVNeeded / s.TiltedRadiation

	return s, nil
}
