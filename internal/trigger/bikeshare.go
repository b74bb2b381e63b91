package trigger

import (
	"context"
	"fmt"

	"pulse/internal/domain/entity"
	"pulse/internal/geo"

	"github.com/paulmach/orb"
)

// BikeShareOptions configures the bike-share evaluator.
type BikeShareOptions struct {
	SearchRadiusKm     float64 // Stations beyond this distance are ignored. Default 0.5.
	ShortageThreshold  int     // BIKE_SHORTAGE at or below this many bikes (but above zero). Default 2.
	AvailableThreshold int     // BIKE_SURPLUS at or below this many free racks (but above zero). Default 2.
	Enabled            bool
}

// DefaultBikeShareOptions returns the production defaults.
func DefaultBikeShareOptions() BikeShareOptions {
	return BikeShareOptions{SearchRadiusKm: 0.5, ShortageThreshold: 2, AvailableThreshold: 2, Enabled: true}
}

// BikeShareEvaluator flags nearby bike-share stations running out of bikes or
// of free racks. Requires the bike interest and a known user location.
// Shortage is checked before surplus.
type BikeShareEvaluator struct {
	opts BikeShareOptions
}

// NewBikeShareEvaluator creates a bike-share evaluator.
func NewBikeShareEvaluator(opts BikeShareOptions) *BikeShareEvaluator {
	return &BikeShareEvaluator{opts: opts}
}

func (e *BikeShareEvaluator) Type() string { return TypeBikeShare }

func (e *BikeShareEvaluator) Priority() int { return entity.ConditionBikeShortage.Priority() }

func (e *BikeShareEvaluator) Description() string {
	return "주변 따릉이 대여소의 잔여 자전거/거치대 부족을 알립니다"
}

func (e *BikeShareEvaluator) Enabled() bool { return e.opts.Enabled }

func (e *BikeShareEvaluator) Evaluate(_ context.Context, ec *entity.EvaluationContext) (*entity.TriggerResult, error) {
	if !ec.HasInterest(entity.InterestBike) || ec.Location() == nil {
		return entity.NotTriggered(), nil
	}

	records, ok := asSlice(ec.Source(entity.SourceBikeShare))
	if !ok {
		return entity.NotTriggered(), nil
	}

	stations := e.nearbyStations(records, *ec.Location())

	// Shortage takes precedence over surplus.
	for _, station := range stations {
		if station.availableBikes > 0 && station.availableBikes <= e.opts.ShortageThreshold {
			return entity.NewTriggerResult(
				entity.ConditionBikeShortage,
				"따릉이 대여 알림",
				fmt.Sprintf("'%s' 대여소에 자전거가 %d대만 남았습니다. 서두르세요.", station.name, station.availableBikes),
			).WithLocationName(station.name).WithMetadata(entity.MetadataKeyStationID, station.id), nil
		}
	}

	for _, station := range stations {
		if station.availableRacks > 0 && station.availableRacks <= e.opts.AvailableThreshold {
			return entity.NewTriggerResult(
				entity.ConditionBikeSurplus,
				"따릉이 반납 알림",
				fmt.Sprintf("'%s' 대여소의 빈 거치대가 %d개뿐입니다. 다른 대여소 반납을 고려하세요.", station.name, station.availableRacks),
			).WithLocationName(station.name).WithMetadata(entity.MetadataKeyStationID, station.id), nil
		}
	}

	return entity.NotTriggered(), nil
}

type bikeStation struct {
	id             string
	name           string
	availableBikes int
	availableRacks int
}

// nearbyStations keeps only well-formed station records within the search
// radius, preserving upstream order.
func (e *BikeShareEvaluator) nearbyStations(records []any, location orb.Point) []bikeStation {
	stations := make([]bikeStation, 0, len(records))
	for _, record := range records {
		m, ok := asMap(record)
		if !ok {
			continue
		}

		lat, latOK := floatField(m, "latitude", "stationLatitude")
		lng, lngOK := floatField(m, "longitude", "stationLongitude")
		if !latOK || !lngOK {
			continue
		}
		if !geo.WithinRadiusKm(location, orb.Point{lng, lat}, e.opts.SearchRadiusKm) {
			continue
		}

		id, idOK := stringField(m, "stationId")
		name, nameOK := stringField(m, "stationName")
		if !idOK || !nameOK {
			continue
		}

		bikes, bikesOK := intField(m, "availableBikes", "parkingBikeTotCnt")
		racks, racksOK := intField(m, "availableRacks", "rackTotCnt")
		if !bikesOK && !racksOK {
			continue
		}

		stations = append(stations, bikeStation{
			id:             id,
			name:           name,
			availableBikes: bikes,
			availableRacks: racks,
		})
	}

	return stations
}
