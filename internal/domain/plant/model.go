package plant

import (
	"time"

	"github.com/google/uuid"

	"junebug/internal/domain/catalog"
)

// Plant is a user's own copy of a catalog seed. Later catalog resets do not touch it.
type Plant struct {
	ID              uuid.UUID `json:"id"`
	SeedID          int       `json:"seedId"`
	Name            string    `json:"name"`
	Class           string    `json:"class"`
	Type            string    `json:"type"`
	Years           string    `json:"years"`
	Position        string    `json:"position"`
	SowingStart     string    `json:"sowing_start"`
	SowingEnd       string    `json:"sowing_end"`
	HarvestStart    string    `json:"harvest_start"`
	HarvestEnd      string    `json:"harvest_end"`
	DaysGermination int       `json:"days_germination"`
	DaysHarvest     int       `json:"days_harvest"`
	Description     string    `json:"description"`
	User            uuid.UUID `json:"user"`
	Created         time.Time `json:"created"`
}

type CreateRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	SeedID int `json:"seedId" minimum:"1" doc:"ID семени из каталога" example:"1"`
}

// FromSeed snapshots the catalog entry for the given owner.
func FromSeed(s catalog.Seed, owner uuid.UUID, now time.Time) Plant {
	return Plant{
		ID:              uuid.New(),
		SeedID:          s.ID,
		Name:            s.Name,
		Class:           s.Class,
		Type:            s.Type,
		Years:           s.Years,
		Position:        s.Position,
		SowingStart:     s.SowingStart,
		SowingEnd:       s.SowingEnd,
		HarvestStart:    s.HarvestStart,
		HarvestEnd:      s.HarvestEnd,
		DaysGermination: s.DaysGermination,
		DaysHarvest:     s.DaysHarvest,
		Description:     s.Description,
		User:            owner,
		Created:         now,
	}
}
