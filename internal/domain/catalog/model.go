package catalog

// Seed is an entry of the bundled seed catalog.
type Seed struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Class           string `json:"class"`
	Type            string `json:"type"`
	Years           string `json:"years"`
	Position        string `json:"position"`
	Height          int    `json:"height"`
	SowingType      string `json:"sowing_type"`
	SowingStart     string `json:"sowing_start"`
	SowingEnd       string `json:"sowing_end"`
	HarvestStart    string `json:"harvest_start"`
	HarvestEnd      string `json:"harvest_end"`
	DaysGermination int    `json:"days_germination"`
	DaysHarvest     int    `json:"days_harvest"`
	Description     string `json:"description"`
	CultivationInfo string `json:"cultivation_info"`
}

type Tip struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Bundle is the full reference data set loaded on reset.
type Bundle struct {
	Seeds []Seed
	Tips  []Tip
}
