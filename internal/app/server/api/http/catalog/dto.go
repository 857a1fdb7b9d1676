package catalog

type seedsInput struct{}

type seedInput struct {
	SeedID int `path:"seedId" doc:"ID семени" example:"1"`
}

type tipInput struct{}
