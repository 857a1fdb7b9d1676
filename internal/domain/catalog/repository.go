package catalog

import "context"

type Repository interface {
	ListSeeds(ctx context.Context) ([]Seed, error)
	FindSeed(ctx context.Context, id int) (Seed, error)
	ListTips(ctx context.Context) ([]Tip, error)

	// Replace* drop the previous contents entirely.
	ReplaceSeeds(ctx context.Context, seeds []Seed) error
	ReplaceTips(ctx context.Context, tips []Tip) error
}
