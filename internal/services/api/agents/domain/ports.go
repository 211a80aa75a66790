package domain

import "context"

// ProfilesPort is the agents surface other modules and binaries consume
type ProfilesPort interface {
	Create(ctx context.Context, in CreateInput) (Agent, error)
	Get(ctx context.Context, id string) (Agent, error)
	Update(ctx context.Context, in UpdateInput) (Agent, error)
	Claim(ctx context.Context, id string) (Agent, error)
	Verify(ctx context.Context, id string, verified bool) (Agent, error)
	Directory(ctx context.Context, in DirectoryInput) ([]DirectoryRow, error)

	// Recompute re-derives the scoring patch for one stored profile without
	// changing any caller-owned field; buyside-rescore walks all IDs through it
	Recompute(ctx context.Context, id string) (Agent, error)
	ListIDs(ctx context.Context) ([]string, error)

	// SyncReviewStats replaces the stored rating summaries for the given
	// sources and re-derives the patch; sources absent from stats keep
	// whatever the feed import last wrote
	SyncReviewStats(ctx context.Context, id string, stats map[string]ReviewStat) (Agent, error)
}
