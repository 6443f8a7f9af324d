package fixtures

import "github.com/trentd187/beetlerank-devapi/internal/models"

// Names recognised by the built-in catalog.
const (
	DevGuildhall = "DEV"
	TestUser     = "Test User"
	TyriaCup     = "TYRIA CUP"
	GuildhallCup = "GUILDHALL CUP"
	GendarranMap = "TYRIA GENDARRAN"
)

// entry builds a ranking line with the values shared by every canned run.
func entry(pos int, name string) models.RankingEntry {
	return models.RankingEntry{
		Pos:      pos,
		Time:     "01:00,000",
		Name:     name,
		RealTime: "60.0",
		Date:     "2022-09-18 02:21:16",
		Map:      GendarranMap,
		File:     "test.csv",
	}
}

// DefaultFile returns the built-in fixture data.
func DefaultFile() File {
	return File{
		Guildhalls: map[string]Guildhall{
			DevGuildhall: {
				Users: map[string]models.RankingResponse{
					TestUser: {
						Ranking: []models.RankingEntry{
							entry(1, "First"),
							entry(2, "Second"),
							entry(3, "Third"),
						},
						You: []models.RankingEntry{
							entry(71, "Seventy-First"),
							entry(72, "Seventy-Second"),
							entry(73, "Seventy-Third"),
						},
					},
				},
			},
		},
		Cups: []models.Cup{
			{Name: TyriaCup, Maps: []string{GendarranMap}},
			{Name: GuildhallCup},
		},
		Checkpoints: []models.Checkpoint{
			{Step: 0, Name: models.StepNameStart, X: 0.0, Y: 1.0, Z: 2.0},
			{Step: -1, Name: models.StepNameReset, X: 1.0, Y: 2.0, Z: 3.0},
			{Step: 1, Name: models.StepNameCheckpoint, X: 2.0, Y: 3.0, Z: 4.0},
			{Step: 2, Name: models.StepNameEnd, X: 3.0, Y: 4.0, Z: 5.0},
		},
	}
}

// Default returns the catalog built from DefaultFile.
// It panics only if the built-in data itself is invalid.
func Default() *Catalog {
	c, err := DefaultFile().Build()
	if err != nil {
		panic(err)
	}
	return c
}
