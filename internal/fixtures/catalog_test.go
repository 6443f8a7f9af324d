package fixtures_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/beetlerank-devapi/internal/fixtures"
	"github.com/trentd187/beetlerank-devapi/internal/models"
)

func TestDefault_Ranking(t *testing.T) {
	c := fixtures.Default()

	got, err := c.Ranking(fixtures.DevGuildhall, fixtures.TestUser)
	require.NoError(t, err)

	require.Len(t, got.Ranking, 3)
	require.Len(t, got.You, 3)
	for i, e := range got.Ranking {
		assert.Equal(t, i+1, e.Pos)
	}
	for i, e := range got.You {
		assert.Equal(t, 71+i, e.Pos)
	}
	assert.Equal(t, models.RankingEntry{
		Pos:      72,
		Time:     "01:00,000",
		Name:     "Seventy-Second",
		RealTime: "60.0",
		Date:     "2022-09-18 02:21:16",
		Map:      fixtures.GendarranMap,
		File:     "test.csv",
	}, got.You[1])
}

func TestCatalog_LookupMisses(t *testing.T) {
	c := fixtures.Default()

	tests := []struct {
		name string
		call func() error
	}{
		{"unknown guildhall", func() error { return c.Guildhall("dev") }},
		{"ranking for unknown guildhall", func() error { _, err := c.Ranking("PROD", fixtures.TestUser); return err }},
		{"ranking for unknown user", func() error { _, err := c.Ranking(fixtures.DevGuildhall, "test user"); return err }},
		{"maps for unknown cup", func() error { _, err := c.Maps("tyria cup"); return err }},
		{"maps for cup without maps", func() error { _, err := c.Maps(fixtures.GuildhallCup); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, fixtures.ErrNotFound, errors.Cause(err))
		})
	}
}

func TestCatalog_CupsAndMaps(t *testing.T) {
	c := fixtures.Default()

	assert.Equal(t, []string{fixtures.TyriaCup, fixtures.GuildhallCup}, c.CupNames())
	assert.NoError(t, c.Guildhall(fixtures.DevGuildhall))

	maps, err := c.Maps(fixtures.TyriaCup)
	require.NoError(t, err)
	assert.Equal(t, []string{fixtures.GendarranMap}, maps)

	// Callers get copies; mutating them must not leak into the next request.
	maps[0] = "CHANGED"
	again, _ := c.Maps(fixtures.TyriaCup)
	assert.Equal(t, fixtures.GendarranMap, again[0])
}

func TestFile_Build(t *testing.T) {
	tests := []struct {
		name    string
		file    fixtures.File
		wantErr string
	}{
		{
			"no guildhalls",
			fixtures.File{},
			"at least one guildhall",
		},
		{
			"empty user name",
			fixtures.File{Guildhalls: map[string]fixtures.Guildhall{
				"DEV": {Users: map[string]models.RankingResponse{"": {}}},
			}},
			"user name must not be empty",
		},
		{
			"duplicate cup",
			fixtures.File{
				Guildhalls: map[string]fixtures.Guildhall{"DEV": {}},
				Cups:       []models.Cup{{Name: "A"}, {Name: "A"}},
			},
			`cup "A" is defined more than once`,
		},
		{
			"bad step name",
			fixtures.File{
				Guildhalls:  map[string]fixtures.Guildhall{"DEV": {}},
				Checkpoints: []models.Checkpoint{{Step: 0, Name: "begin"}},
			},
			`unknown step name "begin"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFile_BuildNormalizesEmptyWindows(t *testing.T) {
	c, err := fixtures.File{Guildhalls: map[string]fixtures.Guildhall{
		"DEV": {Users: map[string]models.RankingResponse{"Nobody": {}}},
	}}.Build()
	require.NoError(t, err)

	got, err := c.Ranking("DEV", "Nobody")
	require.NoError(t, err)
	assert.NotNil(t, got.Ranking)
	assert.NotNil(t, got.You)
}
