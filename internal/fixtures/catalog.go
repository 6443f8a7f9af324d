// Package fixtures holds the canned data served by the dev API.
//
// All canned data lives in one explicit lookup table (a Catalog):
// guildhall -> user -> rankings, an ordered list of cups with their maps, and
// the checkpoint rows. Every lookup either returns a value or an error wrapping
// ErrNotFound, so the "no match" case is something the handlers must deal with
// instead of silently falling through.
//
// A Catalog is built once at startup (Default or Load) and is read-only after
// that, so it is safe to share between request goroutines without locking.
package fixtures

import (
	"github.com/pkg/errors"

	"github.com/trentd187/beetlerank-devapi/internal/models"
)

// ErrNotFound is the cause of every failed lookup. Use errors.Cause to test for it.
var ErrNotFound = errors.New("not found")

// Guildhall is a leaderboard partition. Users maps a user name to the ranking
// window that user is shown.
type Guildhall struct {
	Users map[string]models.RankingResponse `yaml:"users"`
}

// File is the on-disk (YAML) shape of a catalog. Default builds one in code.
type File struct {
	Guildhalls  map[string]Guildhall `yaml:"guildhalls"`
	Cups        []models.Cup         `yaml:"cups"`
	Checkpoints []models.Checkpoint  `yaml:"checkpoints"`
}

// Catalog is the validated, read-only lookup table behind the route handlers.
type Catalog struct {
	guildhalls  map[string]Guildhall
	cups        []models.Cup
	cupIndex    map[string]int // cup name -> position in cups
	checkpoints []models.Checkpoint
}

// Build validates f and turns it into a Catalog.
func (f File) Build() (*Catalog, error) {
	if len(f.Guildhalls) == 0 {
		return nil, errors.New("catalog must define at least one guildhall")
	}

	guildhalls := make(map[string]Guildhall, len(f.Guildhalls))
	for name, gh := range f.Guildhalls {
		if name == "" {
			return nil, errors.New("guildhall name must not be empty")
		}
		users := make(map[string]models.RankingResponse, len(gh.Users))
		for user, resp := range gh.Users {
			if user == "" {
				return nil, errors.Errorf("guildhall %q: user name must not be empty", name)
			}
			users[user] = normalizeRanking(resp)
		}
		guildhalls[name] = Guildhall{Users: users}
	}

	cups := make([]models.Cup, 0, len(f.Cups))
	cupIndex := make(map[string]int, len(f.Cups))
	for i, cup := range f.Cups {
		if cup.Name == "" {
			return nil, errors.Errorf("cup #%d: name must not be empty", i+1)
		}
		if _, dup := cupIndex[cup.Name]; dup {
			return nil, errors.Errorf("cup %q is defined more than once", cup.Name)
		}
		cupIndex[cup.Name] = len(cups)
		cups = append(cups, models.Cup{Name: cup.Name, Maps: append([]string(nil), cup.Maps...)})
	}

	for i, cp := range f.Checkpoints {
		if !cp.Name.Valid() {
			return nil, errors.Errorf("checkpoint #%d: unknown step name %q", i+1, cp.Name)
		}
	}

	return &Catalog{
		guildhalls:  guildhalls,
		cups:        cups,
		cupIndex:    cupIndex,
		checkpoints: append([]models.Checkpoint(nil), f.Checkpoints...),
	}, nil
}

// normalizeRanking replaces nil slices with empty ones so they encode as [] and not null.
func normalizeRanking(r models.RankingResponse) models.RankingResponse {
	if r.Ranking == nil {
		r.Ranking = []models.RankingEntry{}
	}
	if r.You == nil {
		r.You = []models.RankingEntry{}
	}
	return r
}

// Guildhall returns nil if name is a known guildhall.
func (c *Catalog) Guildhall(name string) error {
	if _, ok := c.guildhalls[name]; !ok {
		return errors.Wrapf(ErrNotFound, "guildhall %q", name)
	}
	return nil
}

// Ranking returns the ranking window for user in guildhall.
func (c *Catalog) Ranking(guildhall, user string) (models.RankingResponse, error) {
	gh, ok := c.guildhalls[guildhall]
	if !ok {
		return models.RankingResponse{}, errors.Wrapf(ErrNotFound, "guildhall %q", guildhall)
	}
	resp, ok := gh.Users[user]
	if !ok {
		return models.RankingResponse{}, errors.Wrapf(ErrNotFound, "user %q in guildhall %q", user, guildhall)
	}
	return resp, nil
}

// CupNames lists every cup in catalog order.
func (c *Catalog) CupNames() []string {
	names := make([]string, 0, len(c.cups))
	for _, cup := range c.cups {
		names = append(names, cup.Name)
	}
	return names
}

// Maps returns the maps of cup. A cup that exists but lists no maps is reported
// as not found, the same as an unknown cup.
func (c *Catalog) Maps(cup string) ([]string, error) {
	i, ok := c.cupIndex[cup]
	if !ok || len(c.cups[i].Maps) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "maps for cup %q", cup)
	}
	return append([]string(nil), c.cups[i].Maps...), nil
}

// Checkpoints returns the checkpoint rows in file order.
func (c *Catalog) Checkpoints() []models.Checkpoint {
	return append([]models.Checkpoint(nil), c.checkpoints...)
}
