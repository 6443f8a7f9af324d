package beetlerank

import (
	"fmt"

	"github.com/pkg/errors"
)

// Check is the outcome of one smoke-test step.
type Check struct {
	Name   string
	Detail string // Short summary of what came back, set on success
	Err    error
}

// Passed reports whether every check succeeded.
func Passed(checks []Check) bool {
	for _, ch := range checks {
		if ch.Err != nil {
			return false
		}
	}
	return true
}

// SmokeTest walks every endpoint the racing-timer client depends on, using
// guildhall and user for the ranking routes. A cup without maps is not a
// failure; a cup list that can't be fetched is, and skips the map checks.
func (c *Client) SmokeTest(guildhall, user string) []Check {
	var checks []Check
	record := func(name string, detail string, err error) {
		if err != nil {
			detail = ""
		}
		checks = append(checks, Check{Name: name, Detail: detail, Err: err})
	}

	up, err := c.Info()
	if err == nil && !up {
		err = errors.New("info answered succeed=false")
	}
	record("info", "up", err)

	cups, err := c.Cups()
	record("cups", fmt.Sprintf("%d cups", len(cups)), err)
	for _, cup := range cups {
		maps, err := c.Maps(cup)
		detail := fmt.Sprintf("%d maps", len(maps))
		if errors.Cause(err) == ErrNotFound {
			detail, err = "no maps", nil
		}
		record("maps "+cup, detail, err)
	}

	ok, err := c.Top3(guildhall)
	if err == nil && !ok {
		err = errors.Errorf("guildhall %q is unknown", guildhall)
	}
	record("top3 "+guildhall, "known", err)

	ranking, err := c.Ranking(guildhall, user)
	record("ranking "+user, fmt.Sprintf("%d top, %d around user", len(ranking.Ranking), len(ranking.You)), err)

	rows, err := c.Checkpoints()
	record("checkpoints", fmt.Sprintf("%d rows", len(rows)), err)

	return checks
}
