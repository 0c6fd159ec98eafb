package engine

import (
	"fmt"

	"github.com/TonyBarratt100/test-data-gen-kit/internal/randctx"
)

const activeProbability = 0.97

// GenerateUsers produces exactly n users with sequential ids starting at 1.
// Emails are unique within the run by construction; if the unique draw fails
// the whole generation fails rather than returning fewer records.
func GenerateUsers(rc *randctx.Context, n int) ([]User, error) {
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		email, err := rc.UniqueEmail()
		if err != nil {
			return nil, fmt.Errorf("generate user %d: %w", i+1, err)
		}
		users = append(users, User{
			ID:        i + 1,
			Name:      rc.Name(),
			Email:     email,
			Phone:     rc.Phone(),
			Country:   rc.Country(),
			CreatedAt: rc.TimeWithin(730),
			IsActive:  rc.Bool(activeProbability),
		})
	}
	return users, nil
}
