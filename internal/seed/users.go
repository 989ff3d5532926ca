package seed

import (
	"context"
	"time"

	"amaluz-seeder/internal/domain/user"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/password"
	"amaluz-seeder/internal/pkg/timerange"
)

// GenerateUsers seeds staff over an early operations window, customers over
// the remainder, then runs the confirmation pass. Registration instants are
// strictly increasing within each group.
func (g *Generator) GenerateUsers(ctx context.Context, tx Tx) error {
	// one bcrypt round for the whole run; hashing per user would dominate it
	hash, err := password.HashPassword(g.cfg.DefaultPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash the default password")
	}

	opsEnd := g.window.Start.Add(g.window.Duration() / 20)
	staffRoles := make([]user.Role, 0, g.cfg.Admins+g.cfg.Sellers)
	for range g.cfg.Admins {
		staffRoles = append(staffRoles, user.RoleAdmin)
	}
	for range g.cfg.Sellers {
		staffRoles = append(staffRoles, user.RoleSeller)
	}

	var users []*user.User
	for i, role := range staffRoles {
		at, err := timerange.SequentialInstant(g.window.Start, opsEnd, len(staffRoles), i)
		if err != nil {
			return errs.Wrap(err, "failed to place staff registration")
		}
		u, err := g.newUser(role, hash, at)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	customerStart := opsEnd.Add(time.Minute)
	for i := range g.cfg.Customers {
		at, err := timerange.SequentialInstant(customerStart, g.window.End, g.cfg.Customers, i)
		if err != nil {
			return errs.Wrap(err, "failed to place customer registration")
		}
		u, err := g.newUser(user.RoleCustomer, hash, at)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	if err := tx.InsertUsers(ctx, users); err != nil {
		return errs.Wrap(err, "failed to insert users")
	}
	g.state.Users = users
	for _, u := range users {
		g.state.UserByID[u.ID()] = u
	}
	g.report.AddCreated("users", len(users))

	return g.confirmCustomers(ctx, tx)
}

func (g *Generator) newUser(role user.Role, hash string, at time.Time) (*user.User, error) {
	name := g.provider.PersonName()
	g.emailSeq++
	u, err := user.NewUser(role, name, g.provider.Email(name, g.emailSeq), g.provider.Phone(), hash, at)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build user")
	}
	return u, nil
}

// confirmCustomers activates all but the configured remainder: most confirm
// within minutes, a few come back days later.
func (g *Generator) confirmCustomers(ctx context.Context, tx Tx) error {
	unconfirmedLeft := g.cfg.UnconfirmedCustomers
	for i := len(g.state.Users) - 1; i >= 0; i-- {
		u := g.state.Users[i]
		if u.Role() != user.RoleCustomer || u.Status() != user.StatusUnconfirmed {
			continue
		}
		// leave the most recent signups unconfirmed, which is where
		// pending confirmations naturally pile up
		if unconfirmedLeft > 0 {
			unconfirmedLeft--
			continue
		}

		minDelta, maxDelta := 2*time.Minute, 10*time.Minute
		if g.chance(0.2) {
			minDelta, maxDelta = 24*time.Hour, 48*time.Hour
		}
		if u.RegisteredAt().Add(minDelta).After(g.window.End) {
			g.skip("user_confirmation", "no room before window end", "user_id", u.ID())
			continue
		}

		at, err := timerange.NextAfter(g.rng, u.RegisteredAt(), minDelta, maxDelta, g.window.End)
		if err != nil {
			return errs.Wrap(err, "failed to draw confirmation instant")
		}
		if at.After(g.window.End) {
			g.skip("user_confirmation", "no room before window end", "user_id", u.ID())
			continue
		}
		if err := u.Confirm(at); err != nil {
			return errs.Wrap(err, "failed to confirm user")
		}
		if err := tx.UpdateUserStatus(ctx, u); err != nil {
			return errs.Wrap(err, "failed to persist user confirmation")
		}
	}
	return nil
}
