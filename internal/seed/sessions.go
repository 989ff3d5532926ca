package seed

import (
	"sort"
	"time"

	"amaluz-seeder/internal/domain/cart"

	"github.com/google/uuid"
)

// Lines further apart than this belong to different shopping sessions.
const sessionGap = 15 * time.Minute

// Session is one user's burst of cart activity, lines in chronological
// order.
type Session struct {
	UserID uuid.UUID
	Lines  []*cart.Line
}

func (s Session) Start() time.Time {
	return s.Lines[0].UpdatedAt()
}

func (s Session) End() time.Time {
	return s.Lines[len(s.Lines)-1].UpdatedAt()
}

// GroupSessions splits cart lines into per-user sessions and returns them in
// strict time order, so checkout simulation replays history chronologically.
func GroupSessions(lines []*cart.Line) []Session {
	byUser := make(map[uuid.UUID][]*cart.Line)
	for _, l := range lines {
		byUser[l.UserID()] = append(byUser[l.UserID()], l)
	}

	var sessions []Session
	for userID, userLines := range byUser {
		sort.Slice(userLines, func(i, j int) bool {
			return userLines[i].UpdatedAt().Before(userLines[j].UpdatedAt())
		})

		current := Session{UserID: userID, Lines: []*cart.Line{userLines[0]}}
		for _, l := range userLines[1:] {
			if l.UpdatedAt().Sub(current.End()) > sessionGap {
				sessions = append(sessions, current)
				current = Session{UserID: userID, Lines: nil}
			}
			current.Lines = append(current.Lines, l)
		}
		sessions = append(sessions, current)
	}

	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Start().Equal(sessions[j].Start()) {
			return sessions[i].Start().Before(sessions[j].Start())
		}
		return sessions[i].UserID.String() < sessions[j].UserID.String()
	})
	return sessions
}
