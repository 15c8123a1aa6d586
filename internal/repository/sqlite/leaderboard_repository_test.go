package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/sorabytes/otakudojo/internal/models"
	"github.com/sorabytes/otakudojo/internal/repository"
	"github.com/sorabytes/otakudojo/internal/repository/sqlite"
	"github.com/sorabytes/otakudojo/internal/testutil"
)

type LeaderboardRepositorySuite struct {
	suite.Suite
	db    *sql.DB
	repo  repository.LeaderboardRepository
	stats repository.StatsRepository
}

func (s *LeaderboardRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewLeaderboardRepository(s.db)
	s.stats = sqlite.NewStatsRepository(s.db)
}

func (s *LeaderboardRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *LeaderboardRepositorySuite) submit(username, puzzleID string, t models.PuzzleType, score int) {
	_, err := s.stats.Submit(context.Background(), submission(username, puzzleID, t, score, "2026-08-29"))
	s.Require().NoError(err)
}

func (s *LeaderboardRepositorySuite) TestGlobalOrdering() {
	ctx := context.Background()

	s.submit("akira", "p1", models.TypeQuoteFill, 50)
	s.submit("beni", "p1", models.TypeQuoteFill, 120)
	s.submit("chiyo", "p1", models.TypeQuoteFill, 80)
	s.submit("chiyo", "p2", models.TypeMoodMatch, 90)

	entries, err := s.repo.List(ctx, models.ScopeGlobal, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)

	s.Assert().Equal("chiyo", entries[0].Username)
	s.Assert().Equal(170, entries[0].Score)
	s.Assert().Equal(1, entries[0].Rank)
	s.Assert().Equal("beni", entries[1].Username)
	s.Assert().Equal("akira", entries[2].Username)
}

func (s *LeaderboardRepositorySuite) TestGlobalExcludesZeroScores() {
	ctx := context.Background()

	s.submit("akira", "p1", models.TypeWhoAmI, 0)
	s.submit("beni", "p1", models.TypeQuoteFill, 60)

	entries, err := s.repo.List(ctx, models.ScopeGlobal, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Assert().Equal("beni", entries[0].Username)

	rank, err := s.repo.UserRank(ctx, "akira", models.ScopeGlobal)
	s.Require().NoError(err)
	s.Assert().Equal(0, rank)
}

func (s *LeaderboardRepositorySuite) TestTypeScopeSumsOnlyThatType() {
	ctx := context.Background()

	s.submit("akira", "p1", models.TypeEmojiSensei, 40)
	s.submit("akira", "p2", models.TypeEmojiSensei, 70)
	s.submit("akira", "p3", models.TypeQuoteFill, 200)
	s.submit("beni", "p1", models.TypeEmojiSensei, 90)

	entries, err := s.repo.List(ctx, string(models.TypeEmojiSensei), 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Assert().Equal("akira", entries[0].Username)
	s.Assert().Equal(110, entries[0].Score)
	s.Assert().Equal(1, entries[0].Streak)
	s.Assert().Equal("beni", entries[1].Username)
	s.Assert().Equal(90, entries[1].Score)
}

func (s *LeaderboardRepositorySuite) TestTiesBreakByUserID() {
	ctx := context.Background()

	// Same total, inserted in this order, so akira has the smaller user id.
	s.submit("akira", "p1", models.TypeQuoteFill, 100)
	s.submit("beni", "p1", models.TypeQuoteFill, 100)

	entries, err := s.repo.List(ctx, models.ScopeGlobal, 10)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Assert().Equal("akira", entries[0].Username)
	s.Assert().Equal("beni", entries[1].Username)
}

func (s *LeaderboardRepositorySuite) TestUserRankMatchesSortedReference() {
	ctx := context.Background()

	totals := map[string]int{}
	for i := 0; i < 8; i++ {
		username := fmt.Sprintf("player%d", i)
		score := 10 * (i%4 + 1)
		s.submit(username, "p1", models.TypeWhoSaidIt, score)
		totals[username] = score
	}

	scores := make([]int, 0, len(totals))
	for _, v := range totals {
		scores = append(scores, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	for username, total := range totals {
		want := 1
		for _, v := range scores {
			if v > total {
				want++
			}
		}
		rank, err := s.repo.UserRank(ctx, username, models.ScopeGlobal)
		s.Require().NoError(err)
		s.Assert().Equal(want, rank, "rank for %s", username)
	}
}

func (s *LeaderboardRepositorySuite) TestUserRankUnknownUser() {
	rank, err := s.repo.UserRank(context.Background(), "nobody", models.ScopeGlobal)
	s.Require().NoError(err)
	s.Assert().Equal(0, rank)
}

func (s *LeaderboardRepositorySuite) TestUserRankTypeScope() {
	ctx := context.Background()

	s.submit("akira", "p1", models.TypeWhoAmI, 80)
	s.submit("beni", "p1", models.TypeWhoAmI, 60)
	s.submit("beni", "p2", models.TypeQuoteFill, 500)

	rank, err := s.repo.UserRank(ctx, "beni", string(models.TypeWhoAmI))
	s.Require().NoError(err)
	s.Assert().Equal(2, rank)

	rank, err = s.repo.UserRank(ctx, "akira", string(models.TypeWhoAmI))
	s.Require().NoError(err)
	s.Assert().Equal(1, rank)
}

func (s *LeaderboardRepositorySuite) TestLimit() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s.submit(fmt.Sprintf("player%d", i), "p1", models.TypeQuoteFill, 10+i)
	}

	entries, err := s.repo.List(ctx, models.ScopeGlobal, 3)
	s.Require().NoError(err)
	s.Assert().Len(entries, 3)
}

func TestLeaderboardRepositorySuite(t *testing.T) {
	suite.Run(t, new(LeaderboardRepositorySuite))
}
